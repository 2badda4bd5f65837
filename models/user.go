package models

type Usuario struct {
	ID      int64  `json:"id_usuario"`
	Usuario string `json:"usuario"`
	Estado  string `json:"estado"`
}

// Persona is the authenticated identity returned by the login endpoint.
type Persona struct {
	ID              int64   `json:"id_persona"`
	Nombre          string  `json:"nombre"`
	ApellidoPaterno string  `json:"apellido_paterno"`
	ApellidoMaterno string  `json:"apellido_materno"`
	Correo          string  `json:"correo"`
	Usuario         Usuario `json:"usuario"`
}

// SessionSnapshot is the persisted session blob.
type SessionSnapshot struct {
	Persona *Persona `json:"persona"`
	Token   string   `json:"token"`
}

type LoginRequest struct {
	Correo     string `json:"correo"`
	Contrasena string `json:"contrasena"`
}

type LoginResponse struct {
	Data    *Persona `json:"data"`
	Token   string   `json:"token"`
	Message string   `json:"message,omitempty"`
}

// APIResponse is the generic success/message envelope the backend uses for
// registration, verification, and password-reset endpoints.
type APIResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
