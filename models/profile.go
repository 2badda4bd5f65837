package models

// PersonaDetalle is the full person record behind the profile screen.
type PersonaDetalle struct {
	ID                 int64  `json:"id_persona"`
	Nombre             string `json:"nombre"`
	ApellidoPaterno    string `json:"apellido_paterno"`
	ApellidoMaterno    string `json:"apellido_materno"`
	NumeroDocumento    string `json:"numero_documento"`
	CorreoPersonal     string `json:"correo_electronico_personal"`
	CorreoSecundario   string `json:"correo_electronico_secundario"`
	TelefonoPersonal   string `json:"numero_telefono_personal"`
	TelefonoSecundario string `json:"numero_telefono_secundario"`
	FechaNacimiento    string `json:"fecha_nacimiento"`
	Sexo               string `json:"sexo"`
	Nacionalidad       string `json:"nacionalidad"`
}

type PerfilData struct {
	IDUsuario          int64          `json:"id_usuario"`
	Usuario            string         `json:"usuario"`
	Estado             string         `json:"estado"`
	FechaRegistro      string         `json:"fecha_registro"`
	FechaActualizacion string         `json:"fecha_actualizacion"`
	UltimoLogin        string         `json:"ultimo_login"`
	Persona            PersonaDetalle `json:"persona"`
}

type PerfilResponse struct {
	Success bool       `json:"success"`
	Data    PerfilData `json:"data"`
	Message string     `json:"message"`
}

// ActualizarPerfilRequest is the nested PUT payload.
type ActualizarPerfilRequest struct {
	Usuario *string                 `json:"usuario,omitempty"`
	Persona *ActualizarPersonaDatos `json:"persona,omitempty"`
}

type ActualizarPersonaDatos struct {
	CorreoPersonal     *string `json:"correo_electronico_personal,omitempty"`
	CorreoSecundario   *string `json:"correo_electronico_secundario,omitempty"`
	TelefonoPersonal   *string `json:"numero_telefono_personal,omitempty"`
	TelefonoSecundario *string `json:"numero_telefono_secundario,omitempty"`
}

// ActualizarPerfilParcialRequest is the flat PATCH payload.
type ActualizarPerfilParcialRequest struct {
	Usuario            *string `json:"usuario,omitempty"`
	CorreoPersonal     *string `json:"correo_electronico_personal,omitempty"`
	CorreoSecundario   *string `json:"correo_electronico_secundario,omitempty"`
	TelefonoPersonal   *string `json:"numero_telefono_personal,omitempty"`
	TelefonoSecundario *string `json:"numero_telefono_secundario,omitempty"`
}
