package models

// RegistroRequest is the registration payload. The mixed tag casing mirrors
// the form the backend expects.
type RegistroRequest struct {
	IDTipoDocumento int64  `json:"id_tipo_documento"`
	NumeroDocumento string `json:"numeroDocumento"`
	Nombre          string `json:"nombre"`
	ApellidoPaterno string `json:"apellidoPaterno"`
	ApellidoMaterno string `json:"apellidoMaterno"`
	Sexo            string `json:"sexo"`
	Nacionalidad    string `json:"nacionalidad"`
	Correo          string `json:"correo"`
	Telefono        string `json:"telefono"`
	Usuario         string `json:"usuario"`
	Contrasena      string `json:"contrasena"`
	Confirmar       string `json:"confirmar"`
	FechaNacimiento string `json:"fechaNacimiento,omitempty"` // YYYY-MM-DD
	Zona            string `json:"zona"`
	TipoCalle       string `json:"tipoCalle"`
	NombreCalle     string `json:"nombreCalle"`
	Numero          string `json:"numero"`
	CodigoPostal    string `json:"codigoPostal"`
	Referencia      string `json:"referencia"`
	Departamento    string `json:"departamento"`
	Provincia       string `json:"provincia"`
	Distrito        string `json:"distrito"`
	CodigoUbigeo    string `json:"codigoUbigeo"`
}

// DNIData is the RENIEC person record returned by the DNI lookup.
type DNIData struct {
	DocumentNumber string `json:"document_number"`
	FirstName      string `json:"first_name"`
	FirstLastName  string `json:"first_last_name"`
	SecondLastName string `json:"second_last_name"`
	FullName       string `json:"full_name"`
}

type DNIResponse struct {
	Success bool     `json:"success"`
	Data    *DNIData `json:"data,omitempty"`
	Error   string   `json:"error,omitempty"`
}
