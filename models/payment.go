package models

type MetodoPago struct {
	ID                 int64  `json:"id_metodo_pago"`
	NombreMetodo       string `json:"nombre_metodo"`
	TipoMetodo         string `json:"tipo_metodo"`
	NumeroCuenta       string `json:"numero_cuenta,omitempty"`
	NombreTitular      string `json:"nombre_titular,omitempty"`
	EntidadFinanciera  string `json:"entidad_financiera,omitempty"`
	TipoCuenta         string `json:"tipo_cuenta,omitempty"`
	CodigoQR           string `json:"codigo_qr,omitempty"`
	Instrucciones      string `json:"instrucciones,omitempty"`
	Estado             string `json:"estado"` // "activo" or "inactivo"
	Orden              int    `json:"orden"`
	Observacion        string `json:"observacion,omitempty"`
	FechaRegistro      string `json:"fecha_registro"`
	FechaActualizacion string `json:"fecha_actualizacion,omitempty"`
}
