package models

type UbigeoData struct {
	ID           string `json:"id_ubigeo"`
	Departamento string `json:"departamento"`
	Provincia    string `json:"provincia"`
	Distrito     string `json:"distrito"`
}

type DireccionData struct {
	ID           int64       `json:"id_direccion,omitempty"`
	Zona         string      `json:"zona"`
	TipoCalle    string      `json:"tipo_calle"`
	NombreCalle  string      `json:"nombre_calle"`
	Numero       string      `json:"numero"`
	CodigoPostal string      `json:"codigo_postal"`
	Referencia   string      `json:"referencia"`
	CodigoUbigeo string      `json:"codigo_ubigeo"`
	Ubigeo       *UbigeoData `json:"ubigeo,omitempty"`
}
