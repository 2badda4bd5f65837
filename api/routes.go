package api

// Endpoint paths, relative to the configured base URL.
const (
	pathTiposDocumento      = "tipoDocumento"
	pathRegistro            = "auth/registro"
	pathLogin               = "auth/login"
	pathVerificarCorreo     = "verificarCorreo"
	pathForgotPassword      = "auth/forgot-password"
	pathResetPassword       = "auth/reset-password"
	pathVerifyResetToken    = "auth/verify-reset-token"
	pathVerificarDocumento  = "auth/verificar-documento"
	pathVerificarUsuario    = "auth/verificar-usuario"
	pathProductos           = "productos"
	pathCategorias          = "categorias-productos"
	pathProductosCategorias = "productos-categorias"
	pathDestacados          = "productos-destacados"
	pathPerfil              = "perfil" // + /{id_usuario}
	pathUbigeoDepartamentos = "ubigeos/departamentos"
	pathUbigeoProvincias    = "ubigeos/provincias" // + /{departamento}
	pathUbigeoDistritos     = "ubigeos/distritos"  // + /{provincia}
	pathMetodosPago         = "metodos-pago"
	pathConsultarDNI        = "consultar-dni"
)
