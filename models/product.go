package models

type CategoriaProducto struct {
	ID     int64  `json:"id_categoria_producto"`
	Nombre string `json:"nombre_categoria_producto"`
}

type Unidad struct {
	ID     int64  `json:"id_unidad"`
	Nombre string `json:"nombre_unidad"`
}

type Producto struct {
	ID                 int64              `json:"id_producto"`
	Nombre             string             `json:"nombre_producto"`
	Descripcion        string             `json:"descripcion"`
	PrecioUnitario     float64            `json:"precio_unitario"`
	RutaImagen         string             `json:"ruta_imagen"`
	CodigoBarras       string             `json:"codigo_barras"`
	StockActual        int                `json:"stock_actual"`
	Categoria          *CategoriaProducto `json:"categoria_producto,omitempty"`
	Unidad             *Unidad            `json:"unidad,omitempty"`
	FechaRegistro      string             `json:"fecha_registro"`
	FechaActualizacion string             `json:"fecha_actualizacion"`
}

type Categoria struct {
	ID                 int64  `json:"id_categoria_producto"`
	Nombre             string `json:"nombre_categoria_producto"`
	Descripcion        string `json:"descripcion"`
	Estado             string `json:"estado"`
	FechaRegistro      string `json:"fecha_registro"`
	FechaActualizacion string `json:"fecha_actualizacion"`
}

// CategoriaConConteo is the per-category product count used on the landing page.
type CategoriaConConteo struct {
	CategoriaID       int64  `json:"categoria_id"`
	NombreCategoria   string `json:"nombre_categoria"`
	CantidadProductos int    `json:"cantidad_productos"`
	Icono             string `json:"icono,omitempty"`
}

type ProductoDestacado struct {
	ID             int64              `json:"id_producto"`
	Nombre         string             `json:"nombre_producto"`
	Descripcion    string             `json:"descripcion"`
	PrecioUnitario float64            `json:"precio_unitario"`
	RutaImagen     string             `json:"ruta_imagen"`
	Categoria      *CategoriaProducto `json:"categoria_producto,omitempty"`
	StockActual    int                `json:"stock_actual"`
}

type TipoDocumento struct {
	ID     int64  `json:"id_tipo_documento"`
	Nombre string `json:"nombre_tipo_documento"`
}
