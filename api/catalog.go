package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/DannerVelaF/VeterinariaAdelaFront/models"
)

// ProductoFilters narrows the product listing. Zero values are omitted.
type ProductoFilters struct {
	CategoriaID int64
	Search      string
}

// GET /productos
func (c *Client) Productos(ctx context.Context, filters *ProductoFilters) ([]models.Producto, error) {
	params := url.Values{}
	if filters != nil {
		if filters.CategoriaID != 0 {
			params.Set("categoria_id", strconv.FormatInt(filters.CategoriaID, 10))
		}
		if filters.Search != "" {
			params.Set("search", filters.Search)
		}
	}
	path := pathProductos
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	var resp struct {
		Data []models.Producto `json:"data"`
	}
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// GET /categorias-productos
//
// The backend sometimes wraps the list in a resource envelope and sometimes
// returns it bare; both shapes are accepted.
func (c *Client) Categorias(ctx context.Context) ([]models.Categoria, error) {
	var raw json.RawMessage
	if err := c.get(ctx, pathCategorias, &raw); err != nil {
		return nil, err
	}

	var envelope struct {
		Data []models.Categoria `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Data != nil {
		return envelope.Data, nil
	}
	var categorias []models.Categoria
	if err := json.Unmarshal(raw, &categorias); err != nil {
		return nil, fmt.Errorf("decode categorias: %w", err)
	}
	return categorias, nil
}

// GET /productos-categorias
func (c *Client) ProductosPorCategoria(ctx context.Context) ([]models.CategoriaConConteo, error) {
	var conteos []models.CategoriaConConteo
	if err := c.get(ctx, pathProductosCategorias, &conteos); err != nil {
		return nil, err
	}
	return conteos, nil
}

// GET /productos-destacados
func (c *Client) ProductosDestacados(ctx context.Context) ([]models.ProductoDestacado, error) {
	var destacados []models.ProductoDestacado
	if err := c.get(ctx, pathDestacados, &destacados); err != nil {
		return nil, err
	}
	return destacados, nil
}

// GET /tipoDocumento
func (c *Client) TiposDocumento(ctx context.Context) ([]models.TipoDocumento, error) {
	var tipos []models.TipoDocumento
	if err := c.get(ctx, pathTiposDocumento, &tipos); err != nil {
		return nil, err
	}
	return tipos, nil
}
