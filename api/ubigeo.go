package api

import (
	"context"
	"net/url"

	"github.com/DannerVelaF/VeterinariaAdelaFront/models"
)

// GET /ubigeos/departamentos
func (c *Client) Departamentos(ctx context.Context) ([]string, error) {
	var departamentos []string
	if err := c.get(ctx, pathUbigeoDepartamentos, &departamentos); err != nil {
		return nil, err
	}
	return departamentos, nil
}

// GET /ubigeos/provincias/{departamento}
func (c *Client) Provincias(ctx context.Context, departamento string) ([]string, error) {
	var provincias []string
	if err := c.get(ctx, pathUbigeoProvincias+"/"+url.PathEscape(departamento), &provincias); err != nil {
		return nil, err
	}
	return provincias, nil
}

// GET /ubigeos/distritos/{provincia}
//
// Returns the full ubigeo rows so the address form can pick up the district
// code.
func (c *Client) Distritos(ctx context.Context, provincia string) ([]models.UbigeoData, error) {
	var distritos []models.UbigeoData
	if err := c.get(ctx, pathUbigeoDistritos+"/"+url.PathEscape(provincia), &distritos); err != nil {
		return nil, err
	}
	return distritos, nil
}
