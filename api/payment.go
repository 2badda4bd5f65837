package api

import (
	"context"

	"github.com/DannerVelaF/VeterinariaAdelaFront/models"
)

// GET /metodos-pago
func (c *Client) MetodosPago(ctx context.Context) ([]models.MetodoPago, error) {
	var resp struct {
		Data []models.MetodoPago `json:"data"`
	}
	if err := c.get(ctx, pathMetodosPago, &resp); err != nil {
		return nil, err
	}
	if resp.Data == nil {
		return []models.MetodoPago{}, nil
	}
	return resp.Data, nil
}
