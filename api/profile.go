package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/DannerVelaF/VeterinariaAdelaFront/models"
)

// GET /perfil/{id_usuario}
func (c *Client) Perfil(ctx context.Context, idUsuario int64) (*models.PerfilResponse, error) {
	var resp models.PerfilResponse
	if err := c.get(ctx, fmt.Sprintf("%s/%d", pathPerfil, idUsuario), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// PUT /perfil/{id_usuario}
func (c *Client) UpdatePerfil(ctx context.Context, idUsuario int64, req models.ActualizarPerfilRequest) (*models.PerfilResponse, error) {
	var resp models.PerfilResponse
	if err := c.send(ctx, http.MethodPut, fmt.Sprintf("%s/%d", pathPerfil, idUsuario), req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// PATCH /perfil/{id_usuario}
func (c *Client) UpdatePerfilParcial(ctx context.Context, idUsuario int64, req models.ActualizarPerfilParcialRequest) (*models.PerfilResponse, error) {
	var resp models.PerfilResponse
	if err := c.send(ctx, http.MethodPatch, fmt.Sprintf("%s/%d", pathPerfil, idUsuario), req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateCampoPerfil updates a single profile field by its screen name,
// dispatching to the flat PATCH payload.
func (c *Client) UpdateCampoPerfil(ctx context.Context, idUsuario int64, campo, valor string) (*models.PerfilResponse, error) {
	req := models.ActualizarPerfilParcialRequest{}
	switch campo {
	case "usuario":
		req.Usuario = &valor
	case "persona.correo_electronico_personal":
		req.CorreoPersonal = &valor
	case "persona.correo_electronico_secundario":
		req.CorreoSecundario = &valor
	case "persona.numero_telefono_personal":
		req.TelefonoPersonal = &valor
	case "persona.numero_telefono_secundario":
		req.TelefonoSecundario = &valor
	default:
		return nil, fmt.Errorf("update perfil: unknown field %q", campo)
	}
	return c.UpdatePerfilParcial(ctx, idUsuario, req)
}

// GET /perfil/{id_usuario}/direccion
func (c *Client) DireccionUser(ctx context.Context, idUsuario int64) (*models.DireccionData, error) {
	var direccion models.DireccionData
	if err := c.get(ctx, fmt.Sprintf("%s/%d/direccion", pathPerfil, idUsuario), &direccion); err != nil {
		return nil, err
	}
	return &direccion, nil
}

// POST /perfil/{id_usuario}/direccion/guardar
func (c *Client) GuardarDireccion(ctx context.Context, idUsuario int64, datos models.DireccionData) (*models.APIResponse, error) {
	var resp models.APIResponse
	if err := c.send(ctx, http.MethodPost, fmt.Sprintf("%s/%d/direccion/guardar", pathPerfil, idUsuario), datos, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
