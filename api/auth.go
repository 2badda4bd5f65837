package api

import (
	"context"
	"net/http"

	"github.com/DannerVelaF/VeterinariaAdelaFront/models"
)

// POST auth/registro
func (c *Client) RegistrarUsuario(ctx context.Context, req models.RegistroRequest) (*models.APIResponse, error) {
	var resp models.APIResponse
	if err := c.send(ctx, http.MethodPost, pathRegistro, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// POST auth/login
//
// On success the identity and token are stored into the session, matching
// what the login screen expects. A 401 here stays a plain credentials error;
// the forced-logout policy deliberately skips the login endpoint.
func (c *Client) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	var resp models.LoginResponse
	if err := c.send(ctx, http.MethodPost, pathLogin, req, &resp); err != nil {
		return nil, err
	}
	if resp.Token != "" && resp.Data != nil && c.session != nil {
		c.session.SetAuth(*resp.Data, resp.Token)
	}
	return &resp, nil
}

// POST verificarCorreo
func (c *Client) EnviarCodigoVerificacion(ctx context.Context, correo string) (*models.APIResponse, error) {
	body := map[string]string{"correo": correo}
	var resp models.APIResponse
	if err := c.send(ctx, http.MethodPost, pathVerificarCorreo, body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// POST auth/verificar-documento
func (c *Client) VerificarDocumento(ctx context.Context, dni string, tipoDocumentoID int64) (*models.APIResponse, error) {
	body := map[string]any{
		"dni":               dni,
		"tipo_documento_id": tipoDocumentoID,
	}
	var resp models.APIResponse
	if err := c.send(ctx, http.MethodPost, pathVerificarDocumento, body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// POST auth/verificar-usuario
func (c *Client) VerificarUsuario(ctx context.Context, usuario string) (*models.APIResponse, error) {
	body := map[string]string{"usuario": usuario}
	var resp models.APIResponse
	if err := c.send(ctx, http.MethodPost, pathVerificarUsuario, body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// POST auth/forgot-password
func (c *Client) RequestPasswordReset(ctx context.Context, email string) (*models.APIResponse, error) {
	body := map[string]string{"email": email}
	var resp models.APIResponse
	if err := c.send(ctx, http.MethodPost, pathForgotPassword, body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// POST auth/verify-reset-token
func (c *Client) VerifyResetToken(ctx context.Context, email, token string) (*models.APIResponse, error) {
	body := map[string]string{"email": email, "token": token}
	var resp models.APIResponse
	if err := c.send(ctx, http.MethodPost, pathVerifyResetToken, body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// POST auth/reset-password
func (c *Client) ResetPassword(ctx context.Context, email, token, password, passwordConfirmation string) (*models.APIResponse, error) {
	body := map[string]string{
		"email":                 email,
		"token":                 token,
		"password":              password,
		"password_confirmation": passwordConfirmation,
	}
	var resp models.APIResponse
	if err := c.send(ctx, http.MethodPost, pathResetPassword, body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GET /consultar-dni?dni=...
func (c *Client) ConsultarDNI(ctx context.Context, dni string) (*models.DNIResponse, error) {
	var resp models.DNIResponse
	if err := c.get(ctx, pathConsultarDNI+"?dni="+dni, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
