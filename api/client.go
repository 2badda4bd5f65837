// Package api is the typed client for the Veterinaria Adela platform API. It
// covers catalog, registration, login, password reset, profile, address, and
// payment-method endpoints, and implements the single cross-cutting error
// policy of the client: a 401 outside the login endpoint force-expires the
// session.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/DannerVelaF/VeterinariaAdelaFront/store"
)

const defaultTimeout = 15 * time.Second

// ClientConfig wires the client to the rest of the application.
type ClientConfig struct {
	BaseURL string
	Timeout time.Duration

	// Session supplies the bearer token and is logged out on a 401.
	Session *store.Session

	// OnAuthExpired runs after a forced logout, so the UI can move to the
	// login screen. Optional.
	OnAuthExpired func()

	Logger *zap.Logger

	// HTTPClient overrides the underlying client; its transport is still
	// wrapped with the auth decorator. Used by tests.
	HTTPClient *http.Client
}

type Client struct {
	baseURL       string
	http          *http.Client
	session       *store.Session
	onAuthExpired func()
	log           *zap.Logger
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if httpClient.Timeout == 0 {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient.Timeout = timeout
	}
	base := httpClient.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	httpClient.Transport = &authTransport{base: base, session: cfg.Session}

	return &Client{
		baseURL:       strings.TrimSuffix(cfg.BaseURL, "/"),
		http:          httpClient,
		session:       cfg.Session,
		onAuthExpired: cfg.OnAuthExpired,
		log:           logger,
	}
}

func (c *Client) url(path string) string {
	return c.baseURL + "/" + strings.TrimPrefix(path, "/")
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.send(ctx, http.MethodGet, path, nil, out)
}

// send runs one API call: encodes body as JSON when present, applies the
// error policy to the response, and decodes into out when non-nil.
func (c *Client) send(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path), reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("api request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err))
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s %s: read response: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.apiError(path, resp.StatusCode, data)
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%s %s: decode response: %w", method, path, err)
	}
	return nil
}

// apiError turns a non-2xx response into an *APIError. A 401 from anywhere
// but the login endpoint logs the session out and fires the expiry hook; the
// login endpoint keeps its plain 401 so the screen can show bad-credentials.
func (c *Client) apiError(path string, status int, data []byte) error {
	apiErr := &APIError{Status: status}

	var parsed struct {
		Message string              `json:"message"`
		Error   string              `json:"error"`
		Errors  map[string][]string `json:"errors"`
	}
	if err := json.Unmarshal(data, &parsed); err == nil {
		apiErr.Message = parsed.Message
		if apiErr.Message == "" {
			apiErr.Message = parsed.Error
		}
		apiErr.Errors = parsed.Errors
	}

	if status == http.StatusUnauthorized && !strings.Contains(path, pathLogin) {
		apiErr.err = ErrAuthExpired
		c.log.Info("authentication expired, forcing logout", zap.String("path", path))
		if c.session != nil {
			c.session.Logout()
		}
		if c.onAuthExpired != nil {
			c.onAuthExpired()
		}
	}
	return apiErr
}
