package api

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/DannerVelaF/VeterinariaAdelaFront/store"
)

// authTransport decorates every request with the JSON accept header, a
// request id, and the bearer token when a session is active.
type authTransport struct {
	base    http.RoundTripper
	session *store.Session
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if t.session != nil {
		if tok := t.session.Token(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}
	return t.base.RoundTrip(req)
}
