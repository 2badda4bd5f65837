package store

import (
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/DannerVelaF/VeterinariaAdelaFront/models"
)

// SessionSaver persists the session snapshot, best effort.
type SessionSaver interface {
	SaveSession(models.SessionSnapshot) error
}

// Session holds the authenticated identity and bearer token. Two states:
// anonymous (no persona) and authenticated. Logout is broadcast to
// registered listeners so dependent state, like the cart, can react without
// the stores importing each other.
type Session struct {
	mu      sync.Mutex
	persona *models.Persona
	token   string

	saver    SessionSaver
	log      *zap.Logger
	onLogout []func()
	now      func() time.Time
}

func NewSession(saver SessionSaver, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{saver: saver, log: logger, now: time.Now}
}

// Restore replaces the session with a previously persisted snapshot.
func (s *Session) Restore(snap models.SessionSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.persona = clonePersona(snap.Persona)
	s.token = snap.Token
}

// SetAuth replaces the identity and token unconditionally.
func (s *Session) SetAuth(persona models.Persona, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := persona
	s.persona = &p
	s.token = token
	s.persistLocked()
}

// Logout clears the identity and token and notifies listeners. Listeners run
// after the session state is already cleared and persisted.
func (s *Session) Logout() {
	s.mu.Lock()
	s.persona = nil
	s.token = ""
	s.persistLocked()
	listeners := make([]func(), len(s.onLogout))
	copy(listeners, s.onLogout)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
}

// OnLogout registers a listener invoked on every Logout.
func (s *Session) OnLogout(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onLogout = append(s.onLogout, fn)
}

// Persona returns a copy of the authenticated identity, or nil.
func (s *Session) Persona() *models.Persona {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clonePersona(s.persona)
}

func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *Session) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persona != nil
}

// TokenExpired inspects the bearer token's exp claim without verifying the
// signature (the client has no signing secret). Tokens without an exp claim,
// or that do not parse as JWTs, are left for the server to judge and report
// as not expired. An empty token is expired.
func (s *Session) TokenExpired() bool {
	s.mu.Lock()
	token := s.token
	s.mu.Unlock()

	if token == "" {
		return true
	}
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return false
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Time.Before(s.now())
}

func (s *Session) persistLocked() {
	if s.saver == nil {
		return
	}
	snap := models.SessionSnapshot{Persona: clonePersona(s.persona), Token: s.token}
	if err := s.saver.SaveSession(snap); err != nil {
		s.log.Warn("session snapshot write failed", zap.Error(err))
	}
}

func clonePersona(p *models.Persona) *models.Persona {
	if p == nil {
		return nil
	}
	cp := *p
	return &cp
}
