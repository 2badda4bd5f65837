package store

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DannerVelaF/VeterinariaAdelaFront/models"
)

func testPersona(id int64) models.Persona {
	return models.Persona{
		ID:              id,
		Nombre:          "Danner",
		ApellidoPaterno: "Vela",
		Correo:          "danner@example.com",
		Usuario:         models.Usuario{ID: id, Usuario: "danner", Estado: "activo"},
	}
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "7",
		"exp": exp.Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestSetAuthAndLogout(t *testing.T) {
	session := NewSession(nil, nil)
	assert.False(t, session.IsAuthenticated())
	assert.Nil(t, session.Persona())

	session.SetAuth(testPersona(7), "tok-123")
	assert.True(t, session.IsAuthenticated())
	assert.Equal(t, "tok-123", session.Token())
	require.NotNil(t, session.Persona())
	assert.Equal(t, int64(7), session.Persona().ID)

	session.Logout()
	assert.False(t, session.IsAuthenticated())
	assert.Nil(t, session.Persona())
	assert.Empty(t, session.Token())
}

func TestLogoutNotifiesListeners(t *testing.T) {
	session := NewSession(nil, nil)
	calls := 0
	session.OnLogout(func() { calls++ })
	session.OnLogout(func() { calls++ })

	session.SetAuth(testPersona(7), "tok")
	session.Logout()
	assert.Equal(t, 2, calls)

	// logging out while anonymous still notifies
	session.Logout()
	assert.Equal(t, 4, calls)
}

func TestLogoutClearsSubscribedCart(t *testing.T) {
	session := NewSession(nil, nil)
	cart := NewCart(nil, nil, 0)
	session.OnLogout(cart.Clear)

	session.SetAuth(testPersona(7), "tok")
	require.NoError(t, cart.AddItem(testProduct(1), 5, 7))
	require.NotEmpty(t, cart.Lines())

	session.Logout()

	assert.Nil(t, session.Persona())
	assert.Empty(t, session.Token())
	assert.Empty(t, cart.Lines())
}

func TestSessionPersists(t *testing.T) {
	saver := &fakeSaver{}
	session := NewSession(saver, nil)

	session.SetAuth(testPersona(7), "tok")
	session.Logout()

	require.Len(t, saver.sessions, 2)
	assert.NotNil(t, saver.sessions[0].Persona)
	assert.Nil(t, saver.sessions[1].Persona)
	assert.Empty(t, saver.sessions[1].Token)
}

func TestTokenExpired(t *testing.T) {
	session := NewSession(nil, nil)

	// no token at all
	assert.True(t, session.TokenExpired())

	session.SetAuth(testPersona(7), signedToken(t, time.Now().Add(time.Hour)))
	assert.False(t, session.TokenExpired())

	session.SetAuth(testPersona(7), signedToken(t, time.Now().Add(-time.Hour)))
	assert.True(t, session.TokenExpired())

	// opaque tokens are left for the server to judge
	session.SetAuth(testPersona(7), "not-a-jwt")
	assert.False(t, session.TokenExpired())
}

func TestSessionRestore(t *testing.T) {
	session := NewSession(nil, nil)
	p := testPersona(7)
	session.Restore(models.SessionSnapshot{Persona: &p, Token: "tok"})

	assert.True(t, session.IsAuthenticated())
	assert.Equal(t, "tok", session.Token())
	assert.Equal(t, int64(7), session.Persona().ID)
}
