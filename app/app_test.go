package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DannerVelaF/VeterinariaAdelaFront/config"
	"github.com/DannerVelaF/VeterinariaAdelaFront/models"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{
		APIBaseURL:  "http://localhost:0/api/v1",
		StoragePath: filepath.Join(t.TempDir(), "snapshots.db"),
		HTTPTimeout: time.Second,
		CartTTL:     24 * time.Hour,
	}
}

func TestLogoutClearsCart(t *testing.T) {
	a, err := New(testConfig(t), nil)
	require.NoError(t, err)
	defer a.Close()

	a.Session.SetAuth(models.Persona{ID: 7, Nombre: "Danner"}, "tok")
	product := models.CartLine{ID: 1, Name: "Croquetas Premium", UnitPrice: 45.9}
	require.NoError(t, a.Cart.AddItem(product, 5, 7))
	require.NotEmpty(t, a.Cart.Lines())

	a.Session.Logout()

	assert.Nil(t, a.Session.Persona())
	assert.Empty(t, a.Session.Token())
	assert.Empty(t, a.Cart.Lines())
}

func TestStateSurvivesRestart(t *testing.T) {
	cfg := testConfig(t)

	a, err := New(cfg, nil)
	require.NoError(t, err)
	a.Session.SetAuth(models.Persona{ID: 7, Nombre: "Danner"}, "tok")
	product := models.CartLine{ID: 1, Name: "Croquetas Premium", UnitPrice: 45.9}
	require.NoError(t, a.Cart.AddItem(product, 5, 7))
	require.NoError(t, a.Close())

	b, err := New(cfg, nil)
	require.NoError(t, err)
	defer b.Close()

	assert.True(t, b.Session.IsAuthenticated())
	assert.Equal(t, "tok", b.Session.Token())
	require.Len(t, b.Cart.Lines(), 1)
	assert.Equal(t, 1, b.Cart.Lines()[0].Quantity)
	assert.True(t, b.Cart.IsValid(7))
}

func TestStartupClearsForeignCart(t *testing.T) {
	cfg := testConfig(t)

	a, err := New(cfg, nil)
	require.NoError(t, err)
	a.Session.SetAuth(models.Persona{ID: 7, Nombre: "Danner"}, "tok")
	product := models.CartLine{ID: 1, Name: "Croquetas Premium", UnitPrice: 45.9}
	require.NoError(t, a.Cart.AddItem(product, 5, 7))
	// a different user was stamped onto the persisted cart out of band
	a.Cart.SetUserID(9)
	require.NoError(t, a.Close())

	b, err := New(cfg, nil)
	require.NoError(t, err)
	defer b.Close()

	assert.Empty(t, b.Cart.Lines())
	assert.True(t, b.Cart.IsValid(7))
}

func TestStartupWithoutSessionClearsCart(t *testing.T) {
	cfg := testConfig(t)

	a, err := New(cfg, nil)
	require.NoError(t, err)
	a.Session.SetAuth(models.Persona{ID: 7}, "tok")
	product := models.CartLine{ID: 1, Name: "Croquetas Premium", UnitPrice: 45.9}
	require.NoError(t, a.Cart.AddItem(product, 5, 7))
	// crash-style end: session blob cleared, cart blob left behind
	a.Session.Logout()
	require.NoError(t, a.Storage.SaveCart(models.CartSnapshot{
		Lines:       []models.CartLine{{ID: 1, Name: "Croquetas Premium", UnitPrice: 45.9, Quantity: 2}},
		OwnerUserID: 7,
		LastUpdated: time.Now(),
	}))
	require.NoError(t, a.Close())

	b, err := New(cfg, nil)
	require.NoError(t, err)
	defer b.Close()

	assert.False(t, b.Session.IsAuthenticated())
	assert.Empty(t, b.Cart.Lines())
}

func TestForcedLogoutNavigatesToLogin(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/perfil/7", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Unauthenticated."}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	cfg := testConfig(t)
	cfg.APIBaseURL = srv.URL

	a, err := New(cfg, nil)
	require.NoError(t, err)
	defer a.Close()

	var route string
	a.Navigate = func(r string) { route = r }

	a.Session.SetAuth(models.Persona{ID: 7}, "stale")
	product := models.CartLine{ID: 1, Name: "Croquetas Premium", UnitPrice: 45.9}
	require.NoError(t, a.Cart.AddItem(product, 5, 7))

	_, err = a.API.Perfil(context.Background(), 7)
	require.Error(t, err)

	assert.Equal(t, "/login", route)
	assert.False(t, a.Session.IsAuthenticated())
	assert.Empty(t, a.Cart.Lines())
}
