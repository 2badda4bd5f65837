// Package app is the composition root. It replaces the web client's global
// singleton stores with explicitly wired instances: configuration, snapshot
// storage, session and cart stores, and the API client with its forced-logout
// policy.
package app

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/DannerVelaF/VeterinariaAdelaFront/api"
	"github.com/DannerVelaF/VeterinariaAdelaFront/config"
	"github.com/DannerVelaF/VeterinariaAdelaFront/logging"
	"github.com/DannerVelaF/VeterinariaAdelaFront/storage"
	"github.com/DannerVelaF/VeterinariaAdelaFront/store"
)

// App holds the wired client core. UI code reads the stores and calls API
// methods; it never constructs these itself.
type App struct {
	Config  config.Config
	Log     *zap.Logger
	Storage *storage.Store
	Session *store.Session
	Cart    *store.Cart
	API     *api.Client

	// Navigate is called with a route when the session is force-expired and
	// the UI should move to the login screen. Defaults to a no-op.
	Navigate func(route string)
}

// New loads both snapshots, wires the stores together, and validates the
// restored cart against the restored session.
func New(cfg config.Config, logger *zap.Logger) (*App, error) {
	if logger == nil {
		var err error
		logger, err = logging.New(cfg.Debug)
		if err != nil {
			return nil, fmt.Errorf("build logger: %w", err)
		}
	}

	st, err := storage.Open(cfg.StoragePath, logger)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}

	a := &App{
		Config:   cfg,
		Log:      logger,
		Storage:  st,
		Navigate: func(string) {},
	}

	a.Session = store.NewSession(st, logger)
	if snap, ok, err := st.LoadSession(); err != nil {
		logger.Warn("session snapshot unreadable, starting anonymous", zap.Error(err))
	} else if ok {
		a.Session.Restore(snap)
	}

	a.Cart = store.NewCart(st, logger, cfg.CartTTL)
	if snap, ok, err := st.LoadCart(); err != nil {
		logger.Warn("cart snapshot unreadable, starting empty", zap.Error(err))
	} else if ok {
		a.Cart.Restore(snap)
	}

	// A cart must not survive a session end.
	a.Session.OnLogout(a.Cart.Clear)

	a.API = api.NewClient(api.ClientConfig{
		BaseURL:       cfg.APIBaseURL,
		Timeout:       cfg.HTTPTimeout,
		Session:       a.Session,
		Logger:        logger,
		OnAuthExpired: func() { a.Navigate("/login") },
	})

	store.ValidateForUser(a.Cart, a.Session.Persona(), logger)

	logger.Info("client core ready",
		zap.String("api_base_url", cfg.APIBaseURL),
		zap.Bool("authenticated", a.Session.IsAuthenticated()))
	return a, nil
}

// Close releases the snapshot database.
func (a *App) Close() error {
	return a.Storage.Close()
}
