package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings for the client.
type Config struct {
	APIBaseURL  string
	StoragePath string
	HTTPTimeout time.Duration
	CartTTL     time.Duration
	Debug       bool
}

// Load reads configuration from the environment. A .env file is honored when
// present, same as the backend services.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		APIBaseURL:  "http://localhost:8000/api/v1",
		StoragePath: "vetadela.db",
		HTTPTimeout: 15 * time.Second,
		CartTTL:     24 * time.Hour,
	}

	if v := os.Getenv("VETADELA_API_BASE_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("VETADELA_STORAGE_PATH"); v != "" {
		cfg.StoragePath = v
	}
	if v := os.Getenv("VETADELA_HTTP_TIMEOUT"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.HTTPTimeout = time.Duration(secs) * time.Second
		}
	}
	if v := os.Getenv("VETADELA_CART_TTL_HOURS"); v != "" {
		if hours, err := strconv.Atoi(v); err == nil && hours > 0 {
			cfg.CartTTL = time.Duration(hours) * time.Hour
		}
	}
	if v := os.Getenv("VETADELA_DEBUG"); v == "1" || v == "true" {
		cfg.Debug = true
	}
	return cfg
}
