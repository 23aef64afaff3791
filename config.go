package main

import (
	"fmt"
	"os"
	"time"
)

// Config holds all environment variables for the storefront service.
type Config struct {
	Env            string        // "development" or "production"
	Port           string        // service port (default: 8083)
	RedisURL       string        // cart + listing cache storage
	JWTSecret      string        // shared secret for cart-route auth
	CatalogLatency time.Duration // simulated provider latency
	CartTTL        time.Duration // idle cart expiry
	PageSize       int           // collection grid page size
}

// LoadConfig loads environment variables into a Config and validates them.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Env:            getEnv("APP_ENV", "development"),
		Port:           getEnv("PORT", "8083"),
		RedisURL:       getEnv("REDIS_URL", "redis://redis:6379"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		CatalogLatency: 300 * time.Millisecond,
		CartTTL:        72 * time.Hour,
		PageSize:       12,
	}

	if raw := os.Getenv("CATALOG_LATENCY"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid CATALOG_LATENCY: %w", err)
		}
		cfg.CatalogLatency = d
	}
	if raw := os.Getenv("CART_TTL"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid CART_TTL: %w", err)
		}
		cfg.CartTTL = d
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
