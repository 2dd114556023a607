// Package config loads server settings from the environment with
// development-friendly defaults.
package config

import (
	"os"
	"strconv"
	"time"
)

// defaultSecret signs tokens when JWT_SECRET is unset. Fine for local
// development, never for production.
const defaultSecret = "SECRET_FOR_DEV"

type Config struct {
	Port      string
	JWTSecret string
	TokenTTL  time.Duration
}

func Load() Config {
	ttl := 60
	if v, err := strconv.Atoi(getenv("TOKEN_TTL_MINUTES", "60")); err == nil && v > 0 {
		ttl = v
	}

	return Config{
		Port:      getenv("PORT", "8080"),
		JWTSecret: getenv("JWT_SECRET", defaultSecret),
		TokenTTL:  time.Duration(ttl) * time.Minute,
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
