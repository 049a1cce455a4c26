package config

import (
	"fmt"
	"os"
	"strconv"
)

type AppConfig struct {
	Env  string
	Addr string

	JWTSecret     string
	JWTTTLMinutes int

	// Залить демо-данные при старте (только вне production).
	SeedDemoData bool
}

func LoadAppConfig() (*AppConfig, error) {
	cfg := &AppConfig{
		Env:           getEnv("APP_ENV", "development"),
		Addr:          getEnv("APP_ADDR", ":8080"),
		JWTSecret:     getEnv("JWT_SECRET", ""),
		JWTTTLMinutes: getEnvInt("JWT_TTL_MIN", 60*24),
		SeedDemoData:  getEnvBool("SEED_DEMO_DATA", false),
	}

	if cfg.JWTSecret == "" {
		if cfg.Env == "production" {
			return nil, fmt.Errorf("invalid app config: JWT_SECRET must be set in production")
		}
		cfg.JWTSecret = "dev-secret"
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}
