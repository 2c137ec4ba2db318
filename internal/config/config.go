package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const devSessionSecret = "onlearn-dev-session-secret"

// Config holds application configuration loaded from environment variables
type Config struct {
	AppName string
	Env     string // development, production
	Port    string
	GinMode string

	// Production switches cookie attributes to cross-site capable ones
	Production bool

	SessionSecret string

	// CORS allow-list, comma-separated
	FrontendURL string

	SeedOnStartup  bool
	HTTPLogEnabled bool

	DB DBConfig

	// Problems lists environment values that failed to parse and fell back
	// to their defaults
	Problems []error
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// envReader collects malformed values so they can be reported once a
// logger exists
type envReader struct {
	problems []error
}

func (r *envReader) getBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			r.problems = append(r.problems, fmt.Errorf("invalid boolean for %s, using default %v: %w", key, def, err))
			return def
		}
		return b
	}
	return def
}

func (r *envReader) getInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			r.problems = append(r.problems, fmt.Errorf("invalid int for %s, using default %d: %w", key, def, err))
			return def
		}
		return i
	}
	return def
}

func (r *envReader) getDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			r.problems = append(r.problems, fmt.Errorf("invalid duration for %s, using default %v: %w", key, def, err))
			return def
		}
		return d
	}
	return def
}

// IsProduction reports whether the process runs on Render or was explicitly
// configured with ENVIRONMENT=production
func IsProduction() bool {
	return os.Getenv("RENDER") != "" || os.Getenv("ENVIRONMENT") == "production"
}

// Load loads configuration from environment variables
func Load() *Config {
	production := IsProduction()
	env := "development"
	if production {
		env = "production"
	}

	r := &envReader{}
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" && !production {
		secret = devSessionSecret
	}

	cfg := &Config{
		AppName:    getenv("APP_NAME", "onlearn"),
		Env:        getenv("APP_ENV", env),
		Port:       getenv("PORT", "8000"),
		GinMode:    getenv("GIN_MODE", "release"),
		Production: production,

		SessionSecret: secret,

		FrontendURL: getenv("FRONTEND_URL", "http://localhost:5173,http://localhost:3000"),

		SeedOnStartup:  r.getBool("SEED_ON_STARTUP", true),
		HTTPLogEnabled: r.getBool("HTTP_LOG_ENABLED", false),

		DB: DBConfig{
			URL:         os.Getenv("DATABASE_URL"),
			Host:        getenv("DB_HOST", "localhost"),
			Port:        getenv("DB_PORT", "5432"),
			User:        getenv("DB_USER", "postgres"),
			Password:    getenv("DB_PASSWORD", "postgres"),
			Name:        getenv("DB_NAME", "onlearn"),
			SSLMode:     getenv("DB_SSLMODE", "disable"),
			MaxConns:    int32(r.getInt("DB_MAX_CONNS", 10)),
			MinConns:    int32(r.getInt("DB_MIN_CONNS", 1)),
			MaxConnLife: r.getDuration("DB_MAX_CONN_LIFETIME", time.Hour),
		},
	}
	cfg.Problems = r.problems
	return cfg
}

// CORSOrigins returns the allowed origins as slice
func (c *Config) CORSOrigins() []string {
	parts := strings.Split(c.FrontendURL, ",")
	res := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimRight(strings.TrimSpace(p), "/")
		if p != "" {
			res = append(res, p)
		}
	}
	return res
}
