package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds runtime configuration sourced from env vars. It is read once
// at startup and passed by reference; nothing re-reads the environment later.
type Config struct {
	Env         string   `env:"APP_ENV" env-default:"dev"`
	Port        string   `env:"PORT" env-default:"8080"`
	DatabaseURL string   `env:"DATABASE_URL"`
	JWTSecret   string   `env:"JWT_SECRET"`
	JWTTTLHours int      `env:"JWT_TTL_HOURS" env-default:"168"`
	BcryptCost  int      `env:"BCRYPT_COST" env-default:"12"`
	CORSOrigins []string `env:"CORS_ALLOWED_ORIGINS" env-default:"*" env-separator:","`
}

// Load reads configuration from the environment and validates it. A missing
// signing secret or database URL is a startup failure, never a fallback.
func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read env: %w", err)
	}

	cfg.DatabaseURL = strings.TrimSpace(cfg.DatabaseURL)
	cfg.JWTSecret = strings.TrimSpace(cfg.JWTSecret)

	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("DATABASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		return Config{}, errors.New("JWT_SECRET is required")
	}
	if cfg.JWTTTLHours <= 0 {
		return Config{}, errors.New("JWT_TTL_HOURS must be positive")
	}
	if cfg.BcryptCost < 10 || cfg.BcryptCost > 14 {
		return Config{}, errors.New("BCRYPT_COST must be between 10 and 14")
	}

	return cfg, nil
}

// JWTTTL returns the configured token lifetime.
func (c Config) JWTTTL() time.Duration {
	return time.Duration(c.JWTTTLHours) * time.Hour
}

// HTTPAddress returns the host:port pair for the HTTP server to bind to.
func (c Config) HTTPAddress() string {
	return fmt.Sprintf(":%s", c.Port)
}

// Production reports whether the service runs in production mode.
func (c Config) Production() bool {
	return c.Env == "prod" || c.Env == "production"
}
