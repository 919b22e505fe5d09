package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the service.
type Config struct {
	App    AppConfig
	Logger LoggerConfig
	Auth   AuthConfig
	Seed   SeedConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// AuthConfig selects the identity and credential schemes.
type AuthConfig struct {
	// Scheme is "header" (the claim header carries the user id directly)
	// or "token" (the claim header carries a signed JWT).
	Scheme                string
	IdentityHeader        string
	JWTSecret             string
	AccessTokenTTLMinutes int
	// PasswordScheme is "plain" (exact string comparison) or "bcrypt".
	PasswordScheme string
	BcryptCost     int
}

// SeedConfig optionally provisions an initial admin account at startup.
type SeedConfig struct {
	AdminName     string
	AdminContact  string
	AdminPassword string
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "gas-delivery-service"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "8080"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Auth: AuthConfig{
			Scheme:                getEnv("AUTH_SCHEME", "header"),
			IdentityHeader:        getEnv("AUTH_IDENTITY_HEADER", "X-User-ID"),
			JWTSecret:             getEnv("AUTH_JWT_SECRET", "dev-secret"),
			AccessTokenTTLMinutes: getEnvAsInt("AUTH_ACCESS_TOKEN_TTL_MINUTES", 60),
			PasswordScheme:        getEnv("AUTH_PASSWORD_SCHEME", "plain"),
			BcryptCost:            getEnvAsInt("AUTH_BCRYPT_COST", 12),
		},
		Seed: SeedConfig{
			AdminName:     getEnv("SEED_ADMIN_NAME", "Administrator"),
			AdminContact:  os.Getenv("SEED_ADMIN_CONTACT"),
			AdminPassword: os.Getenv("SEED_ADMIN_PASSWORD"),
		},
	}

	if cfg.Auth.Scheme != "header" && cfg.Auth.Scheme != "token" {
		return nil, fmt.Errorf("invalid AUTH_SCHEME: %q", cfg.Auth.Scheme)
	}
	if cfg.Auth.PasswordScheme != "plain" && cfg.Auth.PasswordScheme != "bcrypt" {
		return nil, fmt.Errorf("invalid AUTH_PASSWORD_SCHEME: %q", cfg.Auth.PasswordScheme)
	}

	return cfg, nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}
