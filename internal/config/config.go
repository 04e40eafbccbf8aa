package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultPort           = "8080"
	defaultDatabaseURL    = "pricing.db"
	defaultJWTSecret      = "change-me-jwt-secret"
	defaultJWTTTL         = "12h"
	defaultEditorUsername = "editor"
	defaultSection        = "home"
	defaultCacheSize      = "128"
	defaultLogLevel       = "info"
	defaultLogFormat      = "text"

	// local dev servers of the editing tool
	defaultDevOrigins = "http://localhost:3000,http://localhost:5173,http://127.0.0.1:3000,http://127.0.0.1:5173"
)

type Config struct {
	AppEnv      string
	Port        string
	DatabaseURL string

	JWTSecret          string
	JWTTTL             time.Duration
	EditorUsername     string
	EditorPasswordHash string

	DefaultSection   string
	ContentCacheSize int

	LogLevel  string
	LogFormat string

	AllowedOrigins []string
}

func Load() (*Config, error) {
	cfg := &Config{}
	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = strings.TrimSpace(os.Getenv("ENV"))
	}
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.Port = strings.TrimSpace(getEnv("PORT", defaultPort))
	cfg.DatabaseURL = strings.TrimSpace(getEnv("DATABASE_URL", defaultDatabaseURL))
	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret))
	cfg.EditorUsername = strings.TrimSpace(getEnv("EDITOR_USERNAME", defaultEditorUsername))
	cfg.EditorPasswordHash = strings.TrimSpace(os.Getenv("EDITOR_PASSWORD_HASH"))
	cfg.DefaultSection = strings.TrimSpace(getEnv("PRICING_SECTION", defaultSection))
	cfg.LogLevel = strings.TrimSpace(getEnv("LOG_LEVEL", defaultLogLevel))
	cfg.LogFormat = strings.TrimSpace(getEnv("LOG_FORMAT", defaultLogFormat))

	var err error
	cfg.JWTTTL, err = parseDurationEnv("JWT_TTL", defaultJWTTTL)
	if err != nil {
		return nil, err
	}

	cfg.ContentCacheSize, err = parseIntEnv("CONTENT_CACHE_SIZE", defaultCacheSize)
	if err != nil {
		return nil, err
	}

	origins := os.Getenv("CORS_ALLOWED_ORIGINS")
	if origins == "" && !isProdLike(cfg.AppEnv) {
		origins = defaultDevOrigins
	}
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
		}
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// EditorEnabled reports whether editor login is configured
func (c *Config) EditorEnabled() bool {
	return c.EditorUsername != "" && c.EditorPasswordHash != ""
}

// IsProd reports a production-like environment
func (c *Config) IsProd() bool { return isProdLike(c.AppEnv) }

func validateConfig(cfg *Config) error {
	if cfg.Port == "" {
		return fmt.Errorf("PORT must not be empty")
	}
	if _, err := strconv.Atoi(cfg.Port); err != nil {
		return fmt.Errorf("invalid PORT value %q", cfg.Port)
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL must not be empty")
	}
	if cfg.JWTTTL <= 0 {
		return fmt.Errorf("JWT_TTL must be > 0")
	}
	if cfg.ContentCacheSize <= 0 {
		return fmt.Errorf("CONTENT_CACHE_SIZE must be > 0")
	}
	if cfg.DefaultSection == "" {
		return fmt.Errorf("PRICING_SECTION must not be empty")
	}

	if isProdLike(cfg.AppEnv) {
		if isEmptyOrDefault(cfg.JWTSecret, defaultJWTSecret) {
			return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
		}
		if cfg.LogFormat != "json" {
			return fmt.Errorf("in prod/release LOG_FORMAT must be json")
		}
	}

	return nil
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func isEmptyOrDefault(v, def string) bool {
	trimmed := strings.TrimSpace(v)
	return trimmed == "" || trimmed == def
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func parseIntEnv(name, fallback string) (int, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return n, nil
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
