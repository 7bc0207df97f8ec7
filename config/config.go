// Package config loads the jury console configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	// DefaultTimeFormat is the strftime format used for audit log timestamps
	// when the configuration table has no time_format entry.
	DefaultTimeFormat = "%H:%M"
	// DefaultAuditLogPageSize is the number of audit log entries per page.
	DefaultAuditLogPageSize = 1000
	// DefaultScoreboardRefresh is the auto-refresh interval of the scoreboard.
	DefaultScoreboardRefresh = 30 * time.Second
)

// OIDCConfig holds the OpenID Connect provider settings.
type OIDCConfig struct {
	Domain       string
	ClientID     string
	ClientSecret string
	CallbackURL  string
}

// Enabled reports whether an identity provider has been configured.
func (o OIDCConfig) Enabled() bool {
	return o.Domain != ""
}

// Config holds all settings of the jury console.
type Config struct {
	Port       string
	DBPath     string
	LogLevel   string
	Env        string
	UseHTTPS   bool
	AdminRole  string
	TimeFormat string

	AuditLogPageSize  int
	ScoreboardRefresh time.Duration

	OIDC OIDCConfig
}

// LoadDotEnv loads a .env file when one exists. A missing file is not an error.
func LoadDotEnv(filenames ...string) error {
	if err := godotenv.Load(filenames...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}
	return nil
}

// Load reads the configuration from environment variables and validates it.
func Load() (*Config, error) {
	cfg := &Config{
		Port:       getEnv("PORT", "8080"),
		DBPath:     getEnv("DB_PATH", "jury.db"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		Env:        getEnv("ENV", "development"),
		UseHTTPS:   os.Getenv("USE_HTTPS") == "true",
		AdminRole:  getEnv("ADMIN_ROLE", "admin"),
		TimeFormat: getEnv("TIME_FORMAT", DefaultTimeFormat),
		OIDC: OIDCConfig{
			Domain:       os.Getenv("OIDC_DOMAIN"),
			ClientID:     os.Getenv("OIDC_CLIENT_ID"),
			ClientSecret: os.Getenv("OIDC_CLIENT_SECRET"),
			CallbackURL:  os.Getenv("OIDC_CALLBACK_URL"),
		},
	}

	pageSize, err := getEnvInt("AUDITLOG_PAGE_SIZE", DefaultAuditLogPageSize)
	if err != nil {
		return nil, err
	}
	cfg.AuditLogPageSize = pageSize

	refresh, err := getEnvDuration("SCOREBOARD_REFRESH", DefaultScoreboardRefresh)
	if err != nil {
		return nil, err
	}
	cfg.ScoreboardRefresh = refresh

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration is internally consistent.
func (c *Config) Validate() error {
	if c.AuditLogPageSize <= 0 {
		return fmt.Errorf("AUDITLOG_PAGE_SIZE must be positive, got %d", c.AuditLogPageSize)
	}
	if c.ScoreboardRefresh <= 0 {
		return fmt.Errorf("SCOREBOARD_REFRESH must be positive, got %s", c.ScoreboardRefresh)
	}
	if c.DBPath == "" {
		return errors.New("DB_PATH must not be empty")
	}
	if c.OIDC.Enabled() {
		if c.OIDC.ClientID == "" || c.OIDC.ClientSecret == "" || c.OIDC.CallbackURL == "" {
			return errors.New("OIDC_CLIENT_ID, OIDC_CLIENT_SECRET and OIDC_CALLBACK_URL are required when OIDC_DOMAIN is set")
		}
	}
	return nil
}

// SlogLevel maps LogLevel to an slog.Level.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// IsProduction returns true when running with ENV=production.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// NewLogger builds the process logger: JSON in production, text otherwise.
func (c *Config) NewLogger() *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.SlogLevel()}
	if c.IsProduction() {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return n, nil
}

func getEnvDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return d, nil
}
