package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ConfigurationRepository stores JSON-encoded configuration values by name
type ConfigurationRepository interface {
	Get(ctx context.Context, name string) (string, error)
	Set(ctx context.Context, name, value string) error
}

type configurationRepository struct {
	db *sql.DB
}

// NewConfigurationRepository creates a new configuration repository
func NewConfigurationRepository(db *sql.DB) ConfigurationRepository {
	return &configurationRepository{db: db}
}

// Get returns the raw JSON value of a configuration item
func (r *configurationRepository) Get(ctx context.Context, name string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM configuration WHERE name = ?`, name).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("configuration %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("failed to get configuration %q: %w", name, err)
	}
	return value, nil
}

// Set inserts or replaces the raw JSON value of a configuration item
func (r *configurationRepository) Set(ctx context.Context, name, value string) error {
	query := `
		INSERT INTO configuration (name, value) VALUES (?, ?)
		ON CONFLICT (name) DO UPDATE SET value = excluded.value
	`
	if _, err := r.db.ExecContext(ctx, query, name, value); err != nil {
		return fmt.Errorf("failed to set configuration %q: %w", name, err)
	}
	return nil
}
