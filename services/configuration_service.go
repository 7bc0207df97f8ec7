package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/blogem/contest-jury/repositories"
)

// ConfigurationService reads jury configuration stored in the database
type ConfigurationService interface {
	GetString(ctx context.Context, name, fallback string) (string, error)
	TimeFormat(ctx context.Context) (string, error)
}

type configurationService struct {
	configRepo        repositories.ConfigurationRepository
	defaultTimeFormat string
}

// NewConfigurationService creates a configuration service; defaultTimeFormat
// applies when the database holds no time_format
func NewConfigurationService(configRepo repositories.ConfigurationRepository, defaultTimeFormat string) ConfigurationService {
	return &configurationService{
		configRepo:        configRepo,
		defaultTimeFormat: defaultTimeFormat,
	}
}

// GetString decodes a JSON string value, falling back when it is not set
func (s *configurationService) GetString(ctx context.Context, name, fallback string) (string, error) {
	raw, err := s.configRepo.Get(ctx, name)
	if errors.Is(err, repositories.ErrNotFound) {
		return fallback, nil
	}
	if err != nil {
		return "", err
	}

	var value string
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		return "", fmt.Errorf("configuration %q is not a string: %w", name, err)
	}
	return value, nil
}

// TimeFormat returns the strftime layout for short time display
func (s *configurationService) TimeFormat(ctx context.Context) (string, error) {
	return s.GetString(ctx, "time_format", s.defaultTimeFormat)
}
