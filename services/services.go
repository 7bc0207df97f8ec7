package services

import (
	"log/slog"

	"github.com/blogem/contest-jury/metrics"
	"github.com/blogem/contest-jury/repositories"
)

// Options carries the settings services need from the configuration
type Options struct {
	AuditLogPageSize  int
	DefaultTimeFormat string
	Logger            *slog.Logger
	Metrics           *metrics.Metrics
}

// Services holds all service instances
type Services struct {
	AuditLog      AuditLogService
	Locator       ResourceLocator
	Configuration ConfigurationService
	Scoreboard    ScoreboardService
	Users         UserService
}

// NewServices creates and initializes all service instances
func NewServices(repos *repositories.Repositories, opts Options) *Services {
	locator := NewResourceLocator(repos.User, repos.Testcase, opts.Logger, opts.Metrics)

	return &Services{
		AuditLog:      NewAuditLogService(repos.AuditLog, locator, opts.Metrics, opts.AuditLogPageSize),
		Locator:       locator,
		Configuration: NewConfigurationService(repos.Configuration, opts.DefaultTimeFormat),
		Scoreboard:    NewScoreboardService(repos.Contest, repos.Scoreboard),
		Users:         NewUserService(repos.User),
	}
}
