package repositories

import (
	"database/sql"
	"errors"
)

// ErrNotFound is wrapped by repository errors for rows that do not exist
var ErrNotFound = errors.New("not found")

// Repositories struct holds all repository interfaces
type Repositories struct {
	AuditLog      AuditLogRepository
	User          UserRepository
	Testcase      TestcaseRepository
	Contest       ContestRepository
	Configuration ConfigurationRepository
	Scoreboard    ScoreboardRepository
}

// NewRepositories creates and initializes all repositories
func NewRepositories(db *sql.DB) *Repositories {
	return &Repositories{
		AuditLog:      NewAuditLogRepository(db),
		User:          NewUserRepository(db),
		Testcase:      NewTestcaseRepository(db),
		Contest:       NewContestRepository(db),
		Configuration: NewConfigurationRepository(db),
		Scoreboard:    NewScoreboardRepository(db),
	}
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullInt64(i *int64) sql.NullInt64 {
	if i == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *i, Valid: true}
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func int64Ptr(ni sql.NullInt64) *int64 {
	if !ni.Valid {
		return nil
	}
	i := ni.Int64
	return &i
}
