package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/blogem/contest-jury/models"
)

// AuditLogRepository handles audit log persistence
type AuditLogRepository interface {
	// List returns at most limit entries, newest first, skipping offset entries
	List(ctx context.Context, limit, offset int) ([]models.AuditLogEntry, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, entry *models.AuditLogEntry) error
}

type sqliteAuditLogRepository struct {
	db *sql.DB
}

// NewAuditLogRepository creates a new audit log repository
func NewAuditLogRepository(db *sql.DB) AuditLogRepository {
	return &sqliteAuditLogRepository{db: db}
}

// List retrieves one window of the audit log ordered by id descending
func (r *sqliteAuditLogRepository) List(ctx context.Context, limit, offset int) ([]models.AuditLogEntry, error) {
	query := `
		SELECT logid, logtime, cid, user, datatype, dataid, action, extrainfo
		FROM auditlog
		ORDER BY logid DESC
		LIMIT ? OFFSET ?
	`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit log: %w", err)
	}
	defer rows.Close()

	entries := make([]models.AuditLogEntry, 0, limit)
	for rows.Next() {
		var entry models.AuditLogEntry
		var logTime float64
		var cid sql.NullInt64
		var user, dataID, extraInfo sql.NullString

		err := rows.Scan(
			&entry.ID,
			&logTime,
			&cid,
			&user,
			&entry.Datatype,
			&dataID,
			&entry.Action,
			&extraInfo,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan audit log entry: %w", err)
		}

		entry.Timestamp = models.FromUnixSeconds(logTime)
		entry.ContestID = int64Ptr(cid)
		entry.User = stringPtr(user)
		entry.DataID = stringPtr(dataID)
		entry.ExtraInfo = stringPtr(extraInfo)

		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating audit log: %w", err)
	}

	return entries, nil
}

// Count returns the total number of audit log entries
func (r *sqliteAuditLogRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM auditlog`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count audit log entries: %w", err)
	}
	return count, nil
}

// Create appends a new audit log entry
func (r *sqliteAuditLogRepository) Create(ctx context.Context, entry *models.AuditLogEntry) error {
	query := `
		INSERT INTO auditlog (logtime, cid, user, datatype, dataid, action, extrainfo)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	result, err := r.db.ExecContext(ctx, query,
		models.UnixSeconds(entry.Timestamp),
		nullInt64(entry.ContestID),
		nullString(entry.User),
		entry.Datatype,
		nullString(entry.DataID),
		entry.Action,
		nullString(entry.ExtraInfo),
	)
	if err != nil {
		return fmt.Errorf("failed to create audit log entry: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted ID: %w", err)
	}

	entry.ID = id
	return nil
}
