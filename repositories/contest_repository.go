package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/blogem/contest-jury/models"
)

// ContestRepository interface defines contest lookups
type ContestRepository interface {
	GetByID(ctx context.Context, id int64) (*models.Contest, error)
	GetAll(ctx context.Context) ([]models.Contest, error)
}

type contestRepository struct {
	db *sql.DB
}

// NewContestRepository creates a new contest repository
func NewContestRepository(db *sql.DB) ContestRepository {
	return &contestRepository{db: db}
}

const contestColumns = `cid, externalid, name, shortname, activatetime, starttime, endtime,
		       deactivatetime, public, enabled`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanContest(row rowScanner) (*models.Contest, error) {
	var c models.Contest
	var externalID sql.NullString
	var activate, start, end float64
	var deactivate sql.NullFloat64

	if err := row.Scan(
		&c.ID,
		&externalID,
		&c.Name,
		&c.ShortName,
		&activate,
		&start,
		&end,
		&deactivate,
		&c.Public,
		&c.Enabled,
	); err != nil {
		return nil, err
	}

	c.ExternalID = externalID.String
	c.ActivateTime = models.FromUnixSeconds(activate)
	c.StartTime = models.FromUnixSeconds(start)
	c.EndTime = models.FromUnixSeconds(end)
	if deactivate.Valid {
		t := models.FromUnixSeconds(deactivate.Float64)
		c.DeactivateTime = &t
	}

	return &c, nil
}

// GetByID retrieves a contest by id
func (r *contestRepository) GetByID(ctx context.Context, id int64) (*models.Contest, error) {
	query := `SELECT ` + contestColumns + ` FROM contests WHERE cid = ?`

	contest, err := scanContest(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("contest with ID %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get contest: %w", err)
	}

	return contest, nil
}

// GetAll retrieves all contests, most recently started first
func (r *contestRepository) GetAll(ctx context.Context) ([]models.Contest, error) {
	query := `SELECT ` + contestColumns + ` FROM contests ORDER BY starttime DESC, cid DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query contests: %w", err)
	}
	defer rows.Close()

	var contests []models.Contest
	for rows.Next() {
		contest, err := scanContest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contest: %w", err)
		}
		contests = append(contests, *contest)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating contests: %w", err)
	}

	return contests, nil
}
