package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/blogem/contest-jury/models"
)

// TestcaseRepository looks up testcases
type TestcaseRepository interface {
	GetByID(ctx context.Context, id int64) (*models.Testcase, error)
}

type testcaseRepository struct {
	db *sql.DB
}

// NewTestcaseRepository creates a new testcase repository
func NewTestcaseRepository(db *sql.DB) TestcaseRepository {
	return &testcaseRepository{db: db}
}

// GetByID retrieves a testcase by id
func (r *testcaseRepository) GetByID(ctx context.Context, id int64) (*models.Testcase, error) {
	query := `SELECT testcaseid, probid, rank, description FROM testcases WHERE testcaseid = ?`

	var tc models.Testcase
	err := r.db.QueryRowContext(ctx, query, id).Scan(&tc.ID, &tc.ProblemID, &tc.Rank, &tc.Description)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("testcase with ID %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get testcase: %w", err)
	}

	return &tc, nil
}
