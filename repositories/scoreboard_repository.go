package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/blogem/contest-jury/models"
)

// ScoreboardRepository reads the rank cache maintained by the scoring engine
type ScoreboardRepository interface {
	// GetRankLines returns the score lines of enabled teams in visible
	// categories, in scoreboard order
	GetRankLines(ctx context.Context, contestID int64, restricted bool) ([]models.RankCacheRow, error)
	GetCategories(ctx context.Context) ([]models.TeamCategory, error)
	GetAffiliations(ctx context.Context) ([]models.TeamAffiliation, error)
}

type scoreboardRepository struct {
	db *sql.DB
}

// NewScoreboardRepository creates a new scoreboard repository
func NewScoreboardRepository(db *sql.DB) ScoreboardRepository {
	return &scoreboardRepository{db: db}
}

// GetRankLines reads the public or restricted score columns for a contest
func (r *scoreboardRepository) GetRankLines(ctx context.Context, contestID int64, restricted bool) ([]models.RankCacheRow, error) {
	points, totalTime := "rc.points_public", "rc.totaltime_public"
	if restricted {
		points, totalTime = "rc.points_restricted", "rc.totaltime_restricted"
	}

	query := `
		SELECT t.teamid, t.name, c.categoryid, c.name, c.sortorder,
		       a.affilid, COALESCE(a.name, ''), COALESCE(a.country, ''),
		       ` + points + `, ` + totalTime + `
		FROM rankcache rc
		JOIN teams t ON t.teamid = rc.teamid
		JOIN team_categories c ON c.categoryid = t.categoryid
		LEFT JOIN team_affiliations a ON a.affilid = t.affilid
		WHERE rc.cid = ? AND t.enabled = 1 AND c.visible = 1
		ORDER BY c.sortorder ASC, ` + points + ` DESC, ` + totalTime + ` ASC, t.name ASC
	`

	rows, err := r.db.QueryContext(ctx, query, contestID)
	if err != nil {
		return nil, fmt.Errorf("failed to query rank cache: %w", err)
	}
	defer rows.Close()

	var lines []models.RankCacheRow
	for rows.Next() {
		var line models.RankCacheRow
		var affilID sql.NullInt64

		err := rows.Scan(
			&line.TeamID,
			&line.TeamName,
			&line.CategoryID,
			&line.CategoryName,
			&line.CategorySortOrder,
			&affilID,
			&line.AffiliationName,
			&line.Country,
			&line.Points,
			&line.TotalTime,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan rank cache row: %w", err)
		}
		line.AffiliationID = int64Ptr(affilID)

		lines = append(lines, line)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rank cache: %w", err)
	}

	return lines, nil
}

// GetCategories retrieves the visible team categories
func (r *scoreboardRepository) GetCategories(ctx context.Context) ([]models.TeamCategory, error) {
	query := `
		SELECT categoryid, name, sortorder, visible
		FROM team_categories
		WHERE visible = 1
		ORDER BY sortorder ASC, name ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query team categories: %w", err)
	}
	defer rows.Close()

	var categories []models.TeamCategory
	for rows.Next() {
		var c models.TeamCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.SortOrder, &c.Visible); err != nil {
			return nil, fmt.Errorf("failed to scan team category: %w", err)
		}
		categories = append(categories, c)
	}

	return categories, rows.Err()
}

// GetAffiliations retrieves all team affiliations
func (r *scoreboardRepository) GetAffiliations(ctx context.Context) ([]models.TeamAffiliation, error) {
	query := `
		SELECT affilid, shortname, name, COALESCE(country, '')
		FROM team_affiliations
		ORDER BY name ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query team affiliations: %w", err)
	}
	defer rows.Close()

	var affiliations []models.TeamAffiliation
	for rows.Next() {
		var a models.TeamAffiliation
		if err := rows.Scan(&a.ID, &a.ShortName, &a.Name, &a.Country); err != nil {
			return nil, fmt.Errorf("failed to scan team affiliation: %w", err)
		}
		affiliations = append(affiliations, a)
	}

	return affiliations, rows.Err()
}
