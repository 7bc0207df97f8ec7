package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/blogem/contest-jury/models"
	"github.com/blogem/contest-jury/repositories"
)

var timeNow = func() time.Time {
	return time.Now()
}

// ScoreboardService assembles scoreboards from the rank cache
type ScoreboardService interface {
	// ActiveContests returns the active public contests, most recently started first
	ActiveContests(ctx context.Context) ([]models.Contest, error)
	// CurrentContest returns the contest the public scoreboard shows, or nil
	CurrentContest(ctx context.Context) (*models.Contest, error)
	GetScoreboard(ctx context.Context, contest *models.Contest, filter models.ScoreFilter) (*Scoreboard, error)
}

// Scoreboard is a ranked, filtered scoreboard plus the filter choices
type Scoreboard struct {
	Contest      *models.Contest
	Started      bool
	Rows         []models.ScoreboardRow
	Filter       models.ScoreFilter
	Categories   []models.TeamCategory
	Affiliations []models.TeamAffiliation
	Countries    []string
}

type scoreboardService struct {
	contestRepo    repositories.ContestRepository
	scoreboardRepo repositories.ScoreboardRepository
}

// NewScoreboardService creates a new scoreboard service
func NewScoreboardService(
	contestRepo repositories.ContestRepository,
	scoreboardRepo repositories.ScoreboardRepository,
) ScoreboardService {
	return &scoreboardService{
		contestRepo:    contestRepo,
		scoreboardRepo: scoreboardRepo,
	}
}

// ActiveContests filters all contests down to the active public ones
func (s *scoreboardService) ActiveContests(ctx context.Context) ([]models.Contest, error) {
	contests, err := s.contestRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get contests: %w", err)
	}

	now := timeNow()
	active := make([]models.Contest, 0, len(contests))
	for _, c := range contests {
		if c.Public && c.IsActive(now) {
			active = append(active, c)
		}
	}

	sort.SliceStable(active, func(i, j int) bool {
		return active[i].StartTime.After(active[j].StartTime)
	})

	return active, nil
}

// CurrentContest picks the most recently started active public contest
func (s *scoreboardService) CurrentContest(ctx context.Context) (*models.Contest, error) {
	active, err := s.ActiveContests(ctx)
	if err != nil {
		return nil, err
	}
	if len(active) == 0 {
		return nil, nil
	}
	return &active[0], nil
}

// GetScoreboard ranks the public rank cache of a contest and applies the filter.
// Ranks are computed over all teams so that filtering never renumbers them.
func (s *scoreboardService) GetScoreboard(ctx context.Context, contest *models.Contest, filter models.ScoreFilter) (*Scoreboard, error) {
	lines, err := s.scoreboardRepo.GetRankLines(ctx, contest.ID, false)
	if err != nil {
		return nil, fmt.Errorf("failed to get rank cache: %w", err)
	}

	categories, err := s.scoreboardRepo.GetCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get team categories: %w", err)
	}

	affiliations, err := s.scoreboardRepo.GetAffiliations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get team affiliations: %w", err)
	}

	ranked := rankLines(lines)
	rows := make([]models.ScoreboardRow, 0, len(ranked))
	for _, row := range ranked {
		if filter.Matches(row.RankLine) {
			rows = append(rows, row)
		}
	}

	return &Scoreboard{
		Contest:      contest,
		Started:      contest.HasStarted(timeNow()),
		Rows:         rows,
		Filter:       filter,
		Categories:   categories,
		Affiliations: affiliations,
		Countries:    countriesOf(affiliations),
	}, nil
}

// rankLines numbers lines that arrive in scoreboard order. Numbering restarts
// for every category sort order; equal points and time share a rank.
func rankLines(lines []models.RankCacheRow) []models.ScoreboardRow {
	rows := make([]models.ScoreboardRow, len(lines))

	position := 0
	for i, line := range lines {
		rows[i].RankLine = line

		if i == 0 || line.CategorySortOrder != lines[i-1].CategorySortOrder {
			position = 0
		}
		position++

		prev := i - 1
		if position > 1 && line.Points == lines[prev].Points && line.TotalTime == lines[prev].TotalTime {
			rows[i].Rank = rows[prev].Rank
			rows[i].Tied = true
			rows[prev].Tied = true
			continue
		}
		rows[i].Rank = position
	}

	return rows
}

func countriesOf(affiliations []models.TeamAffiliation) []string {
	seen := make(map[string]bool)
	var countries []string
	for _, a := range affiliations {
		if a.Country != "" && !seen[a.Country] {
			seen[a.Country] = true
			countries = append(countries, a.Country)
		}
	}
	sort.Strings(countries)
	return countries
}
