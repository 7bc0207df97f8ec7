package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/blogem/contest-jury/models"
	"github.com/blogem/contest-jury/repositories/mocks"
)

func i64(v int64) *int64 { return &v }

// ScoreboardServiceTestSuite is a test suite for the public scoreboard
type ScoreboardServiceTestSuite struct {
	suite.Suite
	ctx             context.Context
	now             time.Time
	mockContests    *mocks.MockContestRepository
	mockScoreboards *mocks.MockScoreboardRepository
	service         ScoreboardService
}

// SetupTest sets up the test suite before each test
func (suite *ScoreboardServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.now = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	timeNow = func() time.Time { return suite.now }

	suite.mockContests = mocks.NewMockContestRepository(suite.T())
	suite.mockScoreboards = mocks.NewMockScoreboardRepository(suite.T())
	suite.service = NewScoreboardService(suite.mockContests, suite.mockScoreboards)
}

// TearDownTest restores the clock
func (suite *ScoreboardServiceTestSuite) TearDownTest() {
	timeNow = time.Now
}

func (suite *ScoreboardServiceTestSuite) contest(id int64, start time.Time, public bool) models.Contest {
	return models.Contest{
		ID:           id,
		ExternalID:   fmt.Sprintf("contest-%d", id),
		Name:         "Contest",
		ActivateTime: start.Add(-time.Hour),
		StartTime:    start,
		EndTime:      start.Add(5 * time.Hour),
		Public:       public,
		Enabled:      true,
	}
}

// TestActiveContests_FiltersAndOrders tests visibility and newest-first ordering
func (suite *ScoreboardServiceTestSuite) TestActiveContests_FiltersAndOrders() {
	older := suite.contest(1, suite.now.Add(-48*time.Hour), true)
	newer := suite.contest(2, suite.now.Add(-time.Hour), true)
	private := suite.contest(3, suite.now.Add(-time.Hour), false)
	future := suite.contest(4, suite.now.Add(48*time.Hour), true)
	ended := suite.contest(5, suite.now.Add(-72*time.Hour), true)
	deactivated := suite.now.Add(-time.Minute)
	ended.DeactivateTime = &deactivated

	suite.mockContests.EXPECT().GetAll(mock.Anything).Return([]models.Contest{older, private, future, ended, newer}, nil)

	active, err := suite.service.ActiveContests(suite.ctx)

	require.NoError(suite.T(), err)
	require.Len(suite.T(), active, 2)
	assert.Equal(suite.T(), int64(2), active[0].ID)
	assert.Equal(suite.T(), int64(1), active[1].ID)
}

// TestCurrentContest_None tests that no active contest yields nil
func (suite *ScoreboardServiceTestSuite) TestCurrentContest_None() {
	suite.mockContests.EXPECT().GetAll(mock.Anything).Return([]models.Contest{}, nil)

	contest, err := suite.service.CurrentContest(suite.ctx)

	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), contest)
}

// TestCurrentContest_StoreFailure tests that store errors surface
func (suite *ScoreboardServiceTestSuite) TestCurrentContest_StoreFailure() {
	suite.mockContests.EXPECT().GetAll(mock.Anything).Return(nil, errors.New("database is locked"))

	_, err := suite.service.CurrentContest(suite.ctx)

	assert.ErrorContains(suite.T(), err, "failed to get contests")
}

// TestGetScoreboard_RanksAndFilters tests ranking, ties and filtering
func (suite *ScoreboardServiceTestSuite) TestGetScoreboard_RanksAndFilters() {
	contest := suite.contest(1, suite.now.Add(-time.Hour), true)
	suite.mockScoreboards.EXPECT().GetRankLines(mock.Anything, int64(1), false).Return([]models.RankCacheRow{
		{TeamID: 1, TeamName: "alpha", CategoryID: 1, AffiliationID: i64(1), Country: "NLD", Points: 5, TotalTime: 300},
		{TeamID: 2, TeamName: "beta", CategoryID: 1, AffiliationID: i64(2), Country: "BEL", Points: 4, TotalTime: 200},
		{TeamID: 3, TeamName: "gamma", CategoryID: 1, AffiliationID: i64(1), Country: "NLD", Points: 4, TotalTime: 200},
		{TeamID: 4, TeamName: "delta", CategoryID: 1, Points: 1, TotalTime: 10},
	}, nil)
	suite.mockScoreboards.EXPECT().GetCategories(mock.Anything).Return([]models.TeamCategory{{ID: 1, Name: "Participants", Visible: true}}, nil)
	suite.mockScoreboards.EXPECT().GetAffiliations(mock.Anything).Return([]models.TeamAffiliation{
		{ID: 1, ShortName: "UU", Country: "NLD"},
		{ID: 2, ShortName: "KUL", Country: "BEL"},
		{ID: 3, ShortName: "TUD", Country: "NLD"},
	}, nil)

	board, err := suite.service.GetScoreboard(suite.ctx, &contest, models.ScoreFilter{Affiliations: []int64{1}})

	require.NoError(suite.T(), err)
	assert.True(suite.T(), board.Started)
	assert.Equal(suite.T(), []string{"BEL", "NLD"}, board.Countries)
	require.Len(suite.T(), board.Rows, 2)

	// ranks keep their unfiltered values
	assert.Equal(suite.T(), "alpha", board.Rows[0].RankLine.TeamName)
	assert.Equal(suite.T(), 1, board.Rows[0].Rank)
	assert.False(suite.T(), board.Rows[0].Tied)
	assert.Equal(suite.T(), "gamma", board.Rows[1].RankLine.TeamName)
	assert.Equal(suite.T(), 2, board.Rows[1].Rank)
	assert.True(suite.T(), board.Rows[1].Tied)
}

// TestGetScoreboard_NotStarted tests that a contest before its start is flagged
func (suite *ScoreboardServiceTestSuite) TestGetScoreboard_NotStarted() {
	contest := suite.contest(1, suite.now.Add(30*time.Minute), true)
	suite.mockScoreboards.EXPECT().GetRankLines(mock.Anything, int64(1), false).Return(nil, nil)
	suite.mockScoreboards.EXPECT().GetCategories(mock.Anything).Return(nil, nil)
	suite.mockScoreboards.EXPECT().GetAffiliations(mock.Anything).Return(nil, nil)

	board, err := suite.service.GetScoreboard(suite.ctx, &contest, models.ScoreFilter{})

	require.NoError(suite.T(), err)
	assert.False(suite.T(), board.Started)
	assert.Empty(suite.T(), board.Rows)
}

// TestGetScoreboard_StoreFailure tests that store errors surface
func (suite *ScoreboardServiceTestSuite) TestGetScoreboard_StoreFailure() {
	contest := suite.contest(1, suite.now, true)
	suite.mockScoreboards.EXPECT().GetRankLines(mock.Anything, int64(1), false).Return(nil, errors.New("database is locked"))

	_, err := suite.service.GetScoreboard(suite.ctx, &contest, models.ScoreFilter{})

	assert.ErrorContains(suite.T(), err, "failed to get rank cache")
}

func TestScoreboardServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ScoreboardServiceTestSuite))
}

func TestRankLines(t *testing.T) {
	rows := rankLines([]models.RankCacheRow{
		{TeamName: "a", CategorySortOrder: 0, Points: 3, TotalTime: 100},
		{TeamName: "b", CategorySortOrder: 0, Points: 3, TotalTime: 100},
		{TeamName: "c", CategorySortOrder: 0, Points: 3, TotalTime: 100},
		{TeamName: "d", CategorySortOrder: 0, Points: 2, TotalTime: 50},
		{TeamName: "e", CategorySortOrder: 1, Points: 2, TotalTime: 50},
		{TeamName: "f", CategorySortOrder: 1, Points: 0, TotalTime: 0},
	})

	ranks := make([]int, len(rows))
	tied := make([]bool, len(rows))
	for i, r := range rows {
		ranks[i] = r.Rank
		tied[i] = r.Tied
	}

	assert.Equal(t, []int{1, 1, 1, 4, 1, 2}, ranks)
	// d and e share a score but sit in different sort groups
	assert.Equal(t, []bool{true, true, true, false, false, false}, tied)
}

func TestRankLines_Empty(t *testing.T) {
	assert.Empty(t, rankLines(nil))
}
