package services

import (
	"context"
	"errors"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/blogem/contest-jury/database"
	"github.com/blogem/contest-jury/metrics"
	"github.com/blogem/contest-jury/models"
	"github.com/blogem/contest-jury/repositories"
	"github.com/blogem/contest-jury/repositories/mocks"
)

// entriesDescending builds audit log entries with ids from..to, newest first
func entriesDescending(from, to int64) []models.AuditLogEntry {
	entries := make([]models.AuditLogEntry, 0, from-to+1)
	for id := from; id >= to; id-- {
		entries = append(entries, models.AuditLogEntry{
			ID:        id,
			Timestamp: time.Unix(1709280000+id, 0).UTC(),
			Datatype:  models.DatatypeContest,
			DataID:    ptr(strconv.FormatInt(id%3+1, 10)),
			Action:    "updated",
		})
	}
	return entries
}

// AuditLogServiceTestSuite is a test suite for the audit log paginator
type AuditLogServiceTestSuite struct {
	suite.Suite
	ctx           context.Context
	metrics       *metrics.Metrics
	mockAuditRepo *mocks.MockAuditLogRepository
	mockUsers     *mocks.MockUserRepository
	mockTestcases *mocks.MockTestcaseRepository
	service       AuditLogService
}

// SetupTest sets up the test suite before each test
func (suite *AuditLogServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.metrics = metrics.New()
	suite.mockAuditRepo = mocks.NewMockAuditLogRepository(suite.T())
	suite.mockUsers = mocks.NewMockUserRepository(suite.T())
	suite.mockTestcases = mocks.NewMockTestcaseRepository(suite.T())

	locator := NewResourceLocator(suite.mockUsers, suite.mockTestcases, discardLogger(), suite.metrics)
	suite.service = NewAuditLogService(suite.mockAuditRepo, locator, suite.metrics, 1000)
}

// TestFetchPage_FirstPage tests that page one holds the newest entries
func (suite *AuditLogServiceTestSuite) TestFetchPage_FirstPage() {
	// Setup: 1500 entries in the log
	suite.mockAuditRepo.EXPECT().Count(mock.Anything).Return(int64(1500), nil)
	suite.mockAuditRepo.EXPECT().List(mock.Anything, 1000, 0).Return(entriesDescending(1500, 501), nil)

	// Act
	entries, totalPages, err := suite.service.FetchPage(suite.ctx, 1, 1000)

	// Assert
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 2, totalPages)
	require.Len(suite.T(), entries, 1000)
	assert.Equal(suite.T(), int64(1500), entries[0].ID)
	assert.Equal(suite.T(), int64(501), entries[999].ID)
}

// TestFetchPage_LastPartialPage tests the remainder on the last page
func (suite *AuditLogServiceTestSuite) TestFetchPage_LastPartialPage() {
	suite.mockAuditRepo.EXPECT().Count(mock.Anything).Return(int64(1500), nil)
	suite.mockAuditRepo.EXPECT().List(mock.Anything, 1000, 1000).Return(entriesDescending(500, 1), nil)

	entries, totalPages, err := suite.service.FetchPage(suite.ctx, 2, 1000)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 2, totalPages)
	require.Len(suite.T(), entries, 500)
	assert.Equal(suite.T(), int64(500), entries[0].ID)
	assert.Equal(suite.T(), int64(1), entries[499].ID)
}

// TestFetchPage_PastTheEnd tests that pages beyond the last one are empty
func (suite *AuditLogServiceTestSuite) TestFetchPage_PastTheEnd() {
	// Setup: List must not be called
	suite.mockAuditRepo.EXPECT().Count(mock.Anything).Return(int64(1500), nil)

	entries, totalPages, err := suite.service.FetchPage(suite.ctx, 3, 1000)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 2, totalPages)
	assert.NotNil(suite.T(), entries)
	assert.Empty(suite.T(), entries)
}

// TestFetchPage_EmptyLog tests that an empty log has zero pages
func (suite *AuditLogServiceTestSuite) TestFetchPage_EmptyLog() {
	suite.mockAuditRepo.EXPECT().Count(mock.Anything).Return(int64(0), nil)

	entries, totalPages, err := suite.service.FetchPage(suite.ctx, 1, 1000)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 0, totalPages)
	assert.Empty(suite.T(), entries)
}

// TestFetchPage_ExactMultiple tests a log that fills its pages exactly
func (suite *AuditLogServiceTestSuite) TestFetchPage_ExactMultiple() {
	suite.mockAuditRepo.EXPECT().Count(mock.Anything).Return(int64(2000), nil)
	suite.mockAuditRepo.EXPECT().List(mock.Anything, 1000, 1000).Return(entriesDescending(1000, 1), nil)

	entries, totalPages, err := suite.service.FetchPage(suite.ctx, 2, 1000)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 2, totalPages)
	assert.Len(suite.T(), entries, 1000)
}

// TestFetchPage_ClampsPageNumber tests that page numbers below one mean page one
func (suite *AuditLogServiceTestSuite) TestFetchPage_ClampsPageNumber() {
	suite.mockAuditRepo.EXPECT().Count(mock.Anything).Return(int64(5), nil).Times(2)
	suite.mockAuditRepo.EXPECT().List(mock.Anything, 10, 0).Return(entriesDescending(5, 1), nil).Times(2)

	for _, page := range []int{0, -4} {
		entries, totalPages, err := suite.service.FetchPage(suite.ctx, page, 10)
		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), 1, totalPages)
		assert.Len(suite.T(), entries, 5)
	}
}

// TestFetchPage_InvalidPageSize tests that non-positive page sizes are rejected
func (suite *AuditLogServiceTestSuite) TestFetchPage_InvalidPageSize() {
	for _, size := range []int{0, -1} {
		_, _, err := suite.service.FetchPage(suite.ctx, 1, size)
		assert.ErrorContains(suite.T(), err, "invalid page size")
	}
}

// TestFetchPage_CountFailure tests that store errors surface
func (suite *AuditLogServiceTestSuite) TestFetchPage_CountFailure() {
	suite.mockAuditRepo.EXPECT().Count(mock.Anything).Return(int64(0), errors.New("database is locked"))

	_, _, err := suite.service.FetchPage(suite.ctx, 1, 1000)

	assert.ErrorContains(suite.T(), err, "failed to count audit log")
}

// TestFetchPage_ListFailure tests that store errors surface
func (suite *AuditLogServiceTestSuite) TestFetchPage_ListFailure() {
	suite.mockAuditRepo.EXPECT().Count(mock.Anything).Return(int64(10), nil)
	suite.mockAuditRepo.EXPECT().List(mock.Anything, 1000, 0).Return(nil, errors.New("database is locked"))

	_, _, err := suite.service.FetchPage(suite.ctx, 1, 1000)

	assert.ErrorContains(suite.T(), err, "failed to list audit log")
}

// TestGetPage_FormatsRows tests that every entry becomes a linked display row
func (suite *AuditLogServiceTestSuite) TestGetPage_FormatsRows() {
	cid := int64(2)
	suite.mockAuditRepo.EXPECT().Count(mock.Anything).Return(int64(3), nil)
	suite.mockAuditRepo.EXPECT().List(mock.Anything, 1000, 0).Return([]models.AuditLogEntry{
		{ID: 3, Timestamp: time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC), User: ptr("admin"),
			Datatype: models.DatatypeUser, DataID: ptr("alice"), Action: "updated", ContestID: &cid},
		{ID: 2, Timestamp: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
			Datatype: models.DatatypeTestcase, DataID: ptr("42"), Action: "deleted"},
		{ID: 1, Timestamp: time.Date(2024, 3, 1, 11, 0, 0, 0, time.UTC),
			Datatype: "scoreboard", DataID: ptr("1"), Action: "refreshed"},
	}, nil)
	suite.mockUsers.EXPECT().GetByUsername(mock.Anything, "alice").Return(&models.User{ID: 7, Username: "alice"}, nil)
	suite.mockTestcases.EXPECT().GetByID(mock.Anything, int64(42)).Return(&models.Testcase{ID: 42, ProblemID: 3}, nil)

	page, err := suite.service.GetPage(suite.ctx, 1, "%H:%M")

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, page.CurrentPage)
	assert.Equal(suite.T(), 1, page.TotalPages)
	require.Len(suite.T(), page.Rows, 3)

	assert.Equal(suite.T(), "12:30", page.Rows[0].When.Value)
	assert.Equal(suite.T(), "c2", page.Rows[0].Where.Value)
	assert.Equal(suite.T(), "/jury/users/7", page.Rows[0].What.Link)
	assert.Equal(suite.T(), "/jury/problems/3/testcases", page.Rows[1].What.Link)
	assert.False(suite.T(), page.Rows[2].What.HasLink())

	assert.Equal(suite.T(), 1.0, testutil.ToFloat64(suite.metrics.AuditLogPages))
	assert.Equal(suite.T(), 1.0, testutil.ToFloat64(suite.metrics.LegacyUserRefs))
}

// TestGetPage_ResolveFailure tests that a store failure aborts the whole page
func (suite *AuditLogServiceTestSuite) TestGetPage_ResolveFailure() {
	suite.mockAuditRepo.EXPECT().Count(mock.Anything).Return(int64(1), nil)
	suite.mockAuditRepo.EXPECT().List(mock.Anything, 1000, 0).Return([]models.AuditLogEntry{
		{ID: 1, Datatype: models.DatatypeUser, DataID: ptr("alice"), Action: "added"},
	}, nil)
	suite.mockUsers.EXPECT().GetByUsername(mock.Anything, "alice").Return(nil, errors.New("disk I/O error"))

	page, err := suite.service.GetPage(suite.ctx, 1, "%H:%M")

	assert.Nil(suite.T(), page)
	assert.ErrorContains(suite.T(), err, "failed to resolve audit log entry 1")
	assert.Equal(suite.T(), 0.0, testutil.ToFloat64(suite.metrics.AuditLogPages))
}

// TestGetPage_PastTheEnd tests that a page beyond the log renders without rows
func (suite *AuditLogServiceTestSuite) TestGetPage_PastTheEnd() {
	suite.mockAuditRepo.EXPECT().Count(mock.Anything).Return(int64(1500), nil)

	page, err := suite.service.GetPage(suite.ctx, 3, "%H:%M")

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 3, page.CurrentPage)
	assert.Equal(suite.T(), 2, page.TotalPages)
	assert.Empty(suite.T(), page.Rows)
}

// TestRecord_Validation tests that datatype and action are required
func (suite *AuditLogServiceTestSuite) TestRecord_Validation() {
	err := suite.service.Record(suite.ctx, &models.AuditLogEntry{Datatype: "  ", Action: "added"})
	assert.ErrorContains(suite.T(), err, "datatype is required")

	err = suite.service.Record(suite.ctx, &models.AuditLogEntry{Datatype: "team", Action: ""})
	assert.ErrorContains(suite.T(), err, "action is required")
}

// TestRecord_Success tests that trimmed entries reach the repository
func (suite *AuditLogServiceTestSuite) TestRecord_Success() {
	suite.mockAuditRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(e *models.AuditLogEntry) bool {
		return e.Datatype == "team" && e.Action == "added"
	})).Return(nil)

	err := suite.service.Record(suite.ctx, &models.AuditLogEntry{Datatype: " team ", Action: "added\n"})

	assert.NoError(suite.T(), err)
}

func TestAuditLogServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuditLogServiceTestSuite))
}

// TestAuditLogService_SQLite pages through a real database end to end
func TestAuditLogService_SQLite(t *testing.T) {
	db, err := database.InitializeDatabase(filepath.Join(t.TempDir(), "jury.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	ctx := context.Background()
	repos := repositories.NewRepositories(db)
	svc := NewServices(repos, Options{
		AuditLogPageSize:  1000,
		DefaultTimeFormat: "%H:%M",
		Logger:            discardLogger(),
		Metrics:           metrics.New(),
	})

	alice := &models.User{Username: "alice", Name: "Alice"}
	require.NoError(t, repos.User.Create(ctx, alice))

	tx, err := db.Begin()
	require.NoError(t, err)
	for i := 1; i <= 1500; i++ {
		_, err := tx.Exec(`INSERT INTO auditlog (logtime, datatype, dataid, action) VALUES (?, 'user', 'alice', 'updated')`,
			1709280000.0+float64(i))
		require.NoError(t, err)
	}
	require.NoError(t, tx.Commit())

	page, err := svc.AuditLog.GetPage(ctx, 1, "%H:%M")
	require.NoError(t, err)
	assert.Equal(t, 2, page.TotalPages)
	require.Len(t, page.Rows, 1000)
	assert.Equal(t, "1500", page.Rows[0].ID.Value)
	assert.Equal(t, "501", page.Rows[999].ID.Value)

	direct, err := svc.Locator.ResolveLink(ctx, models.DatatypeUser, ptr(strconv.FormatInt(alice.ID, 10)))
	require.NoError(t, err)
	assert.Equal(t, direct, page.Rows[0].What.Link)

	page, err = svc.AuditLog.GetPage(ctx, 2, "%H:%M")
	require.NoError(t, err)
	require.Len(t, page.Rows, 500)
	assert.Equal(t, "500", page.Rows[0].ID.Value)
	assert.Equal(t, "1", page.Rows[499].ID.Value)

	page, err = svc.AuditLog.GetPage(ctx, 3, "%H:%M")
	require.NoError(t, err)
	assert.Empty(t, page.Rows)
	assert.Equal(t, 2, page.TotalPages)
}
