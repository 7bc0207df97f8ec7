package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/blogem/contest-jury/models"
)

func TestFormatRow_WithContest(t *testing.T) {
	cid := int64(5)
	entry := models.AuditLogEntry{
		ID:        1234,
		Timestamp: time.Date(2024, 3, 1, 14, 5, 9, 0, time.UTC),
		User:      ptr("admin"),
		Datatype:  "problem",
		DataID:    ptr("3"),
		Action:    "updated",
		ExtraInfo: ptr("timelimit"),
		ContestID: &cid,
	}

	row := FormatRow(entry, "%H:%M", "/jury/problems/3")

	assert.Equal(t, "1234", row.ID.Value)

	assert.Equal(t, "14:05", row.When.Value)
	assert.Equal(t, "2024-03-01 14:05:09 (UTC)", row.When.Title)
	assert.Equal(t, "1709301909", row.When.SortValue)

	assert.Equal(t, "admin", row.Who.Value)
	assert.False(t, row.Who.HasLink())

	assert.Equal(t, "c5", row.Where.Value)
	assert.Equal(t, "5", row.Where.SortValue)
	assert.Equal(t, "/jury/contests/5", row.Where.Link)

	assert.Equal(t, "problem 3 updated timelimit", row.What.Value)
	assert.Equal(t, "/jury/problems/3", row.What.Link)
}

func TestFormatRow_WithoutContestOrLink(t *testing.T) {
	entry := models.AuditLogEntry{
		ID:        7,
		Timestamp: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
		Datatype:  "judgehosts",
		Action:    "enabled all",
	}

	row := FormatRow(entry, "%Y-%m-%d %H:%M", "")

	assert.Equal(t, "2024-03-01 09:00", row.When.Value)
	assert.Equal(t, "", row.Who.Value)

	assert.Equal(t, "", row.Where.Value)
	assert.False(t, row.Where.HasLink())
	assert.False(t, row.Where.HasSortValue())

	assert.Equal(t, "judgehosts  enabled all ", row.What.Value)
	assert.False(t, row.What.HasLink())
}

func TestFormatRow_CellsInColumnOrder(t *testing.T) {
	row := FormatRow(models.AuditLogEntry{ID: 1, Datatype: "team", Action: "added"}, "%H:%M", "")

	cells := row.Cells()
	assert.Len(t, cells, len(models.AuditLogFields))
	assert.Equal(t, "1", cells[0].Value)
	assert.Equal(t, row.What, cells[4])
}
