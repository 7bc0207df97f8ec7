package services

import (
	"strconv"
	"strings"

	"github.com/ncruces/go-strftime"

	"github.com/blogem/contest-jury/models"
	"github.com/blogem/contest-jury/routes"
)

// FullTimeFormat is the strftime layout of the hover text on audit log times
const FullTimeFormat = "%Y-%m-%d %H:%M:%S (%Z)"

// FormatRow builds the display row of one audit log entry. timeFormat is a
// strftime layout; link is attached to the "what" column when non-empty.
func FormatRow(entry models.AuditLogEntry, timeFormat string, link string) models.DisplayRow {
	row := models.DisplayRow{
		ID: models.TableCell{Value: strconv.FormatInt(entry.ID, 10)},
		When: models.TableCell{
			Value:     strftime.Format(timeFormat, entry.Timestamp),
			Title:     strftime.Format(FullTimeFormat, entry.Timestamp),
			SortValue: models.FormatUnixSeconds(entry.Timestamp),
		},
		Who: models.TableCell{Value: entry.UserName()},
		What: models.TableCell{
			Value: strings.Join([]string{
				entry.Datatype,
				entry.DataIDString(),
				entry.Action,
				entry.ExtraInfoString(),
			}, " "),
			Link: link,
		},
	}

	if entry.ContestID != nil {
		cid := entry.ContestIDString()
		row.Where = models.TableCell{
			Value:     "c" + cid,
			SortValue: cid,
			Link:      routes.MustURL(routes.JuryContest, map[string]string{"contestId": cid}),
		}
	}

	return row
}
