package models

import (
	"strconv"
	"time"
)

// AuditLogEntry is a single write-once record of an administrative event
type AuditLogEntry struct {
	ID        int64
	Timestamp time.Time
	User      *string // nil for system-initiated actions
	Datatype  string
	DataID    *string // numeric for most datatypes, a username for legacy user rows
	Action    string
	ExtraInfo *string
	ContestID *int64 // nil means the entry is not scoped to a contest
}

// UserName returns the acting user or an empty string
func (e *AuditLogEntry) UserName() string {
	return derefString(e.User)
}

// DataIDString returns the data id or an empty string
func (e *AuditLogEntry) DataIDString() string {
	return derefString(e.DataID)
}

// ExtraInfoString returns the extra info or an empty string
func (e *AuditLogEntry) ExtraInfoString() string {
	return derefString(e.ExtraInfo)
}

// ContestIDString returns the contest id in decimal or an empty string
func (e *AuditLogEntry) ContestIDString() string {
	if e.ContestID == nil {
		return ""
	}
	return strconv.FormatInt(*e.ContestID, 10)
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Datatype tags of audit log entries that the jury interface can link to
const (
	DatatypeBalloon              = "balloon"
	DatatypeClarification        = "clarification"
	DatatypeConfiguration        = "configuration"
	DatatypeContest              = "contest"
	DatatypeExecutable           = "executable"
	DatatypeInternalError        = "internal_error"
	DatatypeJudgehost            = "judgehost"
	DatatypeJudgehosts           = "judgehosts"
	DatatypeJudgehostRestriction = "judgehost_restriction"
	DatatypeJudging              = "judging"
	DatatypeLanguage             = "language"
	DatatypeProblem              = "problem"
	DatatypeSubmission           = "submission"
	DatatypeTeam                 = "team"
	DatatypeTeamAffiliation      = "team_affiliation"
	DatatypeTeamCategory         = "team_category"
	DatatypeUser                 = "user"
	DatatypeTestcase             = "testcase"
)
