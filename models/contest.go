package models

import "time"

// Contest holds the contest fields needed to pick and label a scoreboard
type Contest struct {
	ID             int64
	ExternalID     string
	Name           string
	ShortName      string
	ActivateTime   time.Time
	StartTime      time.Time
	EndTime        time.Time
	DeactivateTime *time.Time
	Public         bool
	Enabled        bool
}

// IsActive reports whether the contest is visible at the given time
func (c *Contest) IsActive(now time.Time) bool {
	if !c.Enabled || now.Before(c.ActivateTime) {
		return false
	}
	return c.DeactivateTime == nil || now.Before(*c.DeactivateTime)
}

// HasStarted reports whether the contest start time has passed
func (c *Contest) HasStarted(now time.Time) bool {
	return !now.Before(c.StartTime)
}
