package models

// TeamCategory groups teams on the scoreboard
type TeamCategory struct {
	ID        int64
	Name      string
	SortOrder int
	Visible   bool
}

// TeamAffiliation is the organisation a team belongs to
type TeamAffiliation struct {
	ID        int64
	ShortName string
	Name      string
	Country   string
}

// RankCacheRow is a precomputed score line for one team in one contest
type RankCacheRow struct {
	TeamID            int64
	TeamName          string
	CategoryID        int64
	CategoryName      string
	CategorySortOrder int
	AffiliationID     *int64
	AffiliationName   string
	Country           string
	Points            int
	TotalTime         int
}

// ScoreboardRow is a ranked scoreboard line
type ScoreboardRow struct {
	Rank     int
	Tied     bool
	RankLine RankCacheRow
}

// ScoreFilter restricts the scoreboard to a subset of teams
type ScoreFilter struct {
	Affiliations []int64  `json:"affiliations,omitempty"`
	Categories   []int64  `json:"categories,omitempty"`
	Countries    []string `json:"countries,omitempty"`
}

// IsEmpty reports whether the filter lets every team through
func (f ScoreFilter) IsEmpty() bool {
	return len(f.Affiliations) == 0 && len(f.Categories) == 0 && len(f.Countries) == 0
}

// Matches checks a rank line against the filter
func (f ScoreFilter) Matches(row RankCacheRow) bool {
	if len(f.Categories) > 0 && !containsInt64(f.Categories, row.CategoryID) {
		return false
	}
	if len(f.Affiliations) > 0 && (row.AffiliationID == nil || !containsInt64(f.Affiliations, *row.AffiliationID)) {
		return false
	}
	if len(f.Countries) > 0 && !containsString(f.Countries, row.Country) {
		return false
	}
	return true
}

func containsInt64(slice []int64, item int64) bool {
	for _, v := range slice {
		if v == item {
			return true
		}
	}
	return false
}

func containsString(slice []string, item string) bool {
	for _, v := range slice {
		if v == item {
			return true
		}
	}
	return false
}
