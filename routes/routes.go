// Package routes is the named-route table of the jury interface. Handlers are
// mounted on these patterns and links are generated from them, so a route name
// plus its parameters is a stable address for any jury page.
package routes

import (
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// Route names
const (
	JuryHome                 = "jury_index"
	JuryAuditLog             = "jury_auditlog"
	JuryBalloons             = "jury_balloons"
	JuryClarification        = "jury_clarification"
	JuryConfig               = "jury_config"
	JuryContest              = "jury_contest"
	JuryExecutable           = "jury_executable"
	JuryInternalError        = "jury_internal_error"
	JuryJudgehost            = "jury_judgehost"
	JuryJudgehosts           = "jury_judgehosts"
	JuryJudgehostRestriction = "jury_judgehost_restriction"
	JurySubmissionByJudging  = "jury_submission_by_judging"
	JuryLanguage             = "jury_language"
	JuryProblem              = "jury_problem"
	JuryProblemTestcases     = "jury_problem_testcases"
	JurySubmission           = "jury_submission"
	JuryTeam                 = "jury_team"
	JuryTeamAffiliation      = "jury_team_affiliation"
	JuryTeamCategory         = "jury_team_category"
	JuryUser                 = "jury_user"
	PublicScoreboard         = "public_index"
)

var (
	// ErrUnknownRoute is returned for a route name missing from the table
	ErrUnknownRoute = errors.New("unknown route")
	// ErrMissingParameter is returned when a path placeholder has no value
	ErrMissingParameter = errors.New("missing route parameter")
)

var patterns = map[string]string{
	JuryHome:                 "/jury",
	JuryAuditLog:             "/jury/auditlog/",
	JuryBalloons:             "/jury/balloons",
	JuryClarification:        "/jury/clarifications/{id}",
	JuryConfig:               "/jury/config",
	JuryContest:              "/jury/contests/{contestId}",
	JuryExecutable:           "/jury/executables/{execId}",
	JuryInternalError:        "/jury/internal-errors/{errorId}",
	JuryJudgehost:            "/jury/judgehosts/{hostname}",
	JuryJudgehosts:           "/jury/judgehosts",
	JuryJudgehostRestriction: "/jury/judgehost-restrictions/{restrictionId}",
	JurySubmissionByJudging:  "/jury/submissions/by-judging-id/{jid}",
	JuryLanguage:             "/jury/languages/{langId}",
	JuryProblem:              "/jury/problems/{probId}",
	JuryProblemTestcases:     "/jury/problems/{probId}/testcases",
	JurySubmission:           "/jury/submissions/{submitId}",
	JuryTeam:                 "/jury/teams/{teamId}",
	JuryTeamAffiliation:      "/jury/affiliations/{affilId}",
	JuryTeamCategory:         "/jury/categories/{categoryId}",
	JuryUser:                 "/jury/users/{userId}",
	PublicScoreboard:         "/public/",
}

// Pattern returns the chi pattern of a route. It panics on an unknown name,
// which can only happen through a programming error at router setup.
func Pattern(name string) string {
	pattern, ok := patterns[name]
	if !ok {
		panic(fmt.Sprintf("routes: %s: %q", ErrUnknownRoute, name))
	}
	return pattern
}

// Names returns all route names in sorted order
func Names() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// URL builds the path of a named route. Parameters matching a placeholder are
// path-escaped into it; the remaining ones become the query string.
func URL(name string, params map[string]string) (string, error) {
	pattern, ok := patterns[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownRoute, name)
	}

	used := make(map[string]bool, len(params))
	var b strings.Builder
	rest := pattern
	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			b.WriteString(rest)
			break
		}
		end := strings.IndexByte(rest[open:], '}')
		if end < 0 {
			return "", fmt.Errorf("malformed pattern for route %q", name)
		}
		end += open

		key := rest[open+1 : end]
		value, ok := params[key]
		if !ok || value == "" {
			return "", fmt.Errorf("%w %q for route %q", ErrMissingParameter, key, name)
		}
		used[key] = true

		b.WriteString(rest[:open])
		b.WriteString(url.PathEscape(value))
		rest = rest[end+1:]
	}

	query := url.Values{}
	for key, value := range params {
		if !used[key] {
			query.Set(key, value)
		}
	}
	if len(query) > 0 {
		b.WriteByte('?')
		b.WriteString(query.Encode())
	}

	return b.String(), nil
}

// MustURL is URL for route names and parameters fixed at compile time
func MustURL(name string, params map[string]string) string {
	u, err := URL(name, params)
	if err != nil {
		panic(err)
	}
	return u
}
