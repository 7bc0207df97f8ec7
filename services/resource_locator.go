package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/blogem/contest-jury/metrics"
	"github.com/blogem/contest-jury/models"
	"github.com/blogem/contest-jury/repositories"
	"github.com/blogem/contest-jury/routes"
)

// ResourceLocator turns an audit log (datatype, data id) reference into a link
type ResourceLocator interface {
	// ResolveLink returns the jury URL of the referenced resource, or an empty
	// string when there is nothing to link to. Only store failures are errors.
	ResolveLink(ctx context.Context, datatype string, dataID *string) (string, error)
}

type linkResolver func(ctx context.Context, id string) (string, error)

type resourceLocator struct {
	users     repositories.UserRepository
	testcases repositories.TestcaseRepository
	logger    *slog.Logger
	metrics   *metrics.Metrics
	resolvers map[string]linkResolver
}

// NewResourceLocator creates a locator backed by the user and testcase stores
func NewResourceLocator(
	users repositories.UserRepository,
	testcases repositories.TestcaseRepository,
	logger *slog.Logger,
	m *metrics.Metrics,
) ResourceLocator {
	l := &resourceLocator{
		users:     users,
		testcases: testcases,
		logger:    logger,
		metrics:   m,
	}

	l.resolvers = map[string]linkResolver{
		models.DatatypeBalloon:              fixedLink(routes.JuryBalloons),
		models.DatatypeClarification:        idLink(routes.JuryClarification, "id"),
		models.DatatypeConfiguration:        fixedLink(routes.JuryConfig),
		models.DatatypeContest:              idLink(routes.JuryContest, "contestId"),
		models.DatatypeExecutable:           idLink(routes.JuryExecutable, "execId"),
		models.DatatypeInternalError:        idLink(routes.JuryInternalError, "errorId"),
		models.DatatypeJudgehost:            idLink(routes.JuryJudgehost, "hostname"),
		models.DatatypeJudgehosts:           fixedLink(routes.JuryJudgehosts),
		models.DatatypeJudgehostRestriction: idLink(routes.JuryJudgehostRestriction, "restrictionId"),
		models.DatatypeJudging:              idLink(routes.JurySubmissionByJudging, "jid"),
		models.DatatypeLanguage:             idLink(routes.JuryLanguage, "langId"),
		models.DatatypeProblem:              idLink(routes.JuryProblem, "probId"),
		models.DatatypeSubmission:           idLink(routes.JurySubmission, "submitId"),
		models.DatatypeTeam:                 idLink(routes.JuryTeam, "teamId"),
		models.DatatypeTeamAffiliation:      idLink(routes.JuryTeamAffiliation, "affilId"),
		models.DatatypeTeamCategory:         idLink(routes.JuryTeamCategory, "categoryId"),
		models.DatatypeUser:                 l.userLink,
		models.DatatypeTestcase:             l.testcaseLink,
	}

	return l
}

// ResolveLink dispatches on the datatype tag
func (l *resourceLocator) ResolveLink(ctx context.Context, datatype string, dataID *string) (string, error) {
	if dataID == nil || *dataID == "" {
		return "", nil
	}

	resolve, ok := l.resolvers[datatype]
	if !ok {
		l.metrics.UnresolvedLinks.WithLabelValues("unknown").Inc()
		return "", nil
	}

	link, err := resolve(ctx, *dataID)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s %s: %w", datatype, *dataID, err)
	}
	if link == "" {
		l.metrics.UnresolvedLinks.WithLabelValues(datatype).Inc()
	}

	return link, nil
}

func fixedLink(route string) linkResolver {
	return func(_ context.Context, _ string) (string, error) {
		return routes.URL(route, nil)
	}
}

func idLink(route, param string) linkResolver {
	return func(_ context.Context, id string) (string, error) {
		return routes.URL(route, map[string]string{param: id})
	}
}

// userLink accepts numeric ids and, for rows written before user ids were
// logged, usernames.
func (l *resourceLocator) userLink(ctx context.Context, id string) (string, error) {
	if _, err := strconv.ParseInt(id, 10, 64); err == nil {
		return routes.URL(routes.JuryUser, map[string]string{"userId": id})
	}

	l.metrics.LegacyUserRefs.Inc()
	l.logger.WarnContext(ctx, "audit log references a user by username", "username", id)

	user, err := l.users.GetByUsername(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		l.logger.WarnContext(ctx, "audit log references an unknown username", "username", id)
		return "", nil
	}
	if err != nil {
		return "", err
	}

	return routes.URL(routes.JuryUser, map[string]string{"userId": strconv.FormatInt(user.ID, 10)})
}

// testcaseLink points at the testcase overview of the owning problem
func (l *resourceLocator) testcaseLink(ctx context.Context, id string) (string, error) {
	testcaseID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		l.logger.DebugContext(ctx, "audit log references a malformed testcase id", "data_id", id)
		return "", nil
	}

	testcase, err := l.testcases.GetByID(ctx, testcaseID)
	if errors.Is(err, repositories.ErrNotFound) {
		l.logger.DebugContext(ctx, "audit log references a deleted testcase", "data_id", id)
		return "", nil
	}
	if err != nil {
		return "", err
	}

	return routes.URL(routes.JuryProblemTestcases, map[string]string{
		"probId": strconv.FormatInt(testcase.ProblemID, 10),
	})
}
