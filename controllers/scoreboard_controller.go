package controllers

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/blogem/contest-jury/config"
	"github.com/blogem/contest-jury/models"
	"github.com/blogem/contest-jury/services"
)

// ScoreFilterCookie persists the score filter between visits
const ScoreFilterCookie = "jury_scorefilter"

// ScoreboardController handles the public scoreboard
type ScoreboardController struct {
	base
	refresh time.Duration
}

// NewScoreboardController creates a new scoreboard controller
func NewScoreboardController(b base, refresh time.Duration) *ScoreboardController {
	if refresh <= 0 {
		refresh = config.DefaultScoreboardRefresh
	}
	return &ScoreboardController{base: b, refresh: refresh}
}

type filterOption struct {
	Value   string
	Label   string
	Checked bool
}

// Index handles GET /public/
func (c *ScoreboardController) Index(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()
	static := query.Has("static")

	contest, err := c.pickContest(ctx, static, query.Get("contest"))
	if err != nil {
		c.logger.Error("failed to load contests", "error", err)
		http.Error(w, "Failed to load contests: "+err.Error(), http.StatusInternalServerError)
		return
	}

	filter := c.scoreFilter(w, r)

	var board *services.Scoreboard
	if contest != nil {
		board, err = c.services.Scoreboard.GetScoreboard(ctx, contest, filter)
		if err != nil {
			c.logger.Error("failed to load scoreboard", "contest", contest.ID, "error", err)
			http.Error(w, "Failed to load scoreboard: "+err.Error(), http.StatusInternalServerError)
			return
		}
	}

	refreshURL := "./"
	clearURL := "./?clear=1"
	if static {
		refreshURL = "./?static=1"
		clearURL = "./?static=1&clear=1"
	}

	page := c.page(r, "Scoreboard", "scoreboard")
	page.Static = static
	page.Refresh = &Refresh{Seconds: int(c.refresh / time.Second), URL: refreshURL}

	templateData := struct {
		Page
		Board          *services.Scoreboard
		FilterActive   bool
		ClearFilterURL string
		Categories     []filterOption
		Affiliations   []filterOption
		Countries      []filterOption
	}{
		Page:           page,
		Board:          board,
		FilterActive:   !filter.IsEmpty(),
		ClearFilterURL: clearURL,
	}
	if board != nil {
		templateData.Categories = categoryOptions(board)
		templateData.Affiliations = affiliationOptions(board)
		templateData.Countries = countryOptions(board)
	}

	renderTemplate(w, "scoreboard", "scoreboard.html", templateData)
}

// pickContest returns the current contest, or in static mode the active
// contest with the requested external id when there is one
func (c *ScoreboardController) pickContest(ctx context.Context, static bool, externalID string) (*models.Contest, error) {
	if static && externalID != "" {
		active, err := c.services.Scoreboard.ActiveContests(ctx)
		if err != nil {
			return nil, err
		}
		for i := range active {
			if active[i].ExternalID == externalID {
				return &active[i], nil
			}
		}
	}
	return c.services.Scoreboard.CurrentContest(ctx)
}

// scoreFilter applies ?filter=1 and ?clear=1 to the filter cookie and returns
// the filter in effect for this request
func (c *ScoreboardController) scoreFilter(w http.ResponseWriter, r *http.Request) models.ScoreFilter {
	query := r.URL.Query()

	switch {
	case query.Has("clear"):
		http.SetCookie(w, &http.Cookie{Name: ScoreFilterCookie, Value: "", Path: "/", MaxAge: -1, HttpOnly: true})
		return models.ScoreFilter{}

	case query.Has("filter"):
		filter := filterFromQuery(query)
		if value, err := encodeScoreFilter(filter); err == nil {
			http.SetCookie(w, &http.Cookie{Name: ScoreFilterCookie, Value: value, Path: "/", HttpOnly: true})
		}
		return filter
	}

	cookie, err := r.Cookie(ScoreFilterCookie)
	if err != nil {
		return models.ScoreFilter{}
	}
	filter, err := decodeScoreFilter(cookie.Value)
	if err != nil {
		c.logger.Debug("ignoring malformed score filter cookie", "error", err)
		return models.ScoreFilter{}
	}
	return filter
}

func filterFromQuery(query url.Values) models.ScoreFilter {
	var filter models.ScoreFilter
	for _, v := range query["categories"] {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			filter.Categories = append(filter.Categories, id)
		}
	}
	for _, v := range query["affiliations"] {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			filter.Affiliations = append(filter.Affiliations, id)
		}
	}
	for _, v := range query["countries"] {
		if v != "" {
			filter.Countries = append(filter.Countries, v)
		}
	}
	return filter
}

// Cookie values cannot carry JSON quotes, so the JSON is base64 encoded
func encodeScoreFilter(filter models.ScoreFilter) (string, error) {
	raw, err := json.Marshal(filter)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}

func decodeScoreFilter(value string) (models.ScoreFilter, error) {
	var filter models.ScoreFilter
	raw, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return filter, err
	}
	err = json.Unmarshal(raw, &filter)
	return filter, err
}

func categoryOptions(board *services.Scoreboard) []filterOption {
	options := make([]filterOption, 0, len(board.Categories))
	for _, cat := range board.Categories {
		options = append(options, filterOption{
			Value:   strconv.FormatInt(cat.ID, 10),
			Label:   cat.Name,
			Checked: containsID(board.Filter.Categories, cat.ID),
		})
	}
	return options
}

func affiliationOptions(board *services.Scoreboard) []filterOption {
	options := make([]filterOption, 0, len(board.Affiliations))
	for _, a := range board.Affiliations {
		options = append(options, filterOption{
			Value:   strconv.FormatInt(a.ID, 10),
			Label:   a.ShortName,
			Checked: containsID(board.Filter.Affiliations, a.ID),
		})
	}
	return options
}

func countryOptions(board *services.Scoreboard) []filterOption {
	options := make([]filterOption, 0, len(board.Countries))
	for _, country := range board.Countries {
		checked := false
		for _, f := range board.Filter.Countries {
			if f == country {
				checked = true
				break
			}
		}
		options = append(options, filterOption{Value: country, Label: country, Checked: checked})
	}
	return options
}

func containsID(ids []int64, id int64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
