package v1

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/asecurityteam/matchups/pkg/domain"
	"github.com/aws/aws-lambda-go/events"
)

const (
	// LeagueParam and WeekParam are the accepted query parameters.
	LeagueParam = "league"
	WeekParam   = "week"

	invalidLeagueMessage = "Invalid or missing league"
	fetchFailureMessage  = "Failed to fetch league data"

	statReport         = "matchups.report"
	statReportDuration = "matchups.report.duration"
)

// Reporter renders the markdown report for a league week.
type Reporter interface {
	Build(ctx context.Context, leagueKey string, week int) (string, error)
}

// WeekResolver turns the raw week parameter into a week number.
type WeekResolver interface {
	Resolve(raw string) int
}

type matchupsResponse struct {
	Markdown string `json:"markdown"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type invalidLeague struct {
	League  string `logevent:"league"`
	Message string `logevent:"message,default=invalid-league"`
}

type reportFailure struct {
	League  string `logevent:"league"`
	Week    int    `logevent:"week"`
	Reason  string `logevent:"reason"`
	Message string `logevent:"message,default=report-failure"`
}

// Matchups serves the weekly matchup report. A missing or unknown league
// results in a 400 and any upstream failure in a 500. Both the HTTP and the
// API Gateway entry points share the same payloads.
type Matchups struct {
	Reporter Reporter
	Weeks    WeekResolver
	LogFn    domain.LogFn
	StatFn   domain.StatFn
}

func (h *Matchups) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	status, body := h.respond(r.Context(), q.Get(LeagueParam), q.Get(WeekParam))
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// HandleEvent serves an API Gateway proxy request. Domain failures are
// reported through the response status rather than the returned error.
func (h *Matchups) HandleEvent(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	status, body := h.respond(ctx, req.QueryStringParameters[LeagueParam], req.QueryStringParameters[WeekParam])
	b, err := json.Marshal(body)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(b),
	}, nil
}

func (h *Matchups) respond(ctx context.Context, league string, rawWeek string) (int, interface{}) {
	start := time.Now()
	week := h.Weeks.Resolve(rawWeek)
	markdown, err := h.Reporter.Build(ctx, league, week)

	status, body := http.StatusOK, interface{}(matchupsResponse{Markdown: markdown})
	var invalid domain.InvalidLeagueError
	switch {
	case err == nil:
	case errors.As(err, &invalid):
		h.LogFn(ctx).Info(invalidLeague{League: league})
		status, body = http.StatusBadRequest, errorResponse{Error: invalidLeagueMessage}
	default:
		h.LogFn(ctx).Error(reportFailure{League: league, Week: week, Reason: err.Error()})
		status, body = http.StatusInternalServerError, errorResponse{Error: fetchFailureMessage, Details: err.Error()}
	}

	stat := h.StatFn(ctx)
	stat.Count(statReport, 1, "status:"+strconv.Itoa(status))
	stat.Timing(statReportDuration, time.Since(start), "status:"+strconv.Itoa(status))
	return status, body
}
