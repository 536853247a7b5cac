package sleeper

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/asecurityteam/matchups/pkg/domain"
	"github.com/asecurityteam/runhttp"
	"github.com/go-resty/resty/v2"
)

const (
	// DefaultBaseURL is the public Sleeper API.
	DefaultBaseURL = "https://api.sleeper.app/v1"

	resourceRosters  = "rosters"
	resourceUsers    = "users"
	resourceMatchups = "matchups"

	statRequest         = "sleeper.request"
	statRequestDuration = "sleeper.request.duration"
)

// Client fetches league data from the Sleeper API. Each call makes exactly
// one request and is never retried.
type Client struct {
	HTTP   *resty.Client
	StatFn domain.StatFn
}

// NewClient configures a resty client for the given base URL.
func NewClient(baseURL string, timeout time.Duration, userAgent string) *Client {
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetTimeout(timeout)
	client.SetHeader("Accept", "application/json")
	if userAgent != "" {
		client.SetHeader("User-Agent", userAgent)
	}
	return &Client{HTTP: client, StatFn: runhttp.StatFromContext}
}

// Rosters lists every roster in the league.
func (c *Client) Rosters(ctx context.Context, leagueID string) ([]domain.Roster, error) {
	var rosters []domain.Roster
	err := c.get(ctx, resourceRosters, leagueID, 0, "/league/{leagueID}/rosters", &rosters)
	return rosters, err
}

// Users lists every member of the league.
func (c *Client) Users(ctx context.Context, leagueID string) ([]domain.User, error) {
	var users []domain.User
	err := c.get(ctx, resourceUsers, leagueID, 0, "/league/{leagueID}/users", &users)
	return users, err
}

// Matchups lists one entry per roster for the given week.
func (c *Client) Matchups(ctx context.Context, leagueID string, week int) ([]domain.MatchupEntry, error) {
	var entries []domain.MatchupEntry
	err := c.get(ctx, resourceMatchups, leagueID, week, "/league/{leagueID}/matchups/{week}", &entries)
	return entries, err
}

func (c *Client) get(ctx context.Context, resource string, leagueID string, week int, path string, out interface{}) error {
	stat := c.StatFn(ctx)
	start := time.Now()
	fail := func(status string, err error) error {
		stat.Count(statRequest, 1, "resource:"+resource, "status:"+status)
		return domain.UpstreamFetchError{Resource: resource, LeagueID: leagueID, Week: week, Err: err}
	}

	req := c.HTTP.R().
		SetContext(ctx).
		SetPathParam("leagueID", leagueID)
	if week > 0 {
		req.SetPathParam("week", strconv.Itoa(week))
	}
	resp, err := req.Get(path)
	stat.Timing(statRequestDuration, time.Since(start), "resource:"+resource)
	if err != nil {
		return fail("error", err)
	}
	if !resp.IsSuccess() {
		return fail(strconv.Itoa(resp.StatusCode()), fmt.Errorf("unexpected status %d: %s", resp.StatusCode(), resp.String()))
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fail("decode", err)
	}
	stat.Count(statRequest, 1, "resource:"+resource, "status:"+strconv.Itoa(resp.StatusCode()))
	return nil
}
