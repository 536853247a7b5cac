package sleeper

import (
	"context"
	"encoding/json"
	"os"

	"github.com/asecurityteam/matchups/pkg/domain"
)

// League is the complete upstream data set for one league.
type League struct {
	Rosters []domain.Roster `json:"rosters"`
	Users   []domain.User   `json:"users"`
	// Matchups is keyed by week.
	Matchups map[int][]domain.MatchupEntry `json:"matchups"`
}

// Static is a LeagueSource that serves fixed data keyed by league id. It
// never changes after construction and is safe for concurrent use.
type Static struct {
	Leagues map[string]League `json:"leagues"`
}

// LoadStatic reads a JSON fixture file shaped like Static.
func LoadStatic(path string) (*Static, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s := &Static{}
	if err := json.Unmarshal(b, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Static) league(resource string, leagueID string, week int) (League, error) {
	l, ok := s.Leagues[leagueID]
	if !ok {
		return League{}, domain.UpstreamFetchError{
			Resource: resource,
			LeagueID: leagueID,
			Week:     week,
			Err:      domain.NotFoundError{ID: leagueID},
		}
	}
	return l, nil
}

// Rosters returns the fixture rosters for the league.
func (s *Static) Rosters(_ context.Context, leagueID string) ([]domain.Roster, error) {
	l, err := s.league(resourceRosters, leagueID, 0)
	return l.Rosters, err
}

// Users returns the fixture users for the league.
func (s *Static) Users(_ context.Context, leagueID string) ([]domain.User, error) {
	l, err := s.league(resourceUsers, leagueID, 0)
	return l.Users, err
}

// Matchups returns the fixture entries for the week. Weeks without data
// produce an empty list, matching the upstream API for unplayed weeks.
func (s *Static) Matchups(_ context.Context, leagueID string, week int) ([]domain.MatchupEntry, error) {
	l, err := s.league(resourceMatchups, leagueID, week)
	if err != nil {
		return nil, err
	}
	return l.Matchups[week], nil
}
