package domain

import (
	"context"
)

// Roster is a team within a league. Each roster is owned by one user.
type Roster struct {
	RosterID int    `json:"roster_id"`
	OwnerID  string `json:"owner_id"`
}

// User is a member of a league.
type User struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
}

// MatchupEntry is one roster's participation in a single week. Entries
// that share a MatchupID played each other. A zero MatchupID marks a bye.
type MatchupEntry struct {
	MatchupID int     `json:"matchup_id"`
	RosterID  int     `json:"roster_id"`
	Points    float64 `json:"points"`
}

// MatchupPair is one game of a week.
type MatchupPair struct {
	A MatchupEntry
	B MatchupEntry
}

// Record is a cumulative win/loss count. Ties count toward neither.
type Record struct {
	Wins   int
	Losses int
}

// LeagueSource is the upstream provider of league data. Implementations
// must return an UpstreamFetchError for any transport or decoding failure.
type LeagueSource interface {
	Rosters(ctx context.Context, leagueID string) ([]Roster, error)
	Users(ctx context.Context, leagueID string) ([]User, error)
	Matchups(ctx context.Context, leagueID string, week int) ([]MatchupEntry, error)
}

// LeagueResolver maps a user supplied league key to a league identifier.
// Unknown keys must produce an InvalidLeagueError.
type LeagueResolver interface {
	Resolve(key string) (string, error)
}
