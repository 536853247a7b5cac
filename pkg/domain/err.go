package domain

import "fmt"

// NotFoundError represents a failed lookup for a resource.
type NotFoundError struct {
	// ID is the key used when looking for the resource.
	ID string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("resource (%s) not found", e.ID)
}

// InvalidLeagueError is returned when a league key does not match any
// configured league.
type InvalidLeagueError struct {
	Key string
}

func (e InvalidLeagueError) Error() string {
	return fmt.Sprintf("league (%s) is not configured", e.Key)
}

// UpstreamFetchError wraps any failure to retrieve or decode data from
// the league API.
type UpstreamFetchError struct {
	// Resource is the kind of data being fetched, such as "rosters".
	Resource string
	LeagueID string
	// Week is only set for matchup fetches.
	Week int
	Err  error
}

func (e UpstreamFetchError) Error() string {
	if e.Week > 0 {
		return fmt.Sprintf("fetch %s for league %s week %d: %v", e.Resource, e.LeagueID, e.Week, e.Err)
	}
	return fmt.Sprintf("fetch %s for league %s: %v", e.Resource, e.LeagueID, e.Err)
}

func (e UpstreamFetchError) Unwrap() error {
	return e.Err
}
