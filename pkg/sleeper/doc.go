// Package sleeper contains implementations of domain.LeagueSource. Client
// talks to the public Sleeper REST API while Static serves league data from
// memory or a JSON fixture file.
package sleeper
