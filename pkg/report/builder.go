package report

import (
	"context"
	"errors"

	"github.com/asecurityteam/matchups/pkg/domain"
	"golang.org/x/sync/errgroup"
)

// Builder assembles matchup reports.
type Builder struct {
	Leagues domain.LeagueResolver
	Source  domain.LeagueSource
	// SkipRecords disables the replay of prior weeks. Reports then show
	// names and scores only.
	SkipRecords bool
	// Cache is optional. When set, matchups of weeks before the target
	// week are read through it.
	Cache *Cache
}

// Build renders the report for a league week. An unknown league fails with
// domain.InvalidLeagueError before any upstream call. Every other failure
// is a domain.UpstreamFetchError and no partial report is returned.
func (b *Builder) Build(ctx context.Context, leagueKey string, week int) (string, error) {
	leagueID, err := b.Leagues.Resolve(leagueKey)
	if err != nil {
		return "", err
	}

	var rosters []domain.Roster
	var users []domain.User
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rosters, err = b.Source.Rosters(gctx, leagueID)
		return upstream(err, "rosters", leagueID, 0)
	})
	g.Go(func() error {
		var err error
		users, err = b.Source.Users(gctx, leagueID)
		return upstream(err, "users", leagueID, 0)
	})
	if err := g.Wait(); err != nil {
		return "", err
	}
	names := RosterNames(rosters, users)

	var records Tally
	if !b.SkipRecords {
		records = NewTally(rosters)
		for w := 1; w < week; w++ {
			entries, err := b.priorWeek(ctx, leagueID, w)
			if err != nil {
				return "", err
			}
			records.Apply(Pairs(entries))
		}
	}

	entries, err := b.Source.Matchups(ctx, leagueID, week)
	if err != nil {
		return "", upstream(err, "matchups", leagueID, week)
	}
	return Render(week, Pairs(entries), names, records), nil
}

func (b *Builder) priorWeek(ctx context.Context, leagueID string, week int) ([]domain.MatchupEntry, error) {
	if b.Cache != nil {
		if entries, ok := b.Cache.Get(leagueID, week); ok {
			return entries, nil
		}
	}
	entries, err := b.Source.Matchups(ctx, leagueID, week)
	if err != nil {
		return nil, upstream(err, "matchups", leagueID, week)
	}
	if b.Cache != nil {
		b.Cache.Add(leagueID, week, entries)
	}
	return entries, nil
}

// upstream ensures source failures surface as domain.UpstreamFetchError.
func upstream(err error, resource string, leagueID string, week int) error {
	if err == nil {
		return nil
	}
	var fetchErr domain.UpstreamFetchError
	if errors.As(err, &fetchErr) {
		return err
	}
	return domain.UpstreamFetchError{Resource: resource, LeagueID: leagueID, Week: week, Err: err}
}
