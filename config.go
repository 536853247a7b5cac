package matchups

import (
	"context"
	"time"

	"github.com/asecurityteam/matchups/pkg/domain"
	v1 "github.com/asecurityteam/matchups/pkg/handlers/v1"
	"github.com/asecurityteam/matchups/pkg/leagues"
	"github.com/asecurityteam/matchups/pkg/nflweek"
	"github.com/asecurityteam/matchups/pkg/report"
	"github.com/asecurityteam/matchups/pkg/sleeper"
	"github.com/asecurityteam/runhttp"
)

// DefaultLeague is the league served when no registry is configured.
const DefaultLeague = "main:1104276981148995584"

// ReportConfig contains all settings for building matchup reports.
type ReportConfig struct {
	Leagues     []string      `description:"League registry entries formatted as name:leagueID."`
	Records     bool          `description:"Include each roster's win-loss record through the prior week."`
	SeasonStart string        `description:"RFC3339 kickoff of week one. Used when a request names no week."`
	Fixture     string        `description:"JSON league fixture served instead of the Sleeper API when set."`
	CacheSize   int           `description:"Number of completed league weeks kept in memory. Zero disables the cache."`
	CacheTTL    time.Duration `description:"Maximum age of a cached league week."`
	Sleeper     *sleeper.Config
}

// Name of the configuration root.
func (*ReportConfig) Name() string {
	return "report"
}

// ReportComponent is a settings component that produces the matchups
// handler and everything behind it.
type ReportComponent struct {
	// Source replaces the configured league source when set.
	Source domain.LeagueSource
}

// NewReportComponent populates the default values.
func NewReportComponent() *ReportComponent {
	return &ReportComponent{}
}

// Settings generates a config with all defaults set.
func (*ReportComponent) Settings() *ReportConfig {
	return &ReportConfig{
		Leagues:     []string{DefaultLeague},
		Records:     true,
		SeasonStart: nflweek.DefaultSeasonStart,
		CacheTTL:    10 * time.Minute,
		Sleeper:     sleeper.NewComponent().Settings(),
	}
}

// New constructs the matchups handler from the given config.
func (c *ReportComponent) New(ctx context.Context, conf *ReportConfig) (*v1.Matchups, error) {
	registry, err := leagues.Parse(conf.Leagues)
	if err != nil {
		return nil, err
	}
	calendar, err := nflweek.NewCalendar(conf.SeasonStart)
	if err != nil {
		return nil, err
	}
	source, err := c.source(ctx, conf)
	if err != nil {
		return nil, err
	}
	builder := &report.Builder{
		Leagues:     registry,
		Source:      source,
		SkipRecords: !conf.Records,
	}
	if conf.CacheSize > 0 {
		builder.Cache = report.NewCache(conf.CacheSize, conf.CacheTTL)
	}
	return &v1.Matchups{
		Reporter: builder,
		Weeks:    calendar,
		LogFn:    runhttp.LoggerFromContext,
		StatFn:   runhttp.StatFromContext,
	}, nil
}

func (c *ReportComponent) source(ctx context.Context, conf *ReportConfig) (domain.LeagueSource, error) {
	switch {
	case c.Source != nil:
		return c.Source, nil
	case conf.Fixture != "":
		return sleeper.LoadStatic(conf.Fixture)
	default:
		return sleeper.NewComponent().New(ctx, conf.Sleeper)
	}
}
