package commands

import (
	"fmt"
	"time"

	"github.com/asecurityteam/matchups/pkg/domain"
	"github.com/asecurityteam/matchups/pkg/nflweek"
	"github.com/asecurityteam/matchups/pkg/report"
	"github.com/asecurityteam/matchups/pkg/sleeper"
	"github.com/spf13/cobra"
)

type renderOptions struct {
	league      string
	week        string
	noRecords   bool
	fixture     string
	baseURL     string
	timeout     time.Duration
	seasonStart string
}

func newRenderCommand() *cobra.Command {
	opts := &renderOptions{}
	cmd := &cobra.Command{
		Use:   "render --league <name> [--week <n>] [--no-records] [--fixture <path/to/league.json>]",
		Short: "Prints the markdown matchups report for a league week.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := registry(cmd)
			if err != nil {
				return err
			}
			calendar, err := nflweek.NewCalendar(opts.seasonStart)
			if err != nil {
				return err
			}
			source, err := opts.source()
			if err != nil {
				return err
			}
			builder := &report.Builder{
				Leagues:     r,
				Source:      source,
				SkipRecords: opts.noRecords,
			}
			markdown, err := builder.Build(cmd.Context(), opts.league, calendar.Resolve(opts.week))
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), markdown)
			return err
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&opts.league, "league", "", "League name from the registry.")
	flags.StringVar(&opts.week, "week", "", "Week to report. Defaults to the current week of the season.")
	flags.BoolVar(&opts.noRecords, "no-records", false, "Omit win-loss records and skip fetching prior weeks.")
	flags.StringVar(&opts.fixture, "fixture", "", "JSON league fixture used instead of the Sleeper API.")
	flags.StringVar(&opts.baseURL, "base-url", sleeper.DefaultBaseURL, "Sleeper API base URL.")
	flags.DurationVar(&opts.timeout, "timeout", 20*time.Second, "Timeout for each Sleeper API request.")
	flags.StringVar(&opts.seasonStart, "season-start", nflweek.DefaultSeasonStart, "RFC3339 kickoff of week one.")
	_ = cmd.MarkFlagRequired("league")
	return cmd
}

func (o *renderOptions) source() (domain.LeagueSource, error) {
	if o.fixture != "" {
		return sleeper.LoadStatic(o.fixture)
	}
	return sleeper.NewClient(o.baseURL, o.timeout, "matchups-cli"), nil
}
