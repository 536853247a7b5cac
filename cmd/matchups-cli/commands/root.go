package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/asecurityteam/matchups"
	"github.com/asecurityteam/matchups/pkg/leagues"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// NewRootCommand assembles the CLI with all subcommands attached.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "matchups-cli",
		Short:         "matchups-cli renders Sleeper league matchup reports from the terminal.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringSlice("leagues", []string{matchups.DefaultLeague}, "League registry entries formatted as name:leagueID.")
	root.AddCommand(newRenderCommand(), newLeaguesCommand())
	return root
}

// ExecuteContext runs the CLI and exits non-zero on failure.
func ExecuteContext(ctx context.Context) {
	if err := NewRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func registry(cmd *cobra.Command) (*leagues.Registry, error) {
	entries, err := cmd.Flags().GetStringSlice("leagues")
	if err != nil {
		return nil, err
	}
	return leagues.Parse(entries)
}

func newLeaguesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "leagues [--leagues name:id,...]",
		Short: "Lists the configured league names.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := registry(cmd)
			if err != nil {
				return err
			}
			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.AppendHeader(table.Row{"League", "ID"})
			for _, name := range r.Names() {
				id, _ := r.Resolve(name)
				t.AppendRow(table.Row{name, id})
			}
			t.Render()
			return nil
		},
	}
}
