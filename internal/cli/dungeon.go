package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/moongate-games/sanctum/internal/config"
	"github.com/moongate-games/sanctum/internal/game"
	"github.com/moongate-games/sanctum/internal/paging"
	"github.com/moongate-games/sanctum/internal/tui"
)

func newDungeonCmd() *cobra.Command {
	flags := &pageFlags{}

	cmd := &cobra.Command{
		Use:   "dungeon",
		Short: "Browse the dungeon run chronicle",
		Long:  "Page through past and ongoing dungeon runs. The chronicle is an open-ended feed: there is no final page until the server says so.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client := newClient(cmd)
			cfg := config.Global()

			if flags.Plain || !isTerminal(os.Stdout) {
				return runDungeonPlain(cmd, client.RunSource(), flags)
			}

			model := tui.NewDungeonModel(client.RunSource(), cfg.UI.PageSize, logger)
			_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
			return err
		},
	}

	flags.register(cmd)
	return cmd
}

func runDungeonPlain(cmd *cobra.Command, source paging.Source[game.DungeonRun], flags *pageFlags) error {
	if err := flags.validate(); err != nil {
		return err
	}

	ctrl := paging.NewOpenEnded(flags.PageSize,
		paging.WithInitialPage(flags.Page),
		paging.WithLogger(logger),
	)

	res, err := source.Fetch(cmd.Context(),
		paging.Query{Limit: ctrl.Limit(), Offset: ctrl.Offset()})
	if err != nil {
		return err
	}
	paging.ApplyResult(ctrl, res)

	out := cmd.OutOrStdout()
	for _, r := range res.Items {
		when := "unknown"
		if !r.StartedAt.IsZero() {
			when = r.StartedAt.Format("2006-01-02")
		}
		fmt.Fprintf(out, "%-20s depth %2d  %-10s %5dg  %s\n",
			r.Dungeon, r.Depth, r.Outcome, r.GoldFound, when)
	}
	fmt.Fprintln(out, renderPlainFooter(ctrl.Info()))
	return nil
}
