package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/moongate-games/sanctum/internal/api"
	"github.com/moongate-games/sanctum/internal/config"
	"github.com/moongate-games/sanctum/internal/paging"
	"github.com/moongate-games/sanctum/internal/tui"
)

func newHomeCmd() *cobra.Command {
	flags := &pageFlags{}

	cmd := &cobra.Command{
		Use:   "home",
		Short: "Open the home base",
		Long:  "Review your roster at a glance and page through the expedition board.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client := newClient(cmd)
			cfg := config.Global()

			// A quick handshake up front beats a half-rendered screen
			// failing later.
			if err := client.CheckVersion(cmd.Context()); err != nil {
				return err
			}

			if flags.Plain || !isTerminal(os.Stdout) {
				return runHomePlain(cmd, client, flags)
			}

			model := tui.NewHomeModel(client.FetchAllMonsters, client.ExpeditionSource(),
				cfg.UI.PageSize, cfg.UI.WindowSize, logger)
			_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
			return err
		},
	}

	flags.register(cmd)
	return cmd
}

func runHomePlain(cmd *cobra.Command, client *api.Client, flags *pageFlags) error {
	if err := flags.validate(); err != nil {
		return err
	}

	ctrl := paging.NewOpenEnded(flags.PageSize,
		paging.WithInitialPage(flags.Page),
		paging.WithLogger(logger),
	)

	q := paging.Query{Limit: ctrl.Limit(), Offset: ctrl.Offset()}
	res, err := client.ExpeditionSource().Fetch(cmd.Context(), q)
	if err != nil {
		return err
	}
	paging.ApplyResult(ctrl, res)
	if ctrl.Offset() != q.Offset {
		res, err = client.ExpeditionSource().Fetch(cmd.Context(),
			paging.Query{Limit: ctrl.Limit(), Offset: ctrl.Offset()})
		if err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	for _, e := range res.Items {
		status := e.Duration.String()
		if e.Complete {
			status = "complete"
		}
		fmt.Fprintf(out, "%-24s %-10s squad of %d   reward: %s\n",
			e.Name, status, len(e.Squad), e.Reward)
	}
	fmt.Fprintln(out, renderPlainFooter(ctrl.Info()))
	return nil
}
