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

func newSanctuaryCmd() *cobra.Command {
	flags := &pageFlags{}
	var sortFlag string

	cmd := &cobra.Command{
		Use:   "sanctuary",
		Short: "Browse the monster sanctuary",
		Long:  "Browse, sort, and page through every monster in your sanctuary.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client := newClient(cmd)
			cfg := config.Global()

			if flags.Plain || !isTerminal(os.Stdout) {
				return runSanctuaryPlain(cmd, client.MonsterSource(), flags, sortFlag)
			}

			model := tui.NewSanctuaryModel(client.MonsterSource(),
				cfg.UI.PageSize, cfg.UI.WindowSize, logger)
			_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
			return err
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&sortFlag, "sort", "", "sort the page by 'field' or 'field:order' (e.g. level:desc)")

	return cmd
}

// runSanctuaryPlain prints one roster page as plain text. The controller
// still owns the page math: flag input is clamped through it exactly like a
// TUI navigation would be.
func runSanctuaryPlain(cmd *cobra.Command, source paging.Source[game.Monster], flags *pageFlags, sortFlag string) error {
	if err := flags.validate(); err != nil {
		return err
	}

	sortField, sortOrder, err := game.ParseSort(sortFlag)
	if err != nil {
		return err
	}
	sorter := game.NewMonsterSorter()
	if sortField != "" && !sorter.IsValidField(sortField) {
		return fmt.Errorf("%w: %q (valid: %v)", game.ErrInvalidSortField, sortField, sorter.ValidFields())
	}

	// Start open-ended: the real total arrives with the first response and
	// clamps the requested page if it is past the end.
	ctrl := paging.NewOpenEnded(flags.PageSize,
		paging.WithInitialPage(flags.Page),
		paging.WithLogger(logger),
	)

	q := paging.Query{Limit: ctrl.Limit(), Offset: ctrl.Offset()}
	res, err := source.Fetch(cmd.Context(), q)
	if err != nil {
		return err
	}
	paging.ApplyResult(ctrl, res)

	// The requested page may have been clamped down by the real total;
	// refetch only when it moved.
	if ctrl.Offset() != q.Offset {
		res, err = source.Fetch(cmd.Context(), paging.Query{Limit: ctrl.Limit(), Offset: ctrl.Offset()})
		if err != nil {
			return err
		}
	}

	monsters := res.Items
	if sortField != "" {
		monsters = sorter.Sort(monsters, sortField, sortOrder)
	}

	out := cmd.OutOrStdout()
	for _, m := range monsters {
		fmt.Fprintf(out, "%-22s %-16s %-8s %-9s Lv %-3d bond %d\n",
			m.Name, m.Species, m.Element, m.Rarity, m.Level, m.BondLevel)
	}
	fmt.Fprintln(out, renderPlainFooter(ctrl.Info()))
	return nil
}
