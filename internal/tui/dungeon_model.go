package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/moongate-games/sanctum/internal/game"
	"github.com/moongate-games/sanctum/internal/paging"
)

const dungeonNameWidth = 20

// NewDungeonModel builds the dungeon exploration screen: the run chronicle
// is an open-ended feed, so the controller runs in unknown-total mode —
// "last page" has no meaning here and next is gated by the server's
// has-more signal.
func NewDungeonModel(
	source paging.Source[game.DungeonRun],
	pageSize int,
	logger zerolog.Logger,
) *PagedListModel[game.DungeonRun] {
	ctrl := paging.NewOpenEnded(pageSize, paging.WithLogger(logger))
	return NewPagedListModel("DUNGEON CHRONICLE", ctrl, source, renderRunRow,
		screenLogger(logger, "dungeon"))
}

// renderRunRow renders one chronicle line:
//
//	> gloom-warrens        depth  7  cleared    350g  2026-02-14
func renderRunRow(r game.DungeonRun, selected bool) string {
	cursor := "  "
	if selected {
		cursor = "> "
	}

	when := "unknown"
	if !r.StartedAt.IsZero() {
		when = r.StartedAt.Format("2006-01-02")
	}

	row := fmt.Sprintf("%s%-*s depth %2d  %s  %5dg  %s",
		cursor,
		dungeonNameWidth, truncate(r.Dungeon, dungeonNameWidth),
		r.Depth,
		RenderOutcomeBadge(r.Outcome),
		r.GoldFound,
		MutedStyle.Render(when),
	)

	if selected {
		return lipgloss.NewStyle().Background(ColorSelected).Render(row)
	}
	return row
}
