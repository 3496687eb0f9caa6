package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/moongate-games/sanctum/internal/game"
	"github.com/moongate-games/sanctum/internal/paging"
)

// Monster row layout.
const (
	monsterNameWidth    = 22
	monsterSpeciesWidth = 16
)

// NewSanctuaryModel builds the monster sanctuary screen: a paginated roster
// backed by the sanctuary endpoint (known total).
func NewSanctuaryModel(
	source paging.Source[game.Monster],
	pageSize, windowSize int,
	logger zerolog.Logger,
) *PagedListModel[game.Monster] {
	ctrl := paging.New(pageSize, 0,
		paging.WithWindowSize(windowSize),
		paging.WithLogger(logger),
	)
	return NewPagedListModel("MONSTER SANCTUARY", ctrl, source, renderMonsterRow,
		screenLogger(logger, "sanctuary"))
}

// renderMonsterRow renders one roster line:
//
//	> Cindertail            ember-fox        [ember] rare    Lv 12  bond ♥♥♥
func renderMonsterRow(m game.Monster, selected bool) string {
	cursor := "  "
	if selected {
		cursor = "> "
	}

	row := fmt.Sprintf("%s%-*s %-*s %s %s  Lv %-3d bond %s",
		cursor,
		monsterNameWidth, truncate(m.Name, monsterNameWidth),
		monsterSpeciesWidth, truncate(m.Species, monsterSpeciesWidth),
		RenderElementBadge(m.Element),
		RenderRarityBadge(m.Rarity),
		m.Level,
		bondHearts(m.BondLevel),
	)

	if selected {
		return lipgloss.NewStyle().Background(ColorSelected).Render(row)
	}
	return row
}

func bondHearts(bond int) string {
	const maxHearts = 5
	if bond < 0 {
		bond = 0
	}
	if bond > maxHearts {
		bond = maxHearts
	}
	hearts := ""
	for i := 0; i < bond; i++ {
		hearts += "♥"
	}
	for i := bond; i < maxHearts; i++ {
		hearts += "·"
	}
	return hearts
}

// truncate shortens s to maxLen runes. Slicing runes rather than bytes keeps
// multibyte names from being cut mid-sequence.
func truncate(s string, maxLen int) string {
	const suffix = "..."
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= len(suffix) {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-len(suffix)]) + suffix
}

func screenLogger(logger zerolog.Logger, screen string) zerolog.Logger {
	return logger.With().Str("screen", screen).Logger()
}
