package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/moongate-games/sanctum/internal/game"
)

// Layout constants.
const (
	cardBorderPadding = 1
	maxBadgeLen       = 12
)

// RenderElementBadge renders a colored element tag, e.g. [ember].
func RenderElementBadge(element game.Element) string {
	name := string(element)
	if runes := []rune(name); len(runes) > maxBadgeLen {
		name = string(runes[:maxBadgeLen])
	}
	color, ok := elementColors[name]
	if !ok {
		color = ColorLabel
	}
	style := lipgloss.NewStyle().Foreground(color).Bold(true)
	return style.Render("[" + name + "]")
}

// RenderRarityBadge renders the rarity tier with a per-tier color.
func RenderRarityBadge(rarity game.Rarity) string {
	var color lipgloss.Color
	switch rarity {
	case game.RarityMythic:
		color = ColorAccent
	case game.RarityEpic:
		color = ColorHeader
	case game.RarityRare:
		color = ColorWarning
	default:
		color = ColorLabel
	}
	return lipgloss.NewStyle().Foreground(color).Render(rarity.String())
}

// RenderOutcomeBadge renders a dungeon run outcome with a status color.
func RenderOutcomeBadge(outcome game.RunOutcome) string {
	var color lipgloss.Color
	switch outcome {
	case game.RunCleared:
		color = ColorOK
	case game.RunDefeated:
		color = ColorDanger
	case game.RunRetreated:
		color = ColorWarning
	default:
		color = ColorLabel
	}
	return lipgloss.NewStyle().Foreground(color).Bold(true).Render(string(outcome))
}

// RenderCard wraps content in a rounded border with a styled title line.
func RenderCard(title, content string, width int) string {
	var sb strings.Builder
	sb.WriteString(HeaderStyle.Render(title))
	sb.WriteString("\n")
	sb.WriteString(content)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorMuted).
		Padding(0, cardBorderPadding).
		Width(width).
		Render(sb.String())
}

// RenderStatusBar renders the bottom help/status line, dimmed so it stays
// out of the way of the list content.
func RenderStatusBar(segments ...string) string {
	return MutedStyle.Render(strings.Join(segments, "  ·  "))
}
