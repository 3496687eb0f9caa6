// Package tui contains the Bubble Tea screens and the lipgloss component
// wrappers (badges, cards, pager controls) they are composed from.
package tui

import "github.com/charmbracelet/lipgloss"

// Shared palette.
var (
	ColorHeader   = lipgloss.Color("99")  // purple
	ColorLabel    = lipgloss.Color("245") // gray
	ColorValue    = lipgloss.Color("255") // white
	ColorMuted    = lipgloss.Color("240") // dark gray
	ColorAccent   = lipgloss.Color("212") // pink
	ColorOK       = lipgloss.Color("42")  // green
	ColorWarning  = lipgloss.Color("214") // orange
	ColorDanger   = lipgloss.Color("196") // red
	ColorSelected = lipgloss.Color("236") // selection background
)

// Shared styles.
var (
	HeaderStyle = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	LabelStyle  = lipgloss.NewStyle().Foreground(ColorLabel)
	ValueStyle  = lipgloss.NewStyle().Foreground(ColorValue).Bold(true)
	MutedStyle  = lipgloss.NewStyle().Foreground(ColorMuted)
	InfoStyle   = lipgloss.NewStyle().Foreground(ColorLabel).Italic(true)
	ErrorStyle  = lipgloss.NewStyle().Foreground(ColorDanger).Bold(true)

	// CurrentPageStyle highlights the active page marker in the pager.
	CurrentPageStyle = lipgloss.NewStyle().Foreground(ColorAccent).Bold(true)
)

// elementColors maps element names to their badge color.
var elementColors = map[string]lipgloss.Color{
	"neutral": ColorLabel,
	"ember":   lipgloss.Color("203"),
	"tide":    lipgloss.Color("39"),
	"gale":    lipgloss.Color("121"),
	"stone":   lipgloss.Color("137"),
	"umbra":   lipgloss.Color("141"),
}
