package tui

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/moongate-games/sanctum/internal/game"
	"github.com/moongate-games/sanctum/internal/paging"
)

// Roster table column widths.
const (
	rosterColElement = 12
	rosterColCount   = 8
	rosterColTopLv   = 8
	rosterTableRows  = 7
)

// RosterFetcher loads the complete roster for aggregate display.
type RosterFetcher func(ctx context.Context, pageSize int) ([]game.Monster, error)

// rosterLoadedMsg carries the full roster into the home model.
type rosterLoadedMsg struct {
	monsters []game.Monster
	err      error
}

// HomeModel is the home-base screen: a roster summary table on top of the
// paginated expedition board.
type HomeModel struct {
	roster      table.Model
	rosterErr   error
	rosterReady bool

	expeditions *PagedListModel[game.Expedition]

	fetchRoster RosterFetcher
	pageSize    int
	log         zerolog.Logger
}

// NewHomeModel builds the home-base screen.
func NewHomeModel(
	fetchRoster RosterFetcher,
	expeditionSource paging.Source[game.Expedition],
	pageSize, windowSize int,
	logger zerolog.Logger,
) *HomeModel {
	columns := []table.Column{
		{Title: "Element", Width: rosterColElement},
		{Title: "Count", Width: rosterColCount},
		{Title: "Top Lv", Width: rosterColTopLv},
	}
	roster := table.New(
		table.WithColumns(columns),
		table.WithHeight(rosterTableRows),
	)

	ctrl := paging.New(pageSize, 0,
		paging.WithWindowSize(windowSize),
		paging.WithLogger(logger),
	)
	expeditions := NewPagedListModel("EXPEDITION BOARD", ctrl, expeditionSource,
		renderExpeditionRow, screenLogger(logger, "home"))

	return &HomeModel{
		roster:      roster,
		expeditions: expeditions,
		fetchRoster: fetchRoster,
		pageSize:    pageSize,
		log:         screenLogger(logger, "home"),
	}
}

// Init kicks off both the roster aggregate fetch and the first expedition
// page.
func (m *HomeModel) Init() tea.Cmd {
	return tea.Batch(m.loadRosterCmd(), m.expeditions.Init())
}

func (m *HomeModel) loadRosterCmd() tea.Cmd {
	return func() tea.Msg {
		monsters, err := m.fetchRoster(context.Background(), m.pageSize)
		return rosterLoadedMsg{monsters: monsters, err: err}
	}
}

// Update routes roster messages locally and everything else to the
// expedition list.
func (m *HomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(rosterLoadedMsg); ok {
		if msg.err != nil {
			m.rosterErr = msg.err
			m.log.Error().Err(msg.err).Msg("roster fetch failed")
			return m, nil
		}
		m.roster.SetRows(rosterRows(msg.monsters))
		m.rosterReady = true
		return m, nil
	}

	_, cmd := m.expeditions.Update(msg)
	return m, cmd
}

// View renders the roster card above the expedition board.
func (m *HomeModel) View() string {
	var sb strings.Builder

	switch {
	case m.rosterErr != nil:
		sb.WriteString(ErrorStyle.Render("roster unavailable: " + m.rosterErr.Error()))
	case !m.rosterReady:
		sb.WriteString(InfoStyle.Render("surveying the sanctuary..."))
	default:
		sb.WriteString(RenderCard("HOME BASE", m.roster.View(), lipgloss.Width(m.roster.View())+4))
	}
	sb.WriteString("\n\n")
	sb.WriteString(m.expeditions.View())

	return sb.String()
}

// rosterRows aggregates the roster by element, ordered by descending count.
func rosterRows(monsters []game.Monster) []table.Row {
	type stat struct {
		count int
		topLv int
	}
	stats := make(map[game.Element]*stat)
	for _, m := range monsters {
		s, ok := stats[m.Element]
		if !ok {
			s = &stat{}
			stats[m.Element] = s
		}
		s.count++
		if m.Level > s.topLv {
			s.topLv = m.Level
		}
	}

	elements := make([]game.Element, 0, len(stats))
	for element := range stats {
		elements = append(elements, element)
	}
	sort.Slice(elements, func(i, j int) bool {
		if stats[elements[i]].count != stats[elements[j]].count {
			return stats[elements[i]].count > stats[elements[j]].count
		}
		return elements[i] < elements[j]
	})

	rows := make([]table.Row, 0, len(elements))
	for _, element := range elements {
		rows = append(rows, table.Row{
			string(element),
			fmt.Sprintf("%d", stats[element].count),
			fmt.Sprintf("%d", stats[element].topLv),
		})
	}
	return rows
}

// renderExpeditionRow renders one expedition board line:
//
//	> Herb Gathering        1h0m0s   squad of 2   reward: moonherb x3
func renderExpeditionRow(e game.Expedition, selected bool) string {
	cursor := "  "
	if selected {
		cursor = "> "
	}

	status := MutedStyle.Render(formatDuration(e.Duration))
	if e.Complete {
		status = lipgloss.NewStyle().Foreground(ColorOK).Render("complete")
	}

	row := fmt.Sprintf("%s%-24s %-10s squad of %d   reward: %s",
		cursor,
		truncate(e.Name, 24),
		status,
		len(e.Squad),
		e.Reward,
	)

	if selected {
		return lipgloss.NewStyle().Background(ColorSelected).Render(row)
	}
	return row
}

func formatDuration(d time.Duration) string {
	if d <= 0 {
		return "ready"
	}
	return d.Round(time.Minute).String()
}
