package tui

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/moongate-games/sanctum/internal/paging"
)

// Default dimensions before the first WindowSizeMsg arrives.
const (
	listDefaultWidth  = 80
	listDefaultHeight = 24
)

// limitStep is the increment for the +/- page-size keys.
const limitStep = 5

// ItemRenderFunc renders one list item; selected marks the cursor row.
type ItemRenderFunc[T any] func(item T, selected bool) string

// pageLoadedMsg carries one fetched page back into the model. seq ties the
// response to the fetch that produced it, so a reply that was superseded by
// faster paging is dropped instead of clobbering the newer page.
type pageLoadedMsg[T any] struct {
	seq    int
	result paging.Result[T]
	err    error
}

// PagedListModel is the shared scaffolding of every paginated screen: it
// owns a paging.Controller, fetches pages from a paging.Source, and renders
// items plus pager controls. Screens embed it and supply a title and an
// item renderer.
type PagedListModel[T any] struct {
	title  string
	ctrl   *paging.Controller
	source paging.Source[T]
	render ItemRenderFunc[T]

	items    []T
	selected int
	loading  bool
	err      error
	seq      int

	jump    textinput.Model
	jumping bool

	width  int
	height int

	log zerolog.Logger
}

// NewPagedListModel creates a paged list screen around ctrl and source.
func NewPagedListModel[T any](
	title string,
	ctrl *paging.Controller,
	source paging.Source[T],
	render ItemRenderFunc[T],
	logger zerolog.Logger,
) *PagedListModel[T] {
	jump := textinput.New()
	jump.Placeholder = "page"
	jump.CharLimit = 6
	jump.Width = 8

	return &PagedListModel[T]{
		title:  title,
		ctrl:   ctrl,
		source: source,
		render: render,
		jump:   jump,
		width:  listDefaultWidth,
		height: listDefaultHeight,
		log:    logger,
	}
}

// Init starts the first page fetch.
func (m *PagedListModel[T]) Init() tea.Cmd {
	return m.fetchCmd()
}

// fetchCmd snapshots the controller's current query and fetches it off the
// event loop. The engine never fetches; this model is the owning view that
// reads (limit, offset) and issues the request.
func (m *PagedListModel[T]) fetchCmd() tea.Cmd {
	m.loading = true
	m.seq++
	seq := m.seq
	q := paging.Query{Limit: m.ctrl.Limit(), Offset: m.ctrl.Offset()}

	return func() tea.Msg {
		result, err := m.source.Fetch(context.Background(), q)
		return pageLoadedMsg[T]{seq: seq, result: result, err: err}
	}
}

// Update handles fetch completions, resizes, and navigation keys.
func (m *PagedListModel[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case pageLoadedMsg[T]:
		return m.handlePageLoaded(msg), nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.jumping {
			return m.handleJumpKey(msg)
		}
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *PagedListModel[T]) handlePageLoaded(msg pageLoadedMsg[T]) *PagedListModel[T] {
	if msg.seq != m.seq {
		// Stale reply from a fetch the user already paged past.
		return m
	}
	m.loading = false

	if msg.err != nil {
		m.err = msg.err
		m.log.Error().Err(msg.err).Str("screen", m.title).Msg("page fetch failed")
		return m
	}

	m.err = nil
	m.items = msg.result.Items
	paging.ApplyResult(m.ctrl, msg.result)
	if m.selected >= len(m.items) {
		m.selected = max(0, len(m.items)-1)
	}
	return m
}

//nolint:gocognit,exhaustive // Key handling inherently requires multiple branches.
func (m *PagedListModel[T]) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit

	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < len(m.items)-1 {
			m.selected++
		}

	case "right", "n":
		before := m.ctrl.CurrentPage()
		m.ctrl.NextPage()
		if m.ctrl.CurrentPage() != before {
			return m, m.fetchCmd()
		}
	case "left", "p":
		before := m.ctrl.CurrentPage()
		m.ctrl.PrevPage()
		if m.ctrl.CurrentPage() != before {
			return m, m.fetchCmd()
		}
	case "home", "g":
		m.ctrl.FirstPage()
		return m, m.fetchCmd()
	case "end", "G":
		m.ctrl.LastPage()
		return m, m.fetchCmd()

	case "+":
		m.ctrl.SetLimit(m.ctrl.Limit() + limitStep)
		return m, m.fetchCmd()
	case "-":
		m.ctrl.SetLimit(m.ctrl.Limit() - limitStep)
		return m, m.fetchCmd()

	case ":":
		m.jumping = true
		m.jump.SetValue("")
		return m, m.jump.Focus()

	case "r":
		return m, m.fetchCmd()
	}

	return m, nil
}

func (m *PagedListModel[T]) handleJumpKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.jumping = false
		m.jump.Blur()
		if n, err := strconv.Atoi(strings.TrimSpace(m.jump.Value())); err == nil {
			// Out-of-range targets are the engine's problem: it clamps.
			m.ctrl.GoToPage(n)
			return m, m.fetchCmd()
		}
		return m, nil
	case "esc":
		m.jumping = false
		m.jump.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.jump, cmd = m.jump.Update(msg)
	return m, cmd
}

// View renders the title, the current page of items, the pager controls,
// and the key help line.
func (m *PagedListModel[T]) View() string {
	var sb strings.Builder

	sb.WriteString(HeaderStyle.Render(m.title))
	sb.WriteString("\n\n")

	switch {
	case m.err != nil:
		sb.WriteString(ErrorStyle.Render("error: " + m.err.Error()))
		sb.WriteString("\n")
	case m.loading && len(m.items) == 0:
		sb.WriteString(InfoStyle.Render("loading..."))
		sb.WriteString("\n")
	case len(m.items) == 0:
		sb.WriteString(InfoStyle.Render("nothing here yet"))
		sb.WriteString("\n")
	default:
		for i, item := range m.items {
			sb.WriteString(m.render(item, i == m.selected))
			sb.WriteString("\n")
		}
	}

	sb.WriteString("\n")
	sb.WriteString(RenderPager(m.ctrl.Info()))
	sb.WriteString("\n")

	if m.jumping {
		sb.WriteString("go to page: ")
		sb.WriteString(m.jump.View())
		sb.WriteString("\n")
	}

	sb.WriteString(RenderStatusBar(
		"n/p page", "g/G first/last", ": jump", "+/- page size", "r refresh", "q quit",
	))
	return sb.String()
}

// Selected returns the cursor position within the current page.
func (m *PagedListModel[T]) Selected() int {
	return m.selected
}

// SelectedItem returns the item under the cursor, or nil for an empty page.
func (m *PagedListModel[T]) SelectedItem() *T {
	if m.selected < 0 || m.selected >= len(m.items) {
		return nil
	}
	return &m.items[m.selected]
}

// Controller exposes the underlying pagination controller.
func (m *PagedListModel[T]) Controller() *paging.Controller {
	return m.ctrl
}
