// Package state provides the bubbletea model for the wastewise TUI.
package state

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/wastewise/wastewise/internal/app"
	"github.com/wastewise/wastewise/internal/domain"
)

const (
	defaultViewportWidth  = 80
	defaultViewportHeight = 24
	refreshTickInterval   = 250 * time.Millisecond
)

// Page identifies one screen of the TUI.
type Page int

const (
	PageBins Page = iota
	PageMarket
	PageInbox
	PageCommunity
	PageEducation
	pageCount
)

// Title returns the tab label for the page.
func (p Page) Title() string {
	switch p {
	case PageBins:
		return "Bins"
	case PageMarket:
		return "Market"
	case PageInbox:
		return "Inbox"
	case PageCommunity:
		return "Community"
	case PageEducation:
		return "Education"
	default:
		return "?"
	}
}

// tickMsg drives periodic re-render so notice expiry and simulated
// refreshes become visible without user input.
type tickMsg time.Time

// Model represents the TUI model for bubbletea.
type Model struct {
	session *app.Session

	page    Page
	cursor  int
	width   int
	height  int
	filters [pageCount]domain.FilterState

	searching bool
	search    textinput.Model

	quitting bool
	err      error
}

// NewModel creates a TUI model over a session.
func NewModel(session *app.Session) *Model {
	search := textinput.New()
	search.Placeholder = "search..."
	search.CharLimit = 64
	search.Width = 30

	m := &Model{
		session: session,
		page:    PageBins,
		width:   defaultViewportWidth,
		height:  defaultViewportHeight,
		search:  search,
	}
	for p := Page(0); p < pageCount; p++ {
		m.filters[p] = domain.FilterState{Category: domain.CategoryAll, Status: domain.CategoryAll}
	}
	return m
}

// Init starts the periodic render tick.
func (m *Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(refreshTickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		if m.quitting {
			return m, nil
		}
		return m, tick()
	}
	return m, nil
}

// filter returns the active filter state for the current page.
func (m *Model) filter() domain.FilterState {
	state := m.filters[m.page]
	state.Query = m.search.Value()
	return state
}

// postFilter returns the filter applied to the community news feed. The
// category cycled with `f` on this page selects leaderboard building
// types, not post topics, so only the search query carries over.
func (m *Model) postFilter() domain.FilterState {
	return domain.FilterState{Query: m.search.Value()}
}

// listLen returns the number of visible rows on the current page.
func (m *Model) listLen() int {
	switch m.page {
	case PageBins:
		return len(m.session.Bins(m.filter()))
	case PageMarket:
		return len(m.session.Products(m.filter()))
	case PageInbox:
		notifs, err := m.session.Inbox(m.filters[PageInbox].Tab)
		if err != nil {
			m.err = err
			return 0
		}
		return len(notifs)
	case PageCommunity:
		return len(m.session.Posts(m.postFilter()))
	case PageEducation:
		return len(m.session.Trainings(m.filter()))
	default:
		return 0
	}
}

// clampCursor keeps the cursor inside the visible list after filtering
// or mutation shrank it.
func (m *Model) clampCursor() {
	n := m.listLen()
	if n == 0 {
		m.cursor = 0
		return
	}
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}
