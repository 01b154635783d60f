package state

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/wastewise/wastewise/internal/app"
	"github.com/wastewise/wastewise/internal/domain"
)

// Filter cycles per page. The first entry is always the All sentinel.
var (
	binStatusCycle = []string{
		domain.CategoryAll,
		domain.BinActive.String(),
		domain.BinFull.String(),
		domain.BinMaintenance.String(),
	}
	productCategoryCycle = append([]string{domain.CategoryAll}, domain.ProductCategories...)
	buildingCycle        = append([]string{domain.CategoryAll}, domain.BuildingCategories...)
	trainingFormatCycle  = []string{domain.CategoryAll, "In-Person", "Virtual"}
)

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
		return m.handleSearchKey(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "tab":
		m.page = (m.page + 1) % pageCount
		m.cursor = 0
	case "shift+tab":
		m.page = (m.page + pageCount - 1) % pageCount
		m.cursor = 0
	case "1", "2", "3", "4", "5":
		m.page = Page(int(msg.String()[0] - '1'))
		m.cursor = 0
	case "j", "down":
		m.cursor++
		m.clampCursor()
	case "k", "up":
		m.cursor--
		m.clampCursor()
	case "f":
		m.cycleFilter()
		m.clampCursor()
	case "/":
		m.searching = true
		m.search.Focus()
	case "esc":
		m.search.SetValue("")
		m.clampCursor()
	case "x":
		m.session.DismissNotice()
	default:
		m.handleActionKey(msg.String())
		m.clampCursor()
	}
	return m, nil
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searching = false
		m.search.Blur()
		m.clampCursor()
		return m, nil
	case "esc":
		m.searching = false
		m.search.Blur()
		m.search.SetValue("")
		m.clampCursor()
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.clampCursor()
	return m, cmd
}

// cycleFilter advances the current page's filter to its next value.
func (m *Model) cycleFilter() {
	switch m.page {
	case PageBins:
		m.filters[m.page].Status = nextIn(binStatusCycle, m.filters[m.page].Status)
	case PageMarket:
		m.filters[m.page].Category = nextIn(productCategoryCycle, m.filters[m.page].Category)
	case PageInbox:
		m.filters[m.page].Tab = nextIn(app.InboxFilterTabs, m.filters[m.page].Tab)
	case PageCommunity:
		m.filters[m.page].Category = nextIn(buildingCycle, m.filters[m.page].Category)
	case PageEducation:
		m.filters[m.page].Category = nextIn(trainingFormatCycle, m.filters[m.page].Category)
	}
}

func nextIn(cycle []string, current string) string {
	for i, v := range cycle {
		if v == current {
			return cycle[(i+1)%len(cycle)]
		}
	}
	return cycle[0]
}

// handleActionKey dispatches page-specific mutation keys on the item
// under the cursor.
func (m *Model) handleActionKey(key string) {
	switch m.page {
	case PageBins:
		bins := m.session.Bins(m.filter())
		if m.cursor >= len(bins) {
			return
		}
		switch key {
		case "p":
			m.session.RequestPickup(bins[m.cursor].ID)
		case "m":
			m.session.ScheduleMaintenance(bins[m.cursor].ID)
		case "s":
			m.session.Refresh()
		}
	case PageMarket:
		if key != "e" {
			return
		}
		products := m.session.Products(m.filter())
		if m.cursor < len(products) {
			m.session.Exchange(products[m.cursor].ID)
		}
	case PageInbox:
		notifs, err := m.session.Inbox(m.filters[PageInbox].Tab)
		if err != nil {
			m.err = err
			return
		}
		switch key {
		case "r":
			if m.cursor < len(notifs) {
				m.err = m.session.MarkRead(notifs[m.cursor].ID)
			}
		case "R":
			m.err = m.session.MarkAllRead()
		case "d":
			if m.cursor < len(notifs) {
				m.err = m.session.Remove(notifs[m.cursor].ID)
			}
		}
	case PageCommunity:
		if key != "l" {
			return
		}
		posts := m.session.Posts(m.postFilter())
		if m.cursor < len(posts) {
			m.session.ToggleLike(posts[m.cursor].ID)
		}
	case PageEducation:
		if key != "b" {
			return
		}
		trainings := m.session.Trainings(m.filter())
		if m.cursor < len(trainings) {
			m.session.BookSession(trainings[m.cursor].ID)
		}
	}
}
