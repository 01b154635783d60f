package state

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/wastewise/wastewise/internal/domain"
	"github.com/wastewise/wastewise/internal/notice"
)

var (
	tabStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("245"))
	activeTabStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("29"))
	selectedRowStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("230")).
				Background(lipgloss.Color("236"))
	unreadRowStyle = lipgloss.NewStyle().Bold(true)
	helpStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	successStyle   = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("29")).
			Padding(0, 1)
	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("166")).
			Padding(0, 1)
)

// View renders the full screen.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.renderTabs())
	b.WriteString("\n")
	b.WriteString(m.renderNotice())
	b.WriteString("\n")
	b.WriteString(m.renderPage())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m *Model) renderTabs() string {
	var tabs []string
	for p := Page(0); p < pageCount; p++ {
		label := fmt.Sprintf("%d:%s", int(p)+1, p.Title())
		if p == m.page {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}
	balance := tabStyle.Render(fmt.Sprintf("%d PTS", m.session.Balance()))
	return lipgloss.JoinHorizontal(lipgloss.Top, append(tabs, balance)...)
}

func (m *Model) renderNotice() string {
	n := m.session.Notice()
	if n == nil {
		if m.err != nil {
			return errorStyle.Render(m.err.Error())
		}
		return ""
	}
	line := n.Title
	if n.Message != "" {
		line += " — " + n.Message
	}
	if n.HasPoints {
		line += fmt.Sprintf(" (remaining: %d pts)", n.Points)
	}
	if n.Kind == notice.KindSuccess {
		return successStyle.Render(line)
	}
	return errorStyle.Render(line)
}

func (m *Model) renderPage() string {
	switch m.page {
	case PageBins:
		return m.renderBins()
	case PageMarket:
		return m.renderMarket()
	case PageInbox:
		return m.renderInbox()
	case PageCommunity:
		return m.renderCommunity()
	case PageEducation:
		return m.renderEducation()
	default:
		return ""
	}
}

func (m *Model) renderBins() string {
	var b strings.Builder
	counts := m.session.BinStatusCounts()
	online, total := m.session.SensorsOnline()
	fmt.Fprintf(&b, "filter: %s   active %d / full %d / maintenance %d   sensors %d/%d\n",
		m.filters[PageBins].Status,
		counts[domain.BinActive.String()],
		counts[domain.BinFull.String()],
		counts[domain.BinMaintenance.String()],
		online, total)
	bins := m.session.Bins(m.filter())
	if len(bins) == 0 {
		return b.String() + "  No bins match the current filter.\n"
	}
	for i, bin := range bins {
		row := fmt.Sprintf("%-7s %-22s %-10s %3d%%  %-11s", bin.ID, bin.Name, bin.Floor, bin.FillLevel(), bin.State)
		b.WriteString(m.renderRow(row, i == m.cursor, false))
	}
	return b.String()
}

func (m *Model) renderMarket() string {
	var b strings.Builder
	fmt.Fprintf(&b, "category: %s\n", valueOrAll(m.filters[PageMarket].Category))
	products := m.session.Products(m.filter())
	if len(products) == 0 {
		return b.String() + "  No products found.\n"
	}
	for i, p := range products {
		popular := ""
		if p.Popular {
			popular = " [Popular]"
		}
		row := fmt.Sprintf("%-3s %-28s %5d pts  %.1f★ %s%s", p.ID, p.Name, p.Points, p.Rating, p.ProductCat, popular)
		b.WriteString(m.renderRow(row, i == m.cursor, false))
	}
	return b.String()
}

func (m *Model) renderInbox() string {
	var b strings.Builder
	counts, err := m.session.InboxCounts()
	if err != nil {
		m.err = err
		return ""
	}
	tab := m.filters[PageInbox].Tab
	if tab == "" {
		tab = "all"
	}
	fmt.Fprintf(&b, "tab: %s   all %d / unread %d\n", tab, counts["all"], counts["unread"])
	notifs, err := m.session.Inbox(tab)
	if err != nil {
		m.err = err
		return ""
	}
	if len(notifs) == 0 {
		return b.String() + "  No notifications.\n"
	}
	for i, n := range notifs {
		row := fmt.Sprintf("%-3s %-12s %-32s %s", n.ID, n.Type, n.Title, n.Time)
		b.WriteString(m.renderRow(row, i == m.cursor, !n.Read))
	}
	return b.String()
}

func (m *Model) renderCommunity() string {
	var b strings.Builder
	fmt.Fprintf(&b, "feed — leaderboard filter: %s\n", valueOrAll(m.filters[PageCommunity].Category))
	posts := m.session.Posts(m.postFilter())
	for i, p := range posts {
		liked := " "
		if p.Liked {
			liked = "♥"
		}
		row := fmt.Sprintf("%s %-3s [%-14s] %-44s %3d likes", liked, p.ID, p.Topic, p.Title, p.Likes)
		b.WriteString(m.renderRow(row, i == m.cursor, false))
	}
	b.WriteString("\n")
	for _, e := range m.session.Leaderboard(domain.FilterState{Category: m.filters[PageCommunity].Category}) {
		fmt.Fprintf(&b, "  #%d %-22s %-9s ESG %d %s\n", e.Rank, e.Name, e.BuildingType, e.ESGScore, e.Badge)
	}
	return b.String()
}

func (m *Model) renderEducation() string {
	var b strings.Builder
	fmt.Fprintf(&b, "format: %s\n", valueOrAll(m.filters[PageEducation].Category))
	trainings := m.session.Trainings(m.filter())
	for i, t := range trainings {
		row := fmt.Sprintf("%-3s %-34s %-12s %-9s %d/%d spots", t.ID, t.Title, t.Date, t.Format, t.SpotsLeft, t.TotalSpots)
		b.WriteString(m.renderRow(row, i == m.cursor, false))
	}
	return b.String()
}

func (m *Model) renderRow(row string, selected, unread bool) string {
	switch {
	case selected:
		return selectedRowStyle.Render("> "+row) + "\n"
	case unread:
		return unreadRowStyle.Render("  "+row) + "\n"
	default:
		return "  " + row + "\n"
	}
}

func (m *Model) renderFooter() string {
	if m.searching {
		return m.search.View()
	}
	help := "tab/1-5 pages  j/k move  f filter  / search  x dismiss  q quit"
	switch m.page {
	case PageBins:
		help += "  |  p pickup  m maintenance  s refresh"
	case PageMarket:
		help += "  |  e exchange"
	case PageInbox:
		help += "  |  r read  R all read  d delete"
	case PageCommunity:
		help += "  |  l like"
	case PageEducation:
		help += "  |  b book"
	}
	return helpStyle.Render(help)
}

func valueOrAll(v string) string {
	if v == "" {
		return domain.CategoryAll
	}
	return v
}
