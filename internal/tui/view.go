package tui

import (
	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	// Layout sizes
	contentWidth := max(10, m.width)
	_, _, chartW, chartH := m.chartArea()

	// Header
	header := titleStyle.Render(" plotmark ─ interactive plot markers ")
	header = lipgloss.NewStyle().Width(contentWidth).Padding(0).Render(header)

	// Sidebar
	var sidebar string
	if m.showSidebar {
		m.l.SetSize(sidebarWidth-2, chartH-2)
		sidebar = lipgloss.NewStyle().Width(sidebarWidth).Render(m.l.View())
	}

	var body string
	switch {
	case m.showTable:
		colW := 0
		for _, c := range m.tbl.Columns() {
			colW += c.Width + 3
		}
		maxW := min(chartW, max(32, colW))
		m.tbl.SetWidth(maxW - 4)
		m.tbl.SetHeight(min(chartH-2, 20))
		box := boxStyle.Width(maxW).Render(m.tbl.View())
		body = lipgloss.Place(chartW, chartH, lipgloss.Center, lipgloss.Center, box)
	case m.help.ShowAll && !m.pasteMode:
		box := boxStyle.Render(m.help.FullHelpView(m.keys.FullHelp()))
		body = lipgloss.Place(chartW, chartH, lipgloss.Center, lipgloss.Center, box)
	case m.pasteMode:
		m.ta.SetWidth(chartW)
		m.ta.SetHeight(min(chartH, 12))
		body = lipgloss.NewStyle().Width(chartW).Height(chartH).Render(m.ta.View())
	default:
		body = lipgloss.NewStyle().Width(chartW).Height(chartH).Render(m.renderChart(chartW, chartH))
	}
	if m.showSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", body)
	}

	// Footer / help
	status := dimStyle.Render(" " + m.status + " ")
	help := ""
	if m.helpVisible {
		if m.pasteMode {
			help = m.help.ShortHelpView(pasteKeys{m.keys}.ShortHelp())
		} else {
			help = m.help.ShortHelpView(m.keys.ShortHelp())
		}
	}
	coords := dimStyle.Render(m.renderCoords())
	spacerW := max(0, contentWidth-lipgloss.Width(status)-lipgloss.Width(coords))
	right := lipgloss.Place(spacerW+lipgloss.Width(coords), 1, lipgloss.Right, lipgloss.Center, coords)
	footer := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Width(contentWidth).Render(lipgloss.JoinHorizontal(lipgloss.Bottom, status, right)),
		lipgloss.NewStyle().Width(contentWidth).MaxHeight(footerHeight-1).Render(" "+help),
	)

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(contentWidth).Height(m.height).Render(ui)
}
