package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"plotmark/internal/plot"
)

// renderChart draws the panel stack into the chart area. Each panel gets
// its graph names and y range written over its top-left corner.
func (m Model) renderChart(w, h int) string {
	if m.chart == nil {
		return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, dimStyle.Render("no data"))
	}
	var rows []string
	for _, p := range m.chart.panels {
		c := p.surface.Canvas()
		c.Text(c.OriginX, c.OriginY+c.H-1, panelLegend(p.surface), dimStyle)
		rows = append(rows, c.Lines()...)
	}
	return strings.Join(rows, "\n")
}

// panelLegend names the graphs on a panel and its visible ranges.
func panelLegend(s *plot.Surface) string {
	var names []string
	for _, g := range s.Graphs() {
		names = append(names, g.Name)
	}
	label := strings.Join(names, ",")
	if label != "" {
		label += " "
	}
	return fmt.Sprintf(" %sx%s y%s ", label, s.Range(plot.AxisX), s.Range(plot.AxisY))
}

// renderCoords is the pointer readout for the footer.
func (m Model) renderCoords() string {
	if !m.hovering {
		return ""
	}
	return fmt.Sprintf("  x=%.5g y=%.5g  ", m.hoverX, m.hoverY)
}
