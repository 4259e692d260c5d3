package tui

import (
	"fmt"
	"strconv"
	"strings"

	table "github.com/charmbracelet/bubbles/table"

	"plotmark/internal/marker"
)

func markerColumns() []table.Column {
	return []table.Column{
		{Title: " ", Width: 1},
		{Title: "line", Width: 6},
		{Title: "panel", Width: 5},
		{Title: "axis", Width: 4},
		{Title: "at", Width: 10},
		{Title: "real", Width: 10},
		{Title: "offset", Width: 6},
		{Title: "state", Width: 8},
		{Title: "movable", Width: 12},
		{Title: "peers", Width: 5},
	}
}

// markerRows describes every line on the chart. The selected line is
// marked with '*'.
func markerRows(c *chart) []table.Row {
	rows := make([]table.Row, 0, len(c.lines))
	for _, l := range c.lines {
		mark := ""
		if l == c.sel {
			mark = "*"
		}
		movable := "yes"
		if !l.Movable() {
			movable = "no"
		}
		if !l.Visible() {
			movable += " (hidden)"
		}
		rows = append(rows, table.Row{
			mark,
			l.Name(),
			strconv.Itoa(c.panelOf(l) + 1),
			l.Axis().String(),
			formatCoord(l.Position()),
			formatCoord(l.RealCoord().On(l.Axis())),
			strconv.Itoa(l.Offset()),
			l.State().String(),
			movable,
			strconv.Itoa(len(l.SyncLines())),
		})
	}
	return rows
}

// refreshTable rebuilds the marker table rows from the chart.
func (m *Model) refreshTable() {
	if m.chart == nil {
		m.tbl.SetRows(nil)
		return
	}
	m.tbl.SetRows(markerRows(m.chart))
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// describe is the one-line status form of a line.
func describe(l *marker.Line) string {
	if l == nil {
		return "nothing"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s=%s", l.Name(), l.Axis(), formatCoord(l.Position()))
	if n := len(l.SyncLines()); n > 0 {
		fmt.Fprintf(&b, ", %d peers", n)
	}
	b.WriteString(")")
	return b.String()
}
