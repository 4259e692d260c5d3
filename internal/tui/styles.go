package tui

import "github.com/charmbracelet/lipgloss"

// Styles
var (
	baseFg    = lipgloss.Color("#E6E6E6")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#7C3AED")
	borderCol = lipgloss.Color("#243141")
	spanFg    = lipgloss.Color("#FBBF24")

	appStyle   = lipgloss.NewStyle().Foreground(baseFg)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(baseDimFg)
	spanStyle  = lipgloss.NewStyle().Foreground(spanFg)
)

// seriesPalette colors graphs in load order.
var seriesPalette = []lipgloss.Color{
	"#22D3EE",
	"#A3E635",
	"#F472B6",
	"#FB923C",
	"#60A5FA",
	"#FACC15",
}

func seriesColor(i int) lipgloss.Color {
	return seriesPalette[i%len(seriesPalette)]
}
