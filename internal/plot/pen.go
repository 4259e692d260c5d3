package plot

import "github.com/charmbracelet/lipgloss"

// Pen is the stroke used to draw an item.
type Pen struct {
	Width float64
	Color lipgloss.Color
}

// DefaultPen is a two cell wide light stroke.
func DefaultPen() Pen {
	return Pen{Width: 2, Color: lipgloss.Color("#E6E6E6")}
}

// Style returns the lipgloss style cells drawn with this pen use.
func (p Pen) Style() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(p.Color).Bold(p.Width >= 3)
}

// Glyph picks the rune for a stroke running along the given direction.
func (p Pen) Glyph(vertical bool) rune {
	heavy := p.Width >= 2
	switch {
	case vertical && heavy:
		return '┃'
	case vertical:
		return '│'
	case heavy:
		return '━'
	}
	return '─'
}
