package config

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"plotmark/internal/plot"
)

// Derivation targets for state colors left empty.
var (
	hoverTint = colorful.Color{R: 1, G: 1, B: 1}
	dragTint  = colorful.Color{R: 1, G: 0.647, B: 0}
)

const (
	hoverBlend = 0.35
	dragBlend  = 0.6
)

func (p *Pens) applyDefaults(defaults Pens) error {
	if p.Idle.Width == 0 {
		p.Idle.Width = defaults.Idle.Width
	}
	if p.Idle.Color == "" {
		p.Idle.Color = defaults.Idle.Color
	}
	if p.Hovered.Width == 0 {
		p.Hovered.Width = p.Idle.Width
	}
	if p.Dragging.Width == 0 {
		p.Dragging.Width = p.Idle.Width + 1
	}
	if p.Hovered.Color != "" && p.Dragging.Color != "" {
		return nil
	}

	base, err := colorful.Hex(p.Idle.Color)
	if err != nil {
		return fmt.Errorf("pens.idle.color %q: %w", p.Idle.Color, err)
	}
	if p.Hovered.Color == "" {
		p.Hovered.Color = base.BlendLab(hoverTint, hoverBlend).Clamped().Hex()
	}
	if p.Dragging.Color == "" {
		p.Dragging.Color = base.BlendLab(dragTint, dragBlend).Clamped().Hex()
	}
	return nil
}

// Validate checks every pen has a positive width and a parseable color.
func (p Pens) Validate() error {
	pens := []struct {
		name string
		pc   PenConfig
	}{{"idle", p.Idle}, {"hovered", p.Hovered}, {"dragging", p.Dragging}}
	for _, e := range pens {
		if e.pc.Width <= 0 {
			return fmt.Errorf("pens.%s.width must be positive", e.name)
		}
		if _, err := colorful.Hex(e.pc.Color); err != nil {
			return fmt.Errorf("pens.%s.color %q: %w", e.name, e.pc.Color, err)
		}
	}
	return nil
}

// Pen converts to the drawing pen.
func (pc PenConfig) Pen() plot.Pen {
	return plot.Pen{Width: pc.Width, Color: lipgloss.Color(pc.Color)}
}
