package plot

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type cell struct {
	r      rune
	style  lipgloss.Style
	styled bool
}

// Canvas is a grid of terminal cells addressed in global pixel
// coordinates, i.e. the same space pointer events arrive in.
type Canvas struct {
	OriginX int
	OriginY int
	W       int
	H       int
	Mapper  Mapper

	cells [][]cell
}

func NewCanvas(m Mapper, originX, originY, w, h int) *Canvas {
	cells := make([][]cell, h)
	for y := range cells {
		row := make([]cell, w)
		for x := range row {
			row[x].r = ' '
		}
		cells[y] = row
	}
	return &Canvas{OriginX: originX, OriginY: originY, W: w, H: h, Mapper: m, cells: cells}
}

// Inside reports whether the global cell (x, y) is on the canvas.
func (c *Canvas) Inside(x, y int) bool {
	lx, ly := x-c.OriginX, y-c.OriginY
	return lx >= 0 && ly >= 0 && lx < c.W && ly < c.H
}

// Set writes a styled rune at global cell (x, y). Off-canvas writes are dropped.
func (c *Canvas) Set(x, y int, r rune, st lipgloss.Style) {
	if !c.Inside(x, y) {
		return
	}
	c.cells[y-c.OriginY][x-c.OriginX] = cell{r: r, style: st, styled: true}
}

// At returns the rune at global cell (x, y), or 0 off canvas.
func (c *Canvas) At(x, y int) rune {
	if !c.Inside(x, y) {
		return 0
	}
	return c.cells[y-c.OriginY][x-c.OriginX].r
}

// Text writes s left to right starting at global cell (x, y).
func (c *Canvas) Text(x, y int, s string, st lipgloss.Style) {
	for i, r := range []rune(s) {
		c.Set(x+i, y, r, st)
	}
}

// overlay composites non-empty braille cells onto the canvas.
func (c *Canvas) overlay(b *brailleBuf, st lipgloss.Style) {
	for y := 0; y < b.h && y < c.H; y++ {
		for x := 0; x < b.w && x < c.W; x++ {
			if r := b.rune(x, y); r != 0 {
				c.cells[y][x] = cell{r: r, style: st, styled: true}
			}
		}
	}
}

// Lines renders the canvas rows.
func (c *Canvas) Lines() []string {
	out := make([]string, c.H)
	var sb strings.Builder
	for y, row := range c.cells {
		sb.Reset()
		for _, cl := range row {
			if cl.styled {
				sb.WriteString(cl.style.Render(string(cl.r)))
			} else {
				sb.WriteRune(cl.r)
			}
		}
		out[y] = sb.String()
	}
	return out
}

// Runes returns the unstyled rows, handy for assertions.
func (c *Canvas) Runes() []string {
	out := make([]string, c.H)
	for y, row := range c.cells {
		rs := make([]rune, len(row))
		for x, cl := range row {
			rs[x] = cl.r
		}
		out[y] = string(rs)
	}
	return out
}

// clipSegment clips the segment to [0,w)x[0,h) (Liang-Barsky). ok is false
// when nothing of it is visible.
func clipSegment(x0, y0, x1, y1, w, h float64) (ax, ay, bx, by float64, ok bool) {
	t0, t1 := 0.0, 1.0
	dx, dy := x1-x0, y1-y0
	edges := [4][2]float64{
		{-dx, x0},
		{dx, w - 1 - x0},
		{-dy, y0},
		{dy, h - 1 - y0},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return 0, 0, 0, 0, false
			}
			if t > t0 {
				t0 = t
			}
		} else {
			if t < t0 {
				return 0, 0, 0, 0, false
			}
			if t < t1 {
				t1 = t
			}
		}
	}
	return x0 + t0*dx, y0 + t0*dy, x0 + t1*dx, y0 + t1*dy, true
}
