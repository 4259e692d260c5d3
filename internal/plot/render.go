package plot

import (
	"math"
	"strings"
)

// microXY maps a coordinate onto the panel's braille dot grid.
func (s *Surface) microXY(p Point) (float64, float64) {
	rx, ry := s.ranges[AxisX], s.ranges[AxisY]
	nx := (p.X - rx.Lower) / (rx.Upper - rx.Lower)
	ny := (p.Y - ry.Lower) / (ry.Upper - ry.Lower)
	return nx * float64(s.w*2-1), (1 - ny) * float64(s.h*4-1)
}

func (s *Surface) renderGraphs() []*brailleBuf {
	if s.cache != nil && !s.dirty[LayerMain] && s.cache.w == s.w && s.cache.h == s.h {
		return s.cache.layers
	}
	wMic, hMic := float64(s.w*2), float64(s.h*4)
	layers := make([]*brailleBuf, 0, len(s.graphs))
	for _, g := range s.graphs {
		br := newBrailleBuf(s.w, s.h)
		for i, p := range g.Points {
			x1, y1 := s.microXY(p)
			if len(g.Points) == 1 {
				br.setDot(int(math.Round(x1)), int(math.Round(y1)))
				break
			}
			if i == 0 {
				continue
			}
			x0, y0 := s.microXY(g.Points[i-1])
			ax, ay, bx, by, ok := clipSegment(x0, y0, x1, y1, wMic, hMic)
			if !ok {
				continue
			}
			br.line(int(math.Round(ax)), int(math.Round(ay)), int(math.Round(bx)), int(math.Round(by)))
		}
		layers = append(layers, br)
	}
	s.cache = &brailleCache{w: s.w, h: s.h, layers: layers}
	return layers
}

// Canvas draws both layers and clears the pending redraw requests.
func (s *Surface) Canvas() *Canvas {
	c := NewCanvas(s, s.x, s.y, s.w, s.h)
	for i, br := range s.renderGraphs() {
		c.overlay(br, s.graphs[i].Pen.Style())
	}
	for _, it := range s.items {
		if it.Visible() {
			it.Draw(c)
		}
	}
	s.dirty[LayerMain] = false
	s.dirty[LayerMarkers] = false
	return c
}

// Render returns the panel as newline separated rows.
func (s *Surface) Render() string {
	return strings.Join(s.Canvas().Lines(), "\n")
}
