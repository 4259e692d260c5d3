package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/rs/zerolog"

	"plotmark/internal/config"
	"plotmark/internal/marker"
	"plotmark/internal/plot"
	"plotmark/internal/series"
)

// panel is one surface in the stack with the markers living on it.
type panel struct {
	surface *plot.Surface
	lines   []*marker.Line
	spans   []*marker.Span
}

func (p *panel) line(name string) *marker.Line {
	for _, l := range p.lines {
		if l.Name() == name {
			return l
		}
	}
	return nil
}

// chart owns the panel stack and every marker line on it. Copies of the
// Model share one chart.
type chart struct {
	stack  *plot.Stack
	panels []*panel
	lines  []*marker.Line

	sel  *marker.Line
	prev *marker.Line

	lastMoved *marker.Line
	added     int

	cfg  *config.Config
	pens marker.Pens
	log  zerolog.Logger
}

// newChart stacks one panel per series, up to cfg.Panels; extra series
// share panels round robin.
func newChart(cfg *config.Config, log zerolog.Logger, d series.Data) *chart {
	n := min(max(len(d.Series), 1), cfg.Panels)
	c := &chart{
		stack: plot.NewStack(),
		cfg:   cfg,
		pens:  markerPens(cfg.Pens),
		log:   log,
	}
	for i := 0; i < n; i++ {
		s := plot.NewSurface(
			plot.WithEpsilon(cfg.Epsilon),
			plot.WithInteractions(cfg.Interactions.SurfaceInteractions()),
			plot.WithLogger(log.With().Int("panel", i).Logger()),
		)
		c.stack.Add(s)
		c.panels = append(c.panels, &panel{surface: s})
	}
	for i, s := range d.Series {
		p := c.panels[i%n]
		p.surface.SetGraphs(append(p.surface.Graphs(), plot.Graph{
			Name:   s.Name,
			Points: toPoints(s.Points),
			Pen:    plot.Pen{Width: 1, Color: seriesColor(i)},
		}))
	}
	c.applyView()
	c.placeLines()
	return c
}

func markerPens(p config.Pens) marker.Pens {
	return marker.Pens{
		marker.StateIdle:     p.Idle.Pen(),
		marker.StateHovered:  p.Hovered.Pen(),
		marker.StateDragging: p.Dragging.Pen(),
	}
}

func toPoints(pts [][2]float64) []plot.Point {
	out := make([]plot.Point, len(pts))
	for i, p := range pts {
		out[i] = plot.Point{X: p[0], Y: p[1]}
	}
	return out
}

// applyView fits panels with data, then applies configured ranges unless
// the config asks to always fit.
func (c *chart) applyView() {
	xr, hasX := c.cfg.View.XRange()
	yr, hasY := c.cfg.View.YRange()
	for _, p := range c.panels {
		hasData := len(p.surface.Graphs()) > 0
		if hasData {
			p.surface.Rescale()
			if c.cfg.View.Fit {
				continue
			}
		}
		if hasX {
			p.surface.SetRange(plot.AxisX, xr)
		}
		if hasY {
			p.surface.SetRange(plot.AxisY, yr)
		}
	}
}

// defaultCursors are two x cursors at a third and two thirds of r,
// measured against each other.
func defaultCursors(r plot.Range) ([]config.LineConfig, [][2]string) {
	return []config.LineConfig{
		{Name: "A", Axis: "x", At: r.Lower + r.Size()/3},
		{Name: "B", Axis: "x", At: r.Lower + 2*r.Size()/3},
	}, [][2]string{{"A", "B"}}
}

// placeLines creates the configured lines on their panels. Copies of one
// line across panels, and lines sharing a group, are linked.
func (c *chart) placeLines() {
	lcs, spans := c.cfg.Lines, c.cfg.Spans
	if len(lcs) == 0 {
		lcs, spans = defaultCursors(c.panels[0].surface.Range(plot.AxisX))
	}

	groups := map[string][]*marker.Line{}
	var order []string
	for _, lc := range lcs {
		key := lc.Group
		if key == "" {
			key = "line:" + lc.Name
		}
		for i, p := range c.panels {
			if !lc.OnPanel(i) {
				continue
			}
			l := c.newLine(p, lc.Name, lc.AxisValue(), lc.At)
			l.SetMovable(lc.IsMovable())
			if lc.Offset != 0 {
				l.AddOffset(lc.Offset)
			}
			if _, ok := groups[key]; !ok {
				order = append(order, key)
			}
			groups[key] = append(groups[key], l)
		}
	}
	for _, k := range order {
		marker.Link(groups[k]...)
	}

	for _, p := range c.panels {
		for _, pair := range spans {
			a, b := p.line(pair[0]), p.line(pair[1])
			if a == nil || b == nil {
				continue
			}
			sp, err := marker.NewSpan(a, b, spanStyle)
			if err != nil {
				c.log.Warn().Err(err).Msg("span skipped")
				continue
			}
			p.spans = append(p.spans, sp)
			p.surface.AddItem(sp)
		}
	}
}

func (c *chart) newLine(p *panel, name string, axis plot.Axis, at float64) *marker.Line {
	l := marker.NewLine(p.surface, axis, at,
		marker.WithName(name),
		marker.WithEpsilon(c.cfg.Epsilon),
		marker.WithPens(c.pens),
		marker.WithLogger(c.log.With().Str("cmp", "marker").Logger()),
	)
	l.OnPositionChanged(func(moved *marker.Line) { c.lastMoved = moved })
	p.lines = append(p.lines, l)
	c.lines = append(c.lines, l)
	return l
}

// addLine puts a new line at the centre of the view. x lines go on every
// panel and move together; y lines only on the selected line's panel since
// each panel has its own y scale.
func (c *chart) addLine(axis plot.Axis) *marker.Line {
	c.added++
	name := fmt.Sprintf("%s%d", strings.ToUpper(axis.String()), c.added)

	targets := c.panels
	if axis == plot.AxisY {
		targets = []*panel{c.selectedPanel()}
	}
	at := targets[0].surface.Range(axis).Center()
	var copies []*marker.Line
	for _, p := range targets {
		copies = append(copies, c.newLine(p, name, axis, at))
	}
	marker.Link(copies...)
	c.selectLine(copies[0])
	return copies[0]
}

func (c *chart) panelOf(l *marker.Line) int {
	for i, p := range c.panels {
		if slices.Contains(p.lines, l) {
			return i
		}
	}
	return -1
}

func (c *chart) selectedPanel() *panel {
	if i := c.panelOf(c.sel); i >= 0 {
		return c.panels[i]
	}
	return c.panels[0]
}

// selectLine makes l the only selected line. nil clears the selection.
func (c *chart) selectLine(l *marker.Line) {
	if l == c.sel {
		return
	}
	if c.sel != nil {
		c.prev = c.sel
	}
	c.sel = l
	for _, o := range c.lines {
		want := o == l
		if o.Selected() != want {
			o.SetSelected(want)
			o.Surface().Replot(plot.LayerMarkers)
		}
	}
}

// cycle selects the line after the current one.
func (c *chart) cycle() *marker.Line {
	if len(c.lines) == 0 {
		return nil
	}
	i := slices.Index(c.lines, c.sel)
	c.selectLine(c.lines[(i+1)%len(c.lines)])
	return c.sel
}

// pressed adopts the selection the surface made on a press.
func (c *chart) pressed(s *plot.Surface) {
	if s == nil {
		return
	}
	for _, l := range c.lines {
		if l.Surface() == marker.Surface(s) && l.Selected() {
			c.selectLine(l)
			return
		}
	}
	if c.sel != nil && c.sel.Surface() == marker.Surface(s) && !c.sel.Selected() {
		c.prev, c.sel = c.sel, nil
	}
}

// nudge shifts the selected line (and its peers) by dir steps.
func (c *chart) nudge(dir int) error {
	switch {
	case c.sel == nil:
		return fmt.Errorf("no line selected")
	case !c.sel.Movable():
		return fmt.Errorf("%s is locked", c.sel.Name())
	}
	c.sel.AddOffset(dir * c.cfg.Step)
	c.sel.NotifyMoved()
	return nil
}

func (c *chart) toggleMovable() error {
	if c.sel == nil {
		return fmt.Errorf("no line selected")
	}
	c.sel.SetMovable(!c.sel.Movable())
	return nil
}

func (c *chart) toggleVisible() error {
	if c.sel == nil {
		return fmt.Errorf("no line selected")
	}
	c.sel.SetVisible(!c.sel.Visible())
	c.sel.Surface().Replot(plot.LayerMarkers)
	return nil
}

// syncWithPrevious merges the group of the selected line with the group of
// the line selected before it, so copies on other panels follow too. It
// returns the size of the merged group.
func (c *chart) syncWithPrevious() (int, error) {
	switch {
	case c.sel == nil || c.prev == nil:
		return 0, fmt.Errorf("select two lines first")
	case c.sel == c.prev:
		return 0, fmt.Errorf("cannot sync a line with itself")
	case c.sel.Axis() != c.prev.Axis():
		return 0, fmt.Errorf("%s and %s move on different axes", c.prev.Name(), c.sel.Name())
	}
	group := append([]*marker.Line{c.prev}, c.prev.SyncLines()...)
	group = append(group, c.sel)
	group = append(group, c.sel.SyncLines()...)
	marker.Link(group...)
	return len(c.sel.SyncLines()) + 1, nil
}

// toggleInteraction flips f on every panel and reports the new state.
func (c *chart) toggleInteraction(f plot.Interaction) bool {
	on := !c.panels[0].surface.Interactions().Has(f)
	for _, p := range c.panels {
		i := p.surface.Interactions()
		if on {
			i |= f
		} else {
			i &^= f
		}
		p.surface.SetInteractions(i)
	}
	return on
}

// pan moves every panel's x range together and each panel's y range.
func (c *chart) pan(a plot.Axis, fraction float64) {
	for _, p := range c.panels {
		p.surface.Pan(a, fraction)
	}
}

func (c *chart) zoom(factor float64) {
	for _, p := range c.panels {
		p.surface.Zoom(factor, p.surface.Center())
	}
}

func (c *chart) rescale() {
	for _, p := range c.panels {
		p.surface.Rescale()
	}
}

func (c *chart) close() {
	for _, l := range c.lines {
		l.Close()
	}
}
