// Package marker implements movable, axis-constrained marker lines for a
// plot surface: dragging with range clamping, hover styling, reconciliation
// after the view rescales, and rigid synchronisation between peer lines.
package marker

import "plotmark/internal/plot"

// Surface is what a Line needs from the panel it lives on.
type Surface interface {
	plot.Mapper
	Range(a plot.Axis) plot.Range
	Replot(layer string)
	Interactions() plot.Interaction
	SetInteractions(i plot.Interaction)
	OnRangeChanged(a plot.Axis, fn func(plot.Range)) func()
	AddItem(it plot.Item)
	RemoveItem(it plot.Item)
}

// Indicator is a companion whose position depends on a line, such as a
// span label between two cursors.
type Indicator interface {
	UpdatePosition()
}

// interactionLease holds the surface's interaction flags while a drag is
// in progress. Release restores them exactly once.
type interactionLease struct {
	surface Surface
	saved   plot.Interaction
	done    bool
}

func acquireInteractions(s Surface) *interactionLease {
	l := &interactionLease{surface: s, saved: s.Interactions()}
	s.SetInteractions(plot.InteractNone)
	return l
}

func (l *interactionLease) Release() {
	if l == nil || l.done {
		return
	}
	l.done = true
	l.surface.SetInteractions(l.saved)
}
