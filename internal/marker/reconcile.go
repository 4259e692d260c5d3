package marker

import "plotmark/internal/plot"

// rangeChanged keeps the line inside the new range, as close to its real
// position as the range allows. It never touches the real position or
// the peers; each peer follows its own surface.
func (l *Line) rangeChanged(r plot.Range) {
	if !l.movable {
		return
	}
	at := l.Position()
	next := reconcile(at, l.real.On(l.axis), r.Normalize(), l.eps)
	if plot.Equal(next, at, l.eps) {
		return
	}
	l.base.Point1.SetCoords(l.base.Point1.Coords().With(l.axis, next))
	l.base.Point2.SetCoords(l.base.Point2.Coords().With(l.axis, next))
	l.log.Debug().Str("line", l.name).Float64("from", at).Float64("to", next).Msg("reconciled")
	l.surface.Replot(plot.LayerMarkers)
}

// reconcile returns the position a line at linePos should take in r given
// its real position. A line pushed past an edge sits EdgeInset of the span
// inside it; once the range re-admits the real position it returns there.
func reconcile(linePos, realPos float64, r plot.Range, eps float64) float64 {
	inset := r.Size() * EdgeInset
	next := linePos

	clampedMin := false
	switch {
	case next < r.Lower:
		next = r.Lower + inset
		clampedMin = true
	case !plot.Equal(next, realPos, eps):
		if realPos < r.Lower {
			next = r.Lower + inset
			clampedMin = true
		} else {
			next = realPos
		}
	}
	if clampedMin {
		return next
	}

	switch {
	case next > r.Upper:
		next = r.Upper - inset
	case !plot.Equal(next, realPos, eps):
		if realPos < r.Upper {
			next = r.Upper + inset
		} else {
			next = realPos
		}
	}
	return next
}
