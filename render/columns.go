// Package render adapts the world's tile engine and painter contracts to
// real drawing back ends: an ebiten window and a tcell terminal.
package render

import "math"

// visibleColumns returns the half-open tile column range [first, last)
// covered by a view of width viewW scrolled to sx.
func visibleColumns(sx, viewW float64, tileW, mapW int) (first, last int) {
	if tileW <= 0 || mapW <= 0 {
		return 0, 0
	}
	first = int(math.Floor(sx / float64(tileW)))
	last = int(math.Ceil((sx + viewW) / float64(tileW)))
	first = max(first, 0)
	last = min(last, mapW)
	if last < first {
		last = first
	}
	return first, last
}
