package focal

// Drag is a translation accumulator for one pointer gesture. The displayed
// position is always base + delta: SetAbsolute snaps the base and discards
// any pending delta, Shift replaces the delta with the gesture's cumulative
// translation, and Collapse folds the delta into the base when the gesture
// completes.
type Drag struct {
	base  Point
	delta Point
}

// SetAbsolute snaps the accumulator to an absolute position, discarding any
// pending translation.
func (d *Drag) SetAbsolute(p Point) {
	d.base = p
	d.delta = Point{}
}

// Shift replaces the pending translation with the cumulative displacement
// from the gesture origin.
func (d *Drag) Shift(dx, dy float64) {
	d.delta = Point{X: dx, Y: dy}
}

// Collapse folds the pending translation into the base position.
func (d *Drag) Collapse() {
	d.base = d.base.Add(d.delta)
	d.delta = Point{}
}

// Position returns the current displayed position (base + pending delta).
func (d *Drag) Position() Point {
	return d.base.Add(d.delta)
}
