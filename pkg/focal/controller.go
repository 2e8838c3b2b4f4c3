package focal

// Controller translates between the three representations of a focal point:
// the normalized fraction owned by the caller, the pixel position of the
// cursor within the measured container, and the integer percentages shown by
// the slider inputs.
//
// The controller never owns the focal point itself. The caller passes the
// authoritative value in for display and receives partial Updates back
// through the change callback; merging (and clamping, if wanted) is the
// caller's job. Committed drags can land outside the container, so emitted
// fractions are intentionally not clamped to [0, 1] here.
//
// All methods must be called from a single goroutine, in event order. That
// matches a Bubble Tea update loop, where every message is delivered
// sequentially.
type Controller struct {
	size     Size
	measured bool

	drag     Drag
	dragging bool

	epoch       int
	tooltipDone bool

	onChange  func(Update)
	setScroll func(bool)
}

// NewController creates a controller. onChange receives partial focal point
// updates on drag completion and slider edits; setScroll is invoked with
// false at drag start and true at drag end so the host can suspend its own
// scrolling for the gesture's duration. Either callback may be nil.
func NewController(onChange func(Update), setScroll func(bool)) *Controller {
	return &Controller{
		onChange:  onChange,
		setScroll: setScroll,
	}
}

// LayoutMeasured records a new container size. Zero dimensions are ignored
// (the surface has not laid out yet), as are repeats of the current size.
// No focal point change is emitted.
func (c *Controller) LayoutMeasured(width, height float64) {
	if width == 0 || height == 0 {
		return
	}
	if c.measured && width == c.size.Width && height == c.size.Height {
		return
	}
	c.size = Size{Width: width, Height: height}
	c.measured = true
}

// Size returns the last measured container size. The second return is false
// before the first successful measurement.
func (c *Controller) Size() (Size, bool) {
	return c.size, c.measured
}

// DragStart begins a gesture at the given container-relative position. The
// cursor snaps to the touch origin and becomes the baseline for subsequent
// move deltas. Host scrolling is suspended until DragEnd.
func (c *Controller) DragStart(x, y float64) {
	if c.setScroll != nil {
		c.setScroll(false)
	}
	c.drag.SetAbsolute(Point{X: x, Y: y})
	c.dragging = true
}

// DragMove tracks the gesture with its cumulative displacement from the
// start position. Purely visual: no focal point change is emitted until the
// gesture ends.
func (c *Controller) DragMove(dx, dy float64) {
	c.drag.Shift(dx, dy)
}

// DragEnd completes a gesture at the given container-relative position. The
// pending translation collapses into the stable cursor position, the final
// position converts to a partial Update (axes with an unmeasured dimension
// are omitted rather than divided by zero), the update is emitted, and the
// display epoch advances so slider widgets resynchronize.
func (c *Controller) DragEnd(x, y float64) {
	if c.setScroll != nil {
		c.setScroll(true)
	}
	c.tooltipDone = true
	c.drag.Collapse()
	c.dragging = false

	var u Update
	if fx, ok := PixelToFraction(x, c.size.Width); ok {
		u.X = &fx
	}
	if fy, ok := PixelToFraction(y, c.size.Height); ok {
		u.Y = &fy
	}
	if c.onChange != nil {
		c.onChange(u)
	}
	c.epoch++
}

// SliderChanged commits a direct percentage edit on one axis. The update is
// emitted immediately and the epoch does not advance: the slider already
// shows the value it just produced. Out-of-range percentages pass through
// untouched; clamping is the owner's contract.
func (c *Controller) SliderChanged(axis Axis, percent int) {
	v := float64(percent) / 100
	var u Update
	if axis == AxisY {
		u.Y = &v
	} else {
		u.X = &v
	}
	if c.onChange != nil {
		c.onChange(u)
	}
}

// CursorPosition returns the pixel position at which to draw the focal
// cursor. During a gesture it tracks the drag; otherwise it derives from the
// authoritative point and the measured size. The second return is false
// before the container has been measured, when no position can be computed.
func (c *Controller) CursorPosition(p FocalPoint) (Point, bool) {
	if c.dragging {
		return c.drag.Position(), true
	}
	if !c.measured {
		return Point{}, false
	}
	return Point{
		X: FractionToPixel(p.X, c.size.Width),
		Y: FractionToPixel(p.Y, c.size.Height),
	}, true
}

// Dragging returns true while a gesture is in progress.
func (c *Controller) Dragging() bool {
	return c.dragging
}

// Epoch returns the display epoch: a counter advanced once per completed
// drag. Widgets that hold their own display state key themselves on the
// epoch so a drag-driven change forces them to reload the authoritative
// value.
func (c *Controller) Epoch() int {
	return c.epoch
}

// TooltipVisible reports whether the transient position tooltip should still
// be shown. It hides permanently after the first completed drag.
func (c *Controller) TooltipVisible() bool {
	return !c.tooltipDone
}
