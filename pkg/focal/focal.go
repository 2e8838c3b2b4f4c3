// Package focal implements the focal-point coordinate model: a normalized
// point in [0,1]x[0,1] marking the visually important region of a media item,
// and the conversions between its three on-screen representations (fraction,
// container pixel position, slider percentage).
package focal

import "math"

// FocalPoint is a fractional position within a media bounding box.
// Both axes are nominally in [0, 1]; the owning store is responsible for
// clamping (see Controller.DragEnd).
type FocalPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Clamp returns the point with both axes limited to [0, 1].
func (p FocalPoint) Clamp() FocalPoint {
	return FocalPoint{X: clamp01(p.X), Y: clamp01(p.Y)}
}

// Update carries the axes changed by a single commit. A nil field means the
// axis is absent from the update and the owner's current value stands.
type Update struct {
	X *float64
	Y *float64
}

// IsZero returns true if the update carries no axes.
func (u Update) IsZero() bool {
	return u.X == nil && u.Y == nil
}

// Apply merges the update onto p and returns the result.
func (u Update) Apply(p FocalPoint) FocalPoint {
	if u.X != nil {
		p.X = *u.X
	}
	if u.Y != nil {
		p.Y = *u.Y
	}
	return p
}

// Size is a container extent in display cells.
type Size struct {
	Width  float64
	Height float64
}

// Point is a pixel position relative to the container origin.
type Point struct {
	X float64
	Y float64
}

// Add returns the component-wise sum of two points.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Axis identifies one coordinate axis of a focal point.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// String returns the lowercase axis name.
func (a Axis) String() string {
	if a == AxisY {
		return "y"
	}
	return "x"
}

// PixelToFraction converts a container pixel coordinate to a fraction of the
// given dimension. The second return is false when the dimension is unknown
// or zero, in which case the axis must be omitted from any emitted update.
func PixelToFraction(pixel, dim float64) (float64, bool) {
	if dim <= 0 {
		return 0, false
	}
	return pixel / dim, true
}

// FractionToPixel converts a fraction back to a container pixel coordinate.
func FractionToPixel(fraction, dim float64) float64 {
	return fraction * dim
}

// FractionToPercent converts a fraction to the integer percentage shown by
// the slider inputs, rounding half up and clamping to [0, 100].
func FractionToPercent(fraction float64) int {
	pct := int(math.Round(fraction * 100))
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
