package layout

import "fmt"

// Vec2 is a 2D vector or point in layout units.
type Vec2 struct {
	X, Y float64
}

// Add returns v+w.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns v-w.
func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{X: v.X - w.X, Y: v.Y - w.Y}
}

// BoundingBox is an axis-aligned rectangle with its origin at the top left.
type BoundingBox struct {
	X, Y, Width, Height float64
}

// Contains reports whether p lies inside b. Edges are inclusive.
func (b BoundingBox) Contains(p Vec2) bool {
	return p.X >= b.X && p.X <= b.X+b.Width &&
		p.Y >= b.Y && p.Y <= b.Y+b.Height
}

// Max returns the bottom right corner.
func (b BoundingBox) Max() Vec2 {
	return Vec2{X: b.X + b.Width, Y: b.Y + b.Height}
}

func (b BoundingBox) String() string {
	return fmt.Sprintf("(%g,%g %gx%g)", b.X, b.Y, b.Width, b.Height)
}

// Padding is the space between an element's edge and its children.
type Padding struct {
	Left, Right, Top, Bottom float64
}

// PadAll returns the same padding on every side.
func PadAll(v float64) Padding {
	return Padding{Left: v, Right: v, Top: v, Bottom: v}
}

// PadXY returns padding x on the left and right and y on the top and bottom.
func PadXY(x, y float64) Padding {
	return Padding{Left: x, Right: x, Top: y, Bottom: y}
}

// clamped returns p with negative sides raised to 0.
func (p Padding) clamped() Padding {
	return Padding{
		Left:   max(p.Left, 0),
		Right:  max(p.Right, 0),
		Top:    max(p.Top, 0),
		Bottom: max(p.Bottom, 0),
	}
}

func (p Padding) horizontal() float64 { return p.Left + p.Right }
func (p Padding) vertical() float64   { return p.Top + p.Bottom }

// along returns the padding total along the x or y axis.
func (p Padding) along(xAxis bool) float64 {
	if xAxis {
		return p.horizontal()
	}
	return p.vertical()
}
