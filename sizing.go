package layout

import (
	"fmt"
	"math"
)

// SizingKind classifies how an element is sized along one axis.
type SizingKind uint8

const (
	// SizingFit sizes the element to its content, within [Min, Max].
	SizingFit SizingKind = iota
	// SizingFixed pins the element to exactly Min (== Max).
	SizingFixed
	// SizingGrow claims leftover space in the parent, within [Min, Max].
	SizingGrow
	// SizingPercent sizes the element as a fraction of the parent.
	SizingPercent
)

var sizingKindNames = [...]string{
	SizingFit:     "Fit",
	SizingFixed:   "Fixed",
	SizingGrow:    "Grow",
	SizingPercent: "Percent",
}

func (k SizingKind) String() string {
	if int(k) < len(sizingKindNames) {
		return sizingKindNames[k]
	}
	return fmt.Sprintf("SizingKind(%d)", k)
}

// Sizing is the sizing policy of one axis.
//
// The zero Sizing is Fit with no bounds. Build values with Fit, Fixed,
// Grow and Percent; out-of-range inputs are clamped silently.
type Sizing struct {
	Kind SizingKind

	// Min and Max bound Fit and Grow sizing. A zero Max means unbounded.
	Min, Max float64

	// Percent is the parent fraction for SizingPercent, in [0, 1].
	Percent float64
}

// Fit sizes to content within [min, max]. max == 0 means unbounded.
func Fit(min, max float64) Sizing {
	return Sizing{Kind: SizingFit, Min: min, Max: max}
}

// Fixed pins the axis to v.
func Fixed(v float64) Sizing {
	return Sizing{Kind: SizingFixed, Min: v, Max: v}
}

// Grow claims leftover space within [min, max]. max == 0 means unbounded.
func Grow(min, max float64) Sizing {
	return Sizing{Kind: SizingGrow, Min: min, Max: max}
}

// Percent sizes the axis to p of the parent's inner size. p is clamped to [0, 1].
func Percent(p float64) Sizing {
	return Sizing{Kind: SizingPercent, Percent: p}
}

// bounds returns the effective [min, max] for the axis.
func (s Sizing) bounds() (lo, hi float64) {
	lo = max(s.Min, 0)
	switch s.Kind {
	case SizingFixed:
		return lo, lo
	case SizingPercent:
		return 0, math.Inf(1)
	}
	hi = max(s.Max, 0)
	if hi == 0 {
		hi = math.Inf(1)
	}
	return lo, max(hi, lo)
}

// percent returns the clamped parent fraction.
func (s Sizing) percent() float64 {
	return min(max(s.Percent, 0), 1)
}

// clamp clamps v into the axis bounds.
func (s Sizing) clamp(v float64) float64 {
	lo, hi := s.bounds()
	return min(max(v, lo), hi)
}

func (s Sizing) String() string {
	switch s.Kind {
	case SizingFixed:
		return fmt.Sprintf("Fixed(%g)", max(s.Min, 0))
	case SizingPercent:
		return fmt.Sprintf("Percent(%g)", s.percent())
	}
	lo, hi := s.bounds()
	if math.IsInf(hi, 1) {
		return fmt.Sprintf("%s(%g)", s.Kind, lo)
	}
	return fmt.Sprintf("%s(%g, %g)", s.Kind, lo, hi)
}

// Direction is the primary axis children are laid out along.
type Direction uint8

const (
	// LeftToRight lays children out in a row.
	LeftToRight Direction = iota
	// TopToBottom lays children out in a column.
	TopToBottom
)

func (d Direction) String() string {
	if d == TopToBottom {
		return "TopToBottom"
	}
	return "LeftToRight"
}

// AlignX positions children horizontally inside the padding box.
type AlignX uint8

const (
	AlignLeft AlignX = iota
	AlignCenterX
	AlignRight
)

// AlignY positions children vertically inside the padding box.
type AlignY uint8

const (
	AlignTop AlignY = iota
	AlignCenterY
	AlignBottom
)

// alignOffset returns the share of extra space placed before the children.
func alignOffset(extra float64, a uint8) float64 {
	switch a {
	case 1:
		return extra / 2
	case 2:
		return extra
	}
	return 0
}

// Policy is the layout policy of one element.
// The zero Policy fits its content with no padding and no gap.
type Policy struct {
	Width, Height Sizing

	Padding  Padding
	ChildGap float64

	ChildAlignX AlignX
	ChildAlignY AlignY
	Direction   Direction

	// Background requests a rectangle command behind the element.
	Background      bool
	BackgroundColor Color
	CornerRadius    float64

	// Configs are the element configurations. Open sorts a copy by priority.
	Configs []Config
}

// sizing returns the sizing of the x or y axis.
func (p *Policy) sizing(xAxis bool) Sizing {
	if xAxis {
		return p.Width
	}
	return p.Height
}

// alongAxis reports whether the x or y axis is the primary axis.
func (p *Policy) alongAxis(xAxis bool) bool {
	return xAxis == (p.Direction == LeftToRight)
}
