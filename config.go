package layout

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/gogpu/layout/text"
)

// Config is an element configuration: one of ClipConfig, AspectRatioConfig,
// FloatingConfig, TextConfig or BorderConfig.
//
// Configurations run in ascending Priority order when an element is
// positioned, so clipping opens before text is drawn and borders are drawn
// over the element's content.
type Config interface {
	Priority() int
	config()
}

// Configuration priorities.
const (
	PriorityClip        = 0
	PriorityAspectRatio = 10
	PriorityFloating    = 20
	PriorityText        = 30
	PriorityBorder      = 100
)

// ClipConfig clips the element's children per axis. A clipping element
// with an id is also a scroll container.
type ClipConfig struct {
	Horizontal bool
	Vertical   bool

	// ChildOffset shifts all children, on top of any scroll position.
	ChildOffset Vec2
}

func (ClipConfig) Priority() int { return PriorityClip }
func (ClipConfig) config()       {}

// AspectRatioConfig keeps width/height == Ratio. Ratios <= 0 are ignored.
type AspectRatioConfig struct {
	Ratio float64
}

func (AspectRatioConfig) Priority() int { return PriorityAspectRatio }
func (AspectRatioConfig) config()       {}

// AttachTarget selects what a floating element is positioned against.
type AttachTarget uint8

const (
	// AttachToNone positions the element relative to the viewport origin.
	AttachToNone AttachTarget = iota
	// AttachToParent positions the element against its parent.
	AttachToParent
	// AttachToElementWithID positions the element against FloatingConfig.ParentID.
	AttachToElementWithID
	// AttachToRoot positions the element against the root of its parent chain.
	AttachToRoot
)

var attachTargetNames = [...]string{
	AttachToNone:          "None",
	AttachToParent:        "Parent",
	AttachToElementWithID: "ElementWithID",
	AttachToRoot:          "Root",
}

func (a AttachTarget) String() string {
	if int(a) < len(attachTargetNames) {
		return attachTargetNames[a]
	}
	return fmt.Sprintf("AttachTarget(%d)", a)
}

// AttachPoint is one of nine anchor points on a box.
type AttachPoint uint8

const (
	LeftTop AttachPoint = iota
	LeftCenter
	LeftBottom
	CenterTop
	CenterCenter
	CenterBottom
	RightTop
	RightCenter
	RightBottom
)

// fractions returns the anchor's position inside a box as fractions of its size.
func (a AttachPoint) fractions() (fx, fy float64) {
	fx = float64(a/3) / 2
	fy = float64(a%3) / 2
	return fx, fy
}

// AttachPoints pairs an anchor on the floating element with one on its target.
type AttachPoints struct {
	Element AttachPoint
	Parent  AttachPoint
}

// FloatingClip selects the clip region applied to a floating element.
type FloatingClip uint8

const (
	// ClipToNone draws the floating element unclipped.
	ClipToNone FloatingClip = iota
	// ClipToAttachedParent clips to the nearest clipping ancestor of the parent.
	ClipToAttachedParent
)

// PointerCaptureMode controls whether pointer hits pass through a floating element.
type PointerCaptureMode uint8

const (
	// CapturePointer stops hit testing at this element.
	CapturePointer PointerCaptureMode = iota
	// PassthroughPointer lets elements underneath be hit too.
	PassthroughPointer
)

// FloatingConfig removes the element from its parent's flow and places it
// against an attach target.
type FloatingConfig struct {
	Offset Vec2
	// Expand grows the bounding box by Expand.X on the left and right and
	// by Expand.Y on the top and bottom.
	Expand Vec2
	ZIndex int

	AttachTo     AttachTarget
	ParentID     string
	AttachPoints AttachPoints

	ClipTo         FloatingClip
	PointerCapture PointerCaptureMode
}

func (FloatingConfig) Priority() int { return PriorityFloating }
func (FloatingConfig) config()       {}

// WrapMode controls where text lines break.
type WrapMode uint8

const (
	// WrapWords breaks at spaces and newlines when a line is too long.
	WrapWords WrapMode = iota
	// WrapNewlines breaks only at newline characters.
	WrapNewlines
	// WrapNone never breaks.
	WrapNone
)

var wrapModeNames = [...]string{
	WrapWords:    "Words",
	WrapNewlines: "Newlines",
	WrapNone:     "None",
}

func (w WrapMode) String() string {
	if int(w) < len(wrapModeNames) {
		return wrapModeNames[w]
	}
	return fmt.Sprintf("WrapMode(%d)", w)
}

// TextAlign aligns each wrapped line inside the element.
type TextAlign uint8

const (
	TextAlignLeft TextAlign = iota
	TextAlignCenter
	TextAlignRight
)

// TextConfig makes the element a text element. Text elements cannot have children.
type TextConfig struct {
	Text     string
	Font     text.FontID
	FontSize float64

	// LetterSpacing is added after every word.
	LetterSpacing float64
	// LineHeight is the distance between lines; 0 uses the measured height.
	LineHeight float64

	Wrap  WrapMode
	Align TextAlign
	Color Color
}

func (TextConfig) Priority() int { return PriorityText }
func (TextConfig) config()       {}

// BorderWidth holds per-side border widths.
// BetweenChildren draws dividers in the gaps between children.
type BorderWidth struct {
	Left, Right, Top, Bottom float64
	BetweenChildren          float64
}

// BorderConfig draws a border after the element's children.
type BorderConfig struct {
	Color Color
	Width BorderWidth
}

func (BorderConfig) Priority() int { return PriorityBorder }
func (BorderConfig) config()       {}

// sortConfigs returns a copy of configs in ascending priority.
// Equal priorities keep their declaration order.
func sortConfigs(configs []Config) []Config {
	if len(configs) == 0 {
		return nil
	}
	sorted := slices.Clone(configs)
	slices.SortStableFunc(sorted, func(a, b Config) int {
		return cmp.Compare(a.Priority(), b.Priority())
	})
	return sorted
}
