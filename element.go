package layout

import (
	"fmt"
	"strings"
)

// Handle refers to an element of the current frame.
// Handles are invalidated by Reset; using a stale handle panics.
type Handle struct {
	ctx   *Context
	gen   uint32
	index int32
}

// NoParent is the parent handle of root elements.
var NoParent = Handle{}

// IsZero reports whether h is NoParent.
func (h Handle) IsZero() bool {
	return h.ctx == nil
}

const none = -1

// element is an arena node. Indices into Context.elements link the tree.
type element struct {
	id       string
	parent   int32
	children []int32

	policy Policy
	// Decoded configs, nil when absent.
	clip     *ClipConfig
	aspect   *AspectRatioConfig
	floating *FloatingConfig
	text     *TextConfig
	border   *BorderConfig

	width, height       float64
	minWidth, minHeight float64
	zIndex              int
	box                 BoundingBox

	// clipAncestor is the nearest clipping ancestor, or none.
	clipAncestor int32

	measured *measuredText
	lines    []wrappedLine

	hovered bool
	closed  bool
}

func (e *element) isText() bool     { return e.text != nil }
func (e *element) isFloating() bool { return e.floating != nil }

func (e *element) clipsX() bool { return e.clip != nil && e.clip.Horizontal }
func (e *element) clipsY() bool { return e.clip != nil && e.clip.Vertical }

// clips reports whether the element clips the x or y axis.
func (e *element) clips(xAxis bool) bool {
	if xAxis {
		return e.clipsX()
	}
	return e.clipsY()
}

func (e *element) size(xAxis bool) float64 {
	if xAxis {
		return e.width
	}
	return e.height
}

func (e *element) setSize(xAxis bool, v float64) {
	if xAxis {
		e.width = v
	} else {
		e.height = v
	}
}

func (e *element) minSize(xAxis bool) float64 {
	if xAxis {
		return e.minWidth
	}
	return e.minHeight
}

// Element is a read-only snapshot of an element's computed state.
type Element struct {
	Handle Handle
	ID     string
	Parent Handle

	Width, Height       float64
	MinWidth, MinHeight float64
	ZIndex              int
	BoundingBox         BoundingBox

	IsText          bool
	IsFloating      bool
	ClipsHorizontal bool
	ClipsVertical   bool

	Hovered  bool
	Children []Handle
	// Lines holds the wrapped lines of a text element.
	Lines []string
}

func (e Element) String() string {
	var b strings.Builder
	b.WriteString("Element[")
	if e.ID != "" {
		fmt.Fprintf(&b, "id=%q, ", e.ID)
	}
	fmt.Fprintf(&b, "box=%v, z=%d, min=%gx%g", e.BoundingBox, e.ZIndex, e.MinWidth, e.MinHeight)
	if e.IsText {
		fmt.Fprintf(&b, ", lines=%d", len(e.Lines))
	}
	if e.IsFloating {
		b.WriteString(", floating")
	}
	if e.Hovered {
		b.WriteString(", hovered")
	}
	b.WriteByte(']')
	return b.String()
}

func (c *Context) handle(i int32) Handle {
	if i == none {
		return NoParent
	}
	return Handle{ctx: c, gen: c.gen, index: i}
}

func (c *Context) snapshot(i int32) Element {
	e := &c.elements[i]
	s := Element{
		Handle:          c.handle(i),
		ID:              e.id,
		Parent:          c.handle(e.parent),
		Width:           e.width,
		Height:          e.height,
		MinWidth:        e.minWidth,
		MinHeight:       e.minHeight,
		ZIndex:          e.zIndex,
		BoundingBox:     e.box,
		IsText:          e.isText(),
		IsFloating:      e.isFloating(),
		ClipsHorizontal: e.clipsX(),
		ClipsVertical:   e.clipsY(),
		Hovered:         e.hovered,
	}
	if len(e.children) > 0 {
		s.Children = make([]Handle, len(e.children))
		for k, ci := range e.children {
			s.Children[k] = c.handle(ci)
		}
	}
	if len(e.lines) > 0 {
		s.Lines = make([]string, len(e.lines))
		for k, l := range e.lines {
			s.Lines[k] = l.text
		}
	}
	return s
}

// Element returns a snapshot of the element h refers to.
// It panics with ErrForeignHandle if h is not from the current frame.
func (c *Context) Element(h Handle) Element {
	return c.snapshot(c.resolve("element", h))
}

// ElementByID returns a snapshot of the element with the given id.
func (c *Context) ElementByID(id string) (Element, bool) {
	i, ok := c.ids[id]
	if !ok {
		return Element{}, false
	}
	return c.snapshot(i), true
}

// Hovered reports whether the pointer was over the element at the last
// SetPointer call. Elements with an id that were hovered in the previous
// frame report true from the moment they are opened.
func (c *Context) Hovered(h Handle) bool {
	return c.elements[c.resolve("hovered", h)].hovered
}
