package layout

import (
	"sync/atomic"

	"github.com/gogpu/layout/text"
)

// Context owns one element tree and every registry the layout passes need.
//
// A frame looks like this:
//
//	ctx.SetPointer(mouse, down)
//	ctx.UpdateScroll(true, wheel, dt)
//	ctx.Reset()
//	root := ctx.Open(layout.NoParent, rootPolicy, "root")
//	// ... children ...
//	ctx.Close(root) // runs Layout
//	cmds := ctx.Commands()
//
// A Context is not safe for concurrent mutation. Commands and Changed may
// be called from other goroutines.
type Context struct {
	opts options

	viewport Vec2
	gen      uint32

	elements []element
	roots    []int32
	texts    []int32
	aspects  []int32
	ids      map[string]int32

	textCache *text.Cache[measureKey, *measuredText]

	scroll map[string]*ScrollState

	pointer      Vec2
	pointerState PointerState
	pointerOver  []pointerHit
	overSet      map[string]struct{}

	commands atomic.Pointer[Commands]
	changed  atomic.Bool
}

// NewContext creates a Context with a viewport of width x height.
func NewContext(width, height float64, opts ...Option) *Context {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c := &Context{
		opts:      o,
		viewport:  Vec2{X: max(width, 0), Y: max(height, 0)},
		gen:       1,
		ids:       make(map[string]int32),
		textCache: newTextCache(),
		scroll:    make(map[string]*ScrollState),
		overSet:   make(map[string]struct{}),
	}
	c.commands.Store(&Commands{})
	c.changed.Store(true)
	return c
}

// Reset drops the element tree and starts a new frame. Scroll state,
// pointer state and the text cache survive. Handles from before the
// Reset become invalid.
func (c *Context) Reset() {
	c.gen++
	c.elements = c.elements[:0]
	c.roots = c.roots[:0]
	c.texts = c.texts[:0]
	c.aspects = c.aspects[:0]
	clear(c.ids)
	c.changed.Store(true)
}

// Viewport returns the layout dimensions.
func (c *Context) Viewport() Vec2 {
	return c.viewport
}

// SetViewport changes the layout dimensions. It takes effect at the next Layout.
func (c *Context) SetViewport(width, height float64) {
	v := Vec2{X: max(width, 0), Y: max(height, 0)}
	if v != c.viewport {
		c.viewport = v
		c.changed.Store(true)
	}
}

// Changed reports whether geometry may differ from the published commands.
// It is set by structural, dimension and scroll changes and cleared at the
// start of Layout. Treat it as a hint.
func (c *Context) Changed() bool {
	return c.changed.Load()
}

// Commands returns the render commands of the last completed Layout.
// The result is immutable and safe to read from any goroutine.
func (c *Context) Commands() *Commands {
	return c.commands.Load()
}

// Len returns the number of elements in the current frame.
func (c *Context) Len() int {
	return len(c.elements)
}
