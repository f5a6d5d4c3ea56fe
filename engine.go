package layout

import "time"

// Layout runs the layout passes over the current tree and publishes a new
// command snapshot:
//
//  1. size along the x axis
//  2. wrap text to the resolved widths
//  3. derive aspect-ratio heights and propagate content heights to parents
//  4. size along the y axis, then derive aspect-ratio widths
//  5. position elements and emit render commands
//
// Closing a root runs Layout automatically; call it directly after closing
// a parentless floating element or after SetViewport.
func (c *Context) Layout() {
	c.changed.Store(false)
	start := time.Now()

	order := c.rootOrder()
	c.sizeAlongAxis(true, order)
	c.wrapText()
	c.applyAspectHeights()
	c.propagateHeights(order)
	c.sizeAlongAxis(false, order)
	c.applyAspectWidths()

	cmds := c.position(order)
	c.commands.Store(cmds)

	Logger().Debug("layout: pass complete",
		"elements", len(c.elements),
		"roots", len(order),
		"commands", cmds.Len(),
		"elapsed", time.Since(start))
}

// attachTarget returns the element a floating element is positioned
// against, or none.
func (c *Context) attachTarget(i int32) int32 {
	e := &c.elements[i]
	if e.floating == nil {
		return none
	}
	switch e.floating.AttachTo {
	case AttachToParent:
		return e.parent
	case AttachToElementWithID:
		if t, ok := c.ids[e.floating.ParentID]; ok && t != i {
			return t
		}
	case AttachToRoot:
		if e.parent == none {
			return none
		}
		t := e.parent
		for c.elements[t].parent != none {
			t = c.elements[t].parent
		}
		return t
	}
	return none
}

// rootOf returns the root whose traversal reaches element i.
func (c *Context) rootOf(i int32) int32 {
	for {
		e := &c.elements[i]
		if e.parent == none || e.isFloating() {
			return i
		}
		i = e.parent
	}
}

// rootOrder returns the roots so that every floating root comes after the
// roots containing its attach target and, when it clips to its attached
// parent, its clipping ancestor. Flow roots keep their close order.
func (c *Context) rootOrder() []int32 {
	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[int32]uint8, len(c.roots))
	order := make([]int32, 0, len(c.roots))

	var visit func(r int32)
	visit = func(r int32) {
		if state[r] != unvisited {
			return
		}
		state[r] = visiting
		if t := c.attachTarget(r); t != none {
			visit(c.rootOf(t))
		}
		if e := &c.elements[r]; e.isFloating() && e.floating.ClipTo == ClipToAttachedParent && e.clipAncestor != none {
			visit(c.rootOf(e.clipAncestor))
		}
		state[r] = done
		order = append(order, r)
	}

	for _, r := range c.roots {
		if !c.elements[r].isFloating() {
			visit(r)
		}
	}
	for _, r := range c.roots {
		visit(r)
	}
	return order
}

// propagateHeights recomputes the heights of containers bottom up after
// text wrapping and aspect ratios changed the heights of their children.
func (c *Context) propagateHeights(order []int32) {
	type frame struct {
		index   int32
		visited bool
	}
	stack := make([]frame, 0, 32)
	for _, ri := range order {
		stack = append(stack[:0], frame{index: ri})
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			e := &c.elements[top.index]
			if top.visited {
				stack = stack[:len(stack)-1]
				c.fitHeight(e)
				continue
			}
			top.visited = true
			for _, ci := range e.children {
				if ch := &c.elements[ci]; !ch.isText() && len(ch.children) > 0 {
					stack = append(stack, frame{index: ci})
				}
			}
		}
	}
}

// fitHeight refits a container's height to its children.
func (c *Context) fitHeight(e *element) {
	if e.isText() || len(e.children) == 0 || e.policy.Height.Kind == SizingPercent {
		return
	}
	pad := e.policy.Padding.vertical()
	var h float64
	if e.policy.Direction == LeftToRight {
		h = e.height
		for _, ci := range e.children {
			h = max(h, c.elements[ci].height+pad)
		}
	} else {
		h = pad + float64(len(e.children)-1)*e.policy.ChildGap
		for _, ci := range e.children {
			h += c.elements[ci].height
		}
	}
	e.height = e.policy.Height.clamp(h)
}
