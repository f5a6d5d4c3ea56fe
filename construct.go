package layout

// resolve returns the arena index of h or panics with ErrForeignHandle.
func (c *Context) resolve(op string, h Handle) int32 {
	if h.ctx != c || h.gen != c.gen || h.index < 0 || int(h.index) >= len(c.elements) {
		panic(&ConstructionError{Op: op, Err: ErrForeignHandle})
	}
	return h.index
}

// Open starts a new element under parent and returns its handle.
// Pass NoParent to start a root. Every opened element must be closed,
// children before their parents.
//
// Open panics with a *ConstructionError if parent is a text element,
// is already closed, or is not a handle of the current frame.
func (c *Context) Open(parent Handle, policy Policy, id string) Handle {
	pi := int32(none)
	if !parent.IsZero() {
		pi = c.resolve("open", parent)
		p := &c.elements[pi]
		if p.isText() {
			panic(&ConstructionError{Op: "open", ID: id, Err: ErrTextHasChildren})
		}
		if p.closed {
			panic(&ConstructionError{Op: "open", ID: id, Err: ErrParentClosed})
		}
	}

	policy.Configs = sortConfigs(policy.Configs)
	policy.Padding = policy.Padding.clamped()
	policy.ChildGap = max(policy.ChildGap, 0)

	e := element{
		id:           id,
		parent:       pi,
		policy:       policy,
		clipAncestor: none,
	}
	for _, cfg := range policy.Configs {
		switch v := cfg.(type) {
		case ClipConfig:
			if e.clip == nil {
				e.clip = &v
			}
		case AspectRatioConfig:
			if e.aspect == nil && v.Ratio > 0 {
				e.aspect = &v
			}
		case FloatingConfig:
			if e.floating == nil {
				e.floating = &v
			}
		case TextConfig:
			if e.text == nil {
				e.text = &v
			}
		case BorderConfig:
			if e.border == nil {
				e.border = &v
			}
		}
	}

	if pi != none {
		p := &c.elements[pi]
		nearest := p.clipAncestor
		if p.clip != nil {
			nearest = pi
		}
		switch {
		case e.floating == nil:
			e.clipAncestor = nearest
			e.zIndex = p.zIndex
		case e.floating.ClipTo == ClipToAttachedParent:
			e.clipAncestor = nearest
		}
	}
	if e.floating != nil {
		e.zIndex = e.floating.ZIndex
	}
	if id != "" {
		_, e.hovered = c.overSet[id]
	}

	c.elements = append(c.elements, e)
	c.changed.Store(true)
	return c.handle(int32(len(c.elements) - 1))
}

// Close finishes the element: it computes the element's content size from
// its children or text, clamps it to the sizing bounds, and registers it.
// Closing an element twice is a no-op. Closing a root that is not floating
// runs Layout.
//
// Close panics with a *ConstructionError if the element's id is already
// used in this frame or h is not a handle of the current frame.
func (c *Context) Close(h Handle) {
	i := c.resolve("close", h)
	e := &c.elements[i]
	if e.closed {
		return
	}
	if _, dup := c.ids[e.id]; dup && e.id != "" {
		panic(&ConstructionError{Op: "close", ID: e.id, Err: ErrDuplicateID})
	}
	e.closed = true

	if e.isText() {
		c.closeText(e)
	} else {
		c.fitChildren(e)
	}

	for _, xAxis := range [2]bool{true, false} {
		s := e.policy.sizing(xAxis)
		if s.Kind == SizingPercent {
			e.setSize(xAxis, 0)
			continue
		}
		e.setSize(xAxis, s.clamp(e.size(xAxis)))
		if xAxis {
			e.minWidth = s.clamp(e.minWidth)
		} else {
			e.minHeight = s.clamp(e.minHeight)
		}
	}

	e.deriveAspect()

	if e.parent == none || e.isFloating() {
		c.roots = append(c.roots, i)
	}
	if e.isText() {
		c.texts = append(c.texts, i)
	}
	if e.aspect != nil {
		c.aspects = append(c.aspects, i)
	}
	if e.id != "" {
		c.ids[e.id] = i
		if e.clip != nil {
			c.touchScroll(e.id)
		}
	}

	if e.parent != none && !e.isFloating() {
		p := &c.elements[e.parent]
		p.children = append(p.children, i)
	}
	c.changed.Store(true)

	if e.parent == none && !e.isFloating() {
		c.Layout()
	}
}

// With opens an element, calls fn with its handle and closes it, even if
// fn panics.
func (c *Context) With(parent Handle, policy Policy, id string, fn func(Handle)) Handle {
	h := c.Open(parent, policy, id)
	defer c.Close(h)
	if fn != nil {
		fn(h)
	}
	return h
}

// Text opens and closes a text element under parent. The policy's sizing
// is Fit unless width or height are given.
func (c *Context) Text(parent Handle, cfg TextConfig, id string, policy ...Policy) Handle {
	var p Policy
	if len(policy) > 0 {
		p = policy[0]
	}
	p.Configs = append(withoutText(p.Configs), cfg)
	h := c.Open(parent, p, id)
	c.Close(h)
	return h
}

// withoutText returns configs without any TextConfig.
func withoutText(configs []Config) []Config {
	out := make([]Config, 0, len(configs)+1)
	for _, cfg := range configs {
		if _, ok := cfg.(TextConfig); !ok {
			out = append(out, cfg)
		}
	}
	return out
}

// closeText takes the element's natural size from the measured text.
func (c *Context) closeText(e *element) {
	m := c.measure(e.text)
	e.measured = m
	e.width = m.width
	e.height = m.height
	if e.text.LineHeight > 0 {
		e.height = e.text.LineHeight
	}
	e.minWidth = m.width
	if e.text.Wrap == WrapWords {
		e.minWidth = m.minWidth
	}
	e.minHeight = e.height
}

// fitChildren sums the children along the primary axis and takes their
// maximum across it. Clipped axes do not inherit the children's minimums.
func (c *Context) fitChildren(e *element) {
	pad := e.policy.Padding
	gaps := float64(max(len(e.children)-1, 0)) * e.policy.ChildGap
	row := e.policy.Direction == LeftToRight

	var along, across, minAlong, minAcross, padAlong, padAcross float64
	if row {
		padAlong, padAcross = pad.horizontal(), pad.vertical()
	} else {
		padAlong, padAcross = pad.vertical(), pad.horizontal()
	}
	clipAlong, clipAcross := e.clips(row), e.clips(!row)

	along, minAlong = padAlong+gaps, padAlong
	across, minAcross = padAcross, padAcross
	if !clipAlong {
		minAlong += gaps
	}
	for _, ci := range e.children {
		ch := &c.elements[ci]
		along += ch.size(row)
		across = max(across, ch.size(!row)+padAcross)
		if !clipAlong {
			minAlong += ch.minSize(row)
		}
		if !clipAcross {
			minAcross = max(minAcross, ch.minSize(!row)+padAcross)
		}
	}

	if row {
		e.width, e.height, e.minWidth, e.minHeight = along, across, minAlong, minAcross
	} else {
		e.width, e.height, e.minWidth, e.minHeight = across, along, minAcross, minAlong
	}
}

// deriveAspect fills in the missing axis when exactly one is zero.
func (e *element) deriveAspect() {
	if e.aspect == nil {
		return
	}
	r := e.aspect.Ratio
	switch {
	case e.width == 0 && e.height != 0:
		e.width = e.height * r
	case e.width != 0 && e.height == 0:
		e.height = e.width / r
	}
}
