package layout

// applyAspectHeights derives heights from the resolved widths.
//
// When the derived height exceeds a bounded maximum height, the height is
// clamped to that maximum and the width is derived back from it, so the
// ratio still holds.
func (c *Context) applyAspectHeights() {
	for _, i := range c.aspects {
		e := &c.elements[i]
		r := e.aspect.Ratio
		h := e.width / r
		if s := e.policy.Height; s.Kind != SizingPercent {
			if _, hi := s.bounds(); h > hi {
				h = hi
				e.width = h * r
			}
		}
		e.height = h
	}
}

// applyAspectWidths derives widths from the resolved heights.
func (c *Context) applyAspectWidths() {
	for _, i := range c.aspects {
		e := &c.elements[i]
		e.width = e.aspect.Ratio * e.height
	}
}
