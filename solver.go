package layout

import "math"

// tolerance is the convergence threshold of the sizing loops.
const tolerance = 0.01

func approxEqual(a, b float64) bool {
	d := a - b
	return d < tolerance && d > -tolerance
}

// sizeAlongAxis resolves the sizes of every element along one axis.
// Roots are sized first, then each parent distributes its space among its
// children, top down.
func (c *Context) sizeAlongAxis(xAxis bool, order []int32) {
	stack := make([]int32, 0, 32)
	var resizable []int32
	for _, ri := range order {
		c.sizeRoot(ri, xAxis)

		stack = append(stack[:0], ri)
		for len(stack) > 0 {
			pi := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			resizable = c.sizeChildren(pi, xAxis, resizable[:0])
			for _, ci := range c.elements[pi].children {
				if ch := &c.elements[ci]; !ch.isText() && len(ch.children) > 0 {
					stack = append(stack, ci)
				}
			}
		}
	}
}

// sizeRoot resolves grow and percent sizing of a root against its attach
// target, or the viewport, then clamps it.
func (c *Context) sizeRoot(ri int32, xAxis bool) {
	r := &c.elements[ri]
	s := r.policy.sizing(xAxis)

	ref := c.viewport.X
	if !xAxis {
		ref = c.viewport.Y
	}
	if r.isFloating() {
		if t := c.attachTarget(ri); t != none {
			ref = c.elements[t].size(xAxis)
		}
	}

	switch s.Kind {
	case SizingGrow:
		r.setSize(xAxis, s.clamp(ref))
	case SizingPercent:
		r.setSize(xAxis, ref*s.percent())
		r.deriveAspect()
	default:
		r.setSize(xAxis, s.clamp(r.size(xAxis)))
	}
}

// sizeChildren distributes the inner space of parent pi among its children.
// scratch is reused for the resizable set and returned for the next call.
func (c *Context) sizeChildren(pi int32, xAxis bool, scratch []int32) []int32 {
	p := &c.elements[pi]
	parentSize := p.size(xAxis)
	padding := p.policy.Padding.along(xAxis)
	gap := p.policy.ChildGap
	along := p.policy.alongAxis(xAxis)
	clipping := p.clips(xAxis)

	resizable := scratch
	inner, paddingAndGaps := 0.0, padding
	hasGrow := false

	for k, ci := range p.children {
		ch := &c.elements[ci]
		s := ch.policy.sizing(xAxis)
		if s.Kind != SizingPercent && s.Kind != SizingFixed && (!ch.isText() || ch.text.Wrap == WrapWords) {
			resizable = append(resizable, ci)
		}
		if !along {
			inner = max(inner, ch.size(xAxis))
			continue
		}
		if s.Kind != SizingPercent {
			inner += ch.size(xAxis)
		}
		if s.Kind == SizingGrow {
			hasGrow = true
		}
		if k > 0 {
			inner += gap
			paddingAndGaps += gap
		}
	}

	for _, ci := range p.children {
		ch := &c.elements[ci]
		s := ch.policy.sizing(xAxis)
		if s.Kind != SizingPercent {
			continue
		}
		size := max(parentSize-paddingAndGaps, 0) * s.percent()
		if along {
			inner += size
		}
		ch.setSize(xAxis, size)
		ch.deriveAspect()
	}

	if !along {
		available := max(parentSize-padding, 0)
		if clipping {
			available = max(available, inner)
		}
		for _, ci := range resizable {
			ch := &c.elements[ci]
			s := ch.policy.sizing(xAxis)
			size := ch.size(xAxis)
			if s.Kind == SizingGrow {
				_, hi := s.bounds()
				size = min(available, hi)
			}
			ch.setSize(xAxis, max(ch.minSize(xAxis), min(size, available)))
		}
		return resizable
	}

	dist := parentSize - padding - inner
	switch {
	case dist < 0 && !clipping:
		c.shrink(resizable, xAxis, dist)
	case dist > 0 && hasGrow:
		growing := resizable[:0]
		for _, ci := range resizable {
			if c.elements[ci].policy.sizing(xAxis).Kind == SizingGrow {
				growing = append(growing, ci)
			}
		}
		resizable = growing
		c.grow(resizable, xAxis, dist)
	}
	return resizable
}

// shrink removes the overflow dist (< 0) from the largest children first.
// Children tied for the largest size shrink together toward the second
// largest, so equal siblings stay equal. A child reaching its minimum is
// pinned there and leaves the set.
func (c *Context) shrink(set []int32, xAxis bool, dist float64) {
	for dist < -tolerance && len(set) > 0 {
		largest := 0.0
		for _, ci := range set {
			largest = max(largest, c.elements[ci].size(xAxis))
		}
		step := dist / float64(len(set))
		second, hasSecond := 0.0, false
		for _, ci := range set {
			if size := c.elements[ci].size(xAxis); size < largest && !approxEqual(size, largest) {
				second, hasSecond = max(second, size), true
			}
		}
		if hasSecond {
			step = max(step, second-largest)
		}

		kept := set[:0]
		for _, ci := range set {
			ch := &c.elements[ci]
			prev := ch.size(xAxis)
			if !approxEqual(prev, largest) {
				kept = append(kept, ci)
				continue
			}
			size := prev + step
			lo := ch.minSize(xAxis)
			if size <= lo {
				size = lo
			} else {
				kept = append(kept, ci)
			}
			ch.setSize(xAxis, size)
			dist -= size - prev
		}
		set = kept
	}
}

// grow hands out the slack dist (> 0) to the smallest growable children
// first, the mirror of shrink. A child reaching its maximum leaves the set.
func (c *Context) grow(set []int32, xAxis bool, dist float64) {
	for dist > tolerance && len(set) > 0 {
		smallest := math.Inf(1)
		for _, ci := range set {
			smallest = min(smallest, c.elements[ci].size(xAxis))
		}
		step := dist / float64(len(set))
		for _, ci := range set {
			if size := c.elements[ci].size(xAxis); size > smallest && !approxEqual(size, smallest) {
				step = min(step, size-smallest)
			}
		}

		kept := set[:0]
		for _, ci := range set {
			ch := &c.elements[ci]
			prev := ch.size(xAxis)
			if !approxEqual(prev, smallest) {
				kept = append(kept, ci)
				continue
			}
			size := prev + step
			_, hi := ch.policy.sizing(xAxis).bounds()
			if size >= hi {
				size = hi
			} else {
				kept = append(kept, ci)
			}
			ch.setSize(xAxis, size)
			dist -= size - prev
		}
		set = kept
	}
}
