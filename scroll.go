package layout

// Scroll tuning.
const (
	momentumDecay     = 0.95
	momentumDeadband  = 0.1
	dragPauseTime     = 0.15
	flickThreshold    = 10
	flickTimeScale    = 25
	dragDeltaDeadband = 0.1
)

// ScrollState is the scroll position and motion of one clipping element
// with an id. States survive Reset and are dropped by UpdateScroll once
// their element stops appearing in frames.
type ScrollState struct {
	// Position is the offset applied to the children; it lies in
	// [-(ContentSize - viewport size), 0] on each scrollable axis.
	Position Vec2
	Momentum Vec2

	ContentSize Vec2
	Viewport    BoundingBox

	// Drag tracking.
	ScrollOrigin  Vec2
	PointerOrigin Vec2
	DragTime      float64
	PointerActive bool

	touched bool
	clipX   bool
	clipY   bool
}

// touchScroll creates or marks the scroll state of a clipping element.
func (c *Context) touchScroll(id string) {
	st, ok := c.scroll[id]
	if !ok {
		st = &ScrollState{}
		c.scroll[id] = st
	}
	st.touched = true
	e := &c.elements[c.ids[id]]
	st.clipX, st.clipY = e.clipsX(), e.clipsY()
}

// maxScroll returns how far content can scroll on each axis.
func (st *ScrollState) maxScroll() Vec2 {
	return Vec2{
		X: max(st.ContentSize.X-st.Viewport.Width, 0),
		Y: max(st.ContentSize.Y-st.Viewport.Height, 0),
	}
}

func (st *ScrollState) clamp() {
	m := st.maxScroll()
	st.Position.X = min(max(st.Position.X, -m.X), 0)
	st.Position.Y = min(max(st.Position.Y, -m.Y), 0)
}

// UpdateScroll advances every scroll container by dt.
//
// Momentum decays each call and stops inside a small deadband or when a
// wheel delta arrives. The wheel delta scrolls the topmost hovered
// container that can scroll. With enableDrag, holding the pointer on a
// container drags its content; releasing after a fast drag keeps it
// moving.
//
// States of clipping elements that were not closed since the previous
// UpdateScroll are dropped, so call it once per frame, before Reset.
func (c *Context) UpdateScroll(enableDrag bool, delta Vec2, dt float64) {
	active := enableDrag && c.pointerState.Down()
	wheel := delta.X != 0 || delta.Y != 0

	var (
		target     *ScrollState
		targetRank overRank
	)
	for id, st := range c.scroll {
		if !st.touched {
			delete(c.scroll, id)
			continue
		}
		st.touched = false

		if !active && st.PointerActive {
			diff := st.Position.Sub(st.ScrollOrigin)
			if dt := st.DragTime; dt > 0 {
				if diff.X < -flickThreshold || diff.X > flickThreshold {
					st.Momentum.X = diff.X / (dt * flickTimeScale)
				}
				if diff.Y < -flickThreshold || diff.Y > flickThreshold {
					st.Momentum.Y = diff.Y / (dt * flickTimeScale)
				}
			}
			st.PointerActive = false
			st.PointerOrigin = Vec2{}
			st.ScrollOrigin = Vec2{}
			st.DragTime = 0
		}

		before := st.Position
		st.Position = st.Position.Add(st.Momentum)
		st.Momentum.X *= momentumDecay
		st.Momentum.Y *= momentumDecay
		if inDeadband(st.Momentum.X, momentumDeadband) || wheel {
			st.Momentum.X = 0
		}
		if inDeadband(st.Momentum.Y, momentumDeadband) || wheel {
			st.Momentum.Y = 0
		}
		st.clamp()
		if st.Position != before {
			c.changed.Store(true)
		}

		if rank, ok := c.rankOver(id); ok && st.canScroll() && (target == nil || rank.above(targetRank)) {
			target, targetRank = st, rank
		}
	}

	if target == nil {
		return
	}
	c.scrollTarget(target, active, delta, dt)
}

// overRank locates a hit: root counts roots from the topmost down and
// depth grows toward the innermost element of that root.
type overRank struct {
	root, depth int
}

// above reports whether r is drawn above o.
func (r overRank) above(o overRank) bool {
	if r.root != o.root {
		return r.root < o.root
	}
	return r.depth > o.depth
}

func (c *Context) rankOver(id string) (overRank, bool) {
	if _, ok := c.overSet[id]; !ok {
		return overRank{}, false
	}
	for k, hit := range c.pointerOver {
		if hit.id == id {
			return overRank{root: hit.root, depth: k}, true
		}
	}
	return overRank{}, false
}

func (st *ScrollState) canScroll() bool {
	m := st.maxScroll()
	return (st.clipX && m.X > 0) || (st.clipY && m.Y > 0)
}

func (c *Context) scrollTarget(st *ScrollState, active bool, delta Vec2, dt float64) {
	before := st.Position
	m := st.maxScroll()
	canX, canY := st.clipX && m.X > 0, st.clipY && m.Y > 0

	if canX {
		st.Position.X += delta.X * c.opts.wheelSpeed
	}
	if canY {
		st.Position.Y += delta.Y * c.opts.wheelSpeed
	}

	if active {
		st.Momentum = Vec2{}
		if !st.PointerActive {
			st.PointerOrigin = c.pointer
			st.ScrollOrigin = st.Position
			st.PointerActive = true
		} else {
			var moved Vec2
			if canX {
				old := st.Position.X
				st.Position.X = min(max(st.ScrollOrigin.X+(c.pointer.X-st.PointerOrigin.X), -m.X), 0)
				moved.X = st.Position.X - old
			}
			if canY {
				old := st.Position.Y
				st.Position.Y = min(max(st.ScrollOrigin.Y+(c.pointer.Y-st.PointerOrigin.Y), -m.Y), 0)
				moved.Y = st.Position.Y - old
			}
			if inDeadband(moved.X, dragDeltaDeadband) && inDeadband(moved.Y, dragDeltaDeadband) && st.DragTime > dragPauseTime {
				// The drag paused: start a new flick from here.
				st.DragTime = 0
				st.PointerOrigin = c.pointer
				st.ScrollOrigin = st.Position
			} else {
				st.DragTime += dt
			}
		}
	}

	st.clamp()
	if st.Position != before {
		c.changed.Store(true)
	}
}

func inDeadband(v, band float64) bool {
	return v > -band && v < band
}

// ScrollOffset returns the scroll position of the clipping element with id.
func (c *Context) ScrollOffset(id string) (Vec2, bool) {
	st, ok := c.scroll[id]
	if !ok {
		return Vec2{}, false
	}
	return st.Position, true
}

// SetScrollOffset moves the clipping element with id to pos, clamped to
// its content, and stops its momentum.
func (c *Context) SetScrollOffset(id string, pos Vec2) bool {
	st, ok := c.scroll[id]
	if !ok {
		return false
	}
	st.Position = pos
	st.Momentum = Vec2{}
	st.clamp()
	c.changed.Store(true)
	return true
}

// ScrollState returns a copy of the scroll state of the clipping element with id.
func (c *Context) ScrollState(id string) (ScrollState, bool) {
	st, ok := c.scroll[id]
	if !ok {
		return ScrollState{}, false
	}
	return *st, true
}
