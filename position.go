package layout

import (
	"cmp"
	"slices"
)

// rootCommands is the command buffer of one root.
type rootCommands struct {
	z    int
	cmds []RenderCommand
}

// position computes every bounding box and emits the render commands.
// Each root writes its own buffer; buffers are concatenated in ascending
// z-index so the topmost root draws last.
func (c *Context) position(order []int32) *Commands {
	buffers := make([]rootCommands, 0, len(order))
	for _, ri := range order {
		r := &c.elements[ri]

		var origin Vec2
		if r.isFloating() {
			origin = c.floatingOrigin(ri)
		}

		var buf []RenderCommand
		clipped := r.isFloating() && r.floating.ClipTo == ClipToAttachedParent && r.clipAncestor != none
		if clipped {
			a := &c.elements[r.clipAncestor]
			buf = append(buf, RenderCommand{
				Kind:        CommandClipStart,
				ZIndex:      r.zIndex,
				Element:     c.handle(r.clipAncestor),
				ID:          a.id,
				BoundingBox: a.box,
				Payload:     ClipPayload{Horizontal: a.clipsX(), Vertical: a.clipsY()},
			})
		}
		buf = c.emitTree(buf, ri, origin)
		if clipped {
			buf = append(buf, RenderCommand{
				Kind:    CommandClipEnd,
				ZIndex:  r.zIndex,
				Element: c.handle(r.clipAncestor),
				ID:      c.elements[r.clipAncestor].id,
			})
		}
		buffers = append(buffers, rootCommands{z: r.zIndex, cmds: buf})
	}

	slices.SortStableFunc(buffers, func(a, b rootCommands) int {
		return cmp.Compare(a.z, b.z)
	})
	n := 0
	for _, b := range buffers {
		n += len(b.cmds)
	}
	out := make([]RenderCommand, 0, n)
	for _, b := range buffers {
		out = append(out, b.cmds...)
	}
	return &Commands{cmds: out}
}

// floatingOrigin places a floating root against its attach target by
// pairing the anchor points of both boxes, then adds the offset.
func (c *Context) floatingOrigin(ri int32) Vec2 {
	e := &c.elements[ri]
	f := e.floating
	t := c.attachTarget(ri)
	if t == none {
		if f.AttachTo != AttachToNone {
			Logger().Warn("layout: floating element has no attach target; using its offset",
				"id", e.id, "attachTo", f.AttachTo, "target", f.ParentID)
		}
		return f.Offset
	}
	tb := c.elements[t].box
	px, py := f.AttachPoints.Parent.fractions()
	ex, ey := f.AttachPoints.Element.fractions()
	return Vec2{
		X: tb.X + tb.Width*px - e.width*ex + f.Offset.X,
		Y: tb.Y + tb.Height*py - e.height*ey + f.Offset.Y,
	}
}

// offscreen reports whether box lies entirely outside the viewport.
func (c *Context) offscreen(box BoundingBox) bool {
	return c.opts.culling &&
		(box.X > c.viewport.X || box.Y > c.viewport.Y ||
			box.X+box.Width < 0 || box.Y+box.Height < 0)
}

// childOffset returns the shift applied to all children of e.
func (c *Context) childOffset(e *element) Vec2 {
	if e.clip == nil {
		return Vec2{}
	}
	off := e.clip.ChildOffset
	if st, ok := c.scroll[e.id]; ok && e.id != "" {
		off = off.Add(st.Position)
	}
	return off
}

type positionFrame struct {
	index   int32
	pos     Vec2
	visited bool
}

// emitTree walks the subtree of root ri depth first. The entry visit sets
// the bounding box, emits the background, clip start and text, and pushes
// the children; the exit visit emits the border and clip end.
func (c *Context) emitTree(buf []RenderCommand, ri int32, origin Vec2) []RenderCommand {
	stack := []positionFrame{{index: ri, pos: origin}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		i := top.index
		e := &c.elements[i]
		if top.visited {
			stack = stack[:len(stack)-1]
			buf = c.exitElement(buf, i)
			continue
		}
		top.visited = true
		pos := top.pos

		box := BoundingBox{X: pos.X, Y: pos.Y, Width: e.width, Height: e.height}
		if f := e.floating; f != nil {
			box.X -= f.Expand.X
			box.Y -= f.Expand.Y
			box.Width += 2 * f.Expand.X
			box.Height += 2 * f.Expand.Y
		}
		e.box = box

		offscreen := c.offscreen(box)
		cmd := RenderCommand{ZIndex: e.zIndex, Element: c.handle(i), ID: e.id, BoundingBox: box}
		if e.policy.Background && !offscreen {
			cmd.Kind = CommandRectangle
			cmd.Payload = RectanglePayload{Color: e.policy.BackgroundColor, CornerRadius: e.policy.CornerRadius}
			buf = append(buf, cmd)
		}
		for _, cfg := range e.policy.Configs {
			switch v := cfg.(type) {
			case ClipConfig:
				cmd.Kind = CommandClipStart
				cmd.Payload = ClipPayload{Horizontal: v.Horizontal, Vertical: v.Vertical}
				buf = append(buf, cmd)
			case TextConfig:
				if !offscreen && e.text != nil {
					buf = c.emitText(buf, i, box)
				}
			}
		}
		if e.isText() {
			continue
		}

		stack = c.pushChildren(stack, i, pos)
	}
	return buf
}

// pushChildren computes the child positions of element i at pos and
// pushes them so the first child is visited first.
func (c *Context) pushChildren(stack []positionFrame, i int32, pos Vec2) []positionFrame {
	e := &c.elements[i]
	pad := e.policy.Padding
	gap := e.policy.ChildGap
	row := e.policy.Direction == LeftToRight

	var contentW, contentH float64
	for k, ci := range e.children {
		ch := &c.elements[ci]
		if row {
			contentW += ch.width
			contentH = max(contentH, ch.height)
		} else {
			contentW = max(contentW, ch.width)
			contentH += ch.height
		}
		if k > 0 {
			if row {
				contentW += gap
			} else {
				contentH += gap
			}
		}
	}

	if e.clip != nil && e.id != "" {
		if st, ok := c.scroll[e.id]; ok {
			st.Viewport = e.box
			st.ContentSize = Vec2{X: contentW + pad.horizontal(), Y: contentH + pad.vertical()}
		}
	}

	next := Vec2{X: pad.Left, Y: pad.Top}
	if row {
		extra := max(e.width-pad.horizontal()-contentW, 0)
		next.X += alignOffset(extra, uint8(e.policy.ChildAlignX))
	} else {
		extra := max(e.height-pad.vertical()-contentH, 0)
		next.Y += alignOffset(extra, uint8(e.policy.ChildAlignY))
	}
	scroll := c.childOffset(e)

	n := len(e.children)
	base := len(stack)
	stack = append(stack, make([]positionFrame, n)...)
	for k, ci := range e.children {
		ch := &c.elements[ci]
		if row {
			next.Y = pad.Top + alignOffset(e.height-pad.vertical()-ch.height, uint8(e.policy.ChildAlignY))
		} else {
			next.X = pad.Left + alignOffset(e.width-pad.horizontal()-ch.width, uint8(e.policy.ChildAlignX))
		}
		stack[base+n-1-k] = positionFrame{index: ci, pos: pos.Add(next).Add(scroll)}
		if row {
			next.X += ch.width + gap
		} else {
			next.Y += ch.height + gap
		}
	}
	return stack
}

// emitText emits one command per wrapped line. Lines below the viewport
// are skipped when culling is enabled.
func (c *Context) emitText(buf []RenderCommand, i int32, box BoundingBox) []RenderCommand {
	e := &c.elements[i]
	cfg := e.text
	natural := e.measured.height
	lineHeight := cfg.LineHeight
	if lineHeight <= 0 {
		lineHeight = natural
	}

	y := (lineHeight - natural) / 2
	for _, l := range e.lines {
		if l.text == "" {
			y += lineHeight
			continue
		}
		var off float64
		switch cfg.Align {
		case TextAlignCenter:
			off = (box.Width - l.width) / 2
		case TextAlignRight:
			off = box.Width - l.width
		}
		buf = append(buf, RenderCommand{
			Kind:        CommandText,
			ZIndex:      e.zIndex,
			Element:     c.handle(i),
			ID:          e.id,
			BoundingBox: BoundingBox{X: box.X + off, Y: box.Y + y, Width: l.width, Height: natural},
			Payload: TextPayload{
				Text:          l.text,
				Font:          cfg.Font,
				FontSize:      cfg.FontSize,
				LetterSpacing: cfg.LetterSpacing,
				LineHeight:    lineHeight,
				Color:         cfg.Color,
			},
		})
		y += lineHeight
		if c.opts.culling && box.Y+y > c.viewport.Y {
			break
		}
	}
	return buf
}

// exitElement emits the border, the dividers between children and the
// clip end of element i.
func (c *Context) exitElement(buf []RenderCommand, i int32) []RenderCommand {
	e := &c.elements[i]
	cmd := RenderCommand{ZIndex: e.zIndex, Element: c.handle(i), ID: e.id, BoundingBox: e.box}

	if b := e.border; b != nil && !c.offscreen(e.box) {
		cmd.Kind = CommandBorder
		cmd.Payload = BorderPayload{Color: b.Color, Width: b.Width, CornerRadius: e.policy.CornerRadius}
		buf = append(buf, cmd)
		if w := b.Width.BetweenChildren; w > 0 && b.Color.Visible() {
			buf = c.emitDividers(buf, i, w, b.Color)
		}
	}
	if e.clip != nil {
		buf = append(buf, RenderCommand{Kind: CommandClipEnd, ZIndex: e.zIndex, Element: c.handle(i), ID: e.id})
	}
	return buf
}

// emitDividers draws a w wide bar centered in each gap between children.
func (c *Context) emitDividers(buf []RenderCommand, i int32, w float64, color Color) []RenderCommand {
	e := &c.elements[i]
	box := e.box
	pad := e.policy.Padding
	gap := e.policy.ChildGap
	scroll := c.childOffset(e)
	row := e.policy.Direction == LeftToRight

	offset := Vec2{X: pad.Left - gap/2, Y: pad.Top - gap/2}
	for k, ci := range e.children {
		ch := &c.elements[ci]
		if k > 0 {
			var bar BoundingBox
			if row {
				bar = BoundingBox{X: box.X + offset.X - w/2 + scroll.X, Y: box.Y + scroll.Y, Width: w, Height: box.Height}
			} else {
				bar = BoundingBox{X: box.X + scroll.X, Y: box.Y + offset.Y - w/2 + scroll.Y, Width: box.Width, Height: w}
			}
			buf = append(buf, RenderCommand{
				Kind:        CommandRectangle,
				ZIndex:      e.zIndex,
				Element:     c.handle(i),
				ID:          e.id,
				BoundingBox: bar,
				Payload:     RectanglePayload{Color: color},
			})
		}
		if row {
			offset.X += ch.width + gap
		} else {
			offset.Y += ch.height + gap
		}
	}
	return buf
}
