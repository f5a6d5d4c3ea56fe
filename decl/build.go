package decl

import (
	"fmt"
	"strings"

	"github.com/gogpu/layout"
	"github.com/gogpu/layout/text"
)

var (
	directions = map[string]layout.Direction{
		"":       layout.LeftToRight,
		"row":    layout.LeftToRight,
		"column": layout.TopToBottom,
	}
	alignsX = map[string]layout.AlignX{
		"":       layout.AlignLeft,
		"left":   layout.AlignLeft,
		"center": layout.AlignCenterX,
		"right":  layout.AlignRight,
	}
	alignsY = map[string]layout.AlignY{
		"":       layout.AlignTop,
		"top":    layout.AlignTop,
		"center": layout.AlignCenterY,
		"bottom": layout.AlignBottom,
	}
	attachTargets = map[string]layout.AttachTarget{
		"":       layout.AttachToNone,
		"none":   layout.AttachToNone,
		"parent": layout.AttachToParent,
		"root":   layout.AttachToRoot,
		"id":     layout.AttachToElementWithID,
	}
	attachPoints = map[string]layout.AttachPoint{
		"":              layout.LeftTop,
		"left-top":      layout.LeftTop,
		"left-center":   layout.LeftCenter,
		"left-bottom":   layout.LeftBottom,
		"center-top":    layout.CenterTop,
		"center":        layout.CenterCenter,
		"center-bottom": layout.CenterBottom,
		"right-top":     layout.RightTop,
		"right-center":  layout.RightCenter,
		"right-bottom":  layout.RightBottom,
	}
	wrapModes = map[string]layout.WrapMode{
		"":         layout.WrapWords,
		"words":    layout.WrapWords,
		"newlines": layout.WrapNewlines,
		"none":     layout.WrapNone,
	}
	textAligns = map[string]layout.TextAlign{
		"":       layout.TextAlignLeft,
		"left":   layout.TextAlignLeft,
		"center": layout.TextAlignCenter,
		"right":  layout.TextAlignRight,
	}
)

// element is a validated node, ready to be opened.
type element struct {
	id       string
	policy   layout.Policy
	text     *layout.TextConfig
	children []element
}

// Build sets the viewport, when the document names one, and constructs the
// tree in ctx. Closing the root runs the layout. Call it between
// ctx.Reset and ctx.Commands.
func (d *Document) Build(ctx *layout.Context) (layout.Handle, error) {
	root, err := compile(&d.Root, "root", make(map[string]struct{}))
	if err != nil {
		return layout.NoParent, err
	}
	if d.Width > 0 && d.Height > 0 {
		ctx.SetViewport(d.Width, d.Height)
	}

	h := emit(ctx, layout.NoParent, &root)
	layout.Logger().Debug("decl: document built", "elements", ctx.Len())
	return h, nil
}

func emit(ctx *layout.Context, parent layout.Handle, e *element) layout.Handle {
	if e.text != nil {
		return ctx.Text(parent, *e.text, e.id, e.policy)
	}
	return ctx.With(parent, e.policy, e.id, func(h layout.Handle) {
		for k := range e.children {
			emit(ctx, h, &e.children[k])
		}
	})
}

// compiler collects the first error while a node is converted.
type compiler struct {
	path string
	err  error
}

func (c *compiler) fail(field, value string, err error) {
	if c.err == nil {
		c.err = &FieldError{Path: c.path, Field: field, Value: value, Err: err}
	}
}

func lookup[T any](c *compiler, table map[string]T, field, value string) T {
	v, ok := table[strings.ToLower(value)]
	if !ok {
		c.fail(field, value, ErrUnknownValue)
	}
	return v
}

func (c *compiler) size(field, value string) layout.Sizing {
	s, err := parseSize(value)
	if err != nil {
		c.fail(field, value, err)
	}
	return s
}

func (c *compiler) color(field, value string) layout.Color {
	if value == "" {
		return layout.Color{}
	}
	col, err := layout.Hex(value)
	if err != nil {
		c.fail(field, value, err)
	}
	return col
}

func (c *compiler) vec(field string, v []float64) layout.Vec2 {
	switch len(v) {
	case 0:
		return layout.Vec2{}
	case 2:
		return layout.Vec2{X: v[0], Y: v[1]}
	}
	c.fail(field, fmt.Sprint(v), ErrBadLength)
	return layout.Vec2{}
}

func (c *compiler) padding(v []float64) layout.Padding {
	switch len(v) {
	case 0:
		return layout.Padding{}
	case 1:
		return layout.PadAll(v[0])
	case 2:
		return layout.PadXY(v[0], v[1])
	case 4:
		return layout.Padding{Left: v[0], Right: v[1], Top: v[2], Bottom: v[3]}
	}
	c.fail("padding", fmt.Sprint(v), ErrBadLength)
	return layout.Padding{}
}

// compile validates n and its subtree. seen holds the ids used so far.
func compile(n *Node, path string, seen map[string]struct{}) (element, error) {
	c := &compiler{path: path}
	if n.ID != "" {
		if _, dup := seen[n.ID]; dup {
			c.fail("id", n.ID, layout.ErrDuplicateID)
		}
		seen[n.ID] = struct{}{}
	}
	p := layout.Policy{
		Width:        c.size("width", n.Width),
		Height:       c.size("height", n.Height),
		Direction:    lookup(c, directions, "direction", n.Direction),
		Padding:      c.padding(n.Padding),
		ChildGap:     n.Gap,
		ChildAlignX:  lookup(c, alignsX, "align_x", n.AlignX),
		ChildAlignY:  lookup(c, alignsY, "align_y", n.AlignY),
		CornerRadius: n.Radius,
	}
	if n.Background != "" {
		p.Background = true
		p.BackgroundColor = c.color("background", n.Background)
	}

	if cl := n.Clip; cl != nil {
		p.Configs = append(p.Configs, layout.ClipConfig{
			Horizontal:  cl.Horizontal,
			Vertical:    cl.Vertical,
			ChildOffset: c.vec("clip.offset", cl.Offset),
		})
	}
	if n.Aspect > 0 {
		p.Configs = append(p.Configs, layout.AspectRatioConfig{Ratio: n.Aspect})
	}
	if f := n.Floating; f != nil {
		fc := layout.FloatingConfig{
			Offset:   c.vec("floating.offset", f.Offset),
			Expand:   c.vec("floating.expand", f.Expand),
			ZIndex:   f.Z,
			AttachTo: lookup(c, attachTargets, "floating.attach_to", f.AttachTo),
			ParentID: f.ParentID,
			AttachPoints: layout.AttachPoints{
				Element: lookup(c, attachPoints, "floating.element", f.Element),
				Parent:  lookup(c, attachPoints, "floating.parent", f.Parent),
			},
		}
		if f.ClipToParent {
			fc.ClipTo = layout.ClipToAttachedParent
		}
		if f.Passthrough {
			fc.PointerCapture = layout.PassthroughPointer
		}
		if fc.AttachTo == layout.AttachToElementWithID && f.ParentID == "" {
			c.fail("floating.parent_id", "", ErrUnknownValue)
		}
		p.Configs = append(p.Configs, fc)
	}
	if b := n.Border; b != nil {
		w := layout.BorderWidth{Left: b.Width, Right: b.Width, Top: b.Width, Bottom: b.Width, BetweenChildren: b.Between}
		for _, side := range []struct {
			dst *float64
			v   *float64
		}{{&w.Left, b.Left}, {&w.Right, b.Right}, {&w.Top, b.Top}, {&w.Bottom, b.Bottom}} {
			if side.v != nil {
				*side.dst = *side.v
			}
		}
		p.Configs = append(p.Configs, layout.BorderConfig{Color: c.color("border.color", b.Color), Width: w})
	}

	e := element{id: n.ID, policy: p}
	if t := n.Text; t != nil {
		if len(n.Children) > 0 {
			c.fail("children", "", layout.ErrTextHasChildren)
		}
		e.text = &layout.TextConfig{
			Text:          t.Text,
			Font:          text.FontID(t.Font),
			FontSize:      t.Size,
			LetterSpacing: t.LetterSpacing,
			LineHeight:    t.LineHeight,
			Wrap:          lookup(c, wrapModes, "text.wrap", t.Wrap),
			Align:         lookup(c, textAligns, "text.align", t.Align),
			Color:         c.color("text.color", t.Color),
		}
	}
	if c.err != nil {
		return element{}, c.err
	}

	if len(n.Children) > 0 {
		e.children = make([]element, len(n.Children))
		for k := range n.Children {
			child, err := compile(&n.Children[k], fmt.Sprintf("%s.children[%d]", path, k), seen)
			if err != nil {
				return element{}, err
			}
			e.children[k] = child
		}
	}
	return e, nil
}
