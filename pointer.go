package layout

import (
	"cmp"
	"fmt"
	"slices"
)

// PointerState is the edge-triggered state of the primary pointer button.
type PointerState uint8

const (
	PointerReleased PointerState = iota
	PointerPressedThisFrame
	PointerPressed
	PointerReleasedThisFrame
)

var pointerStateNames = [...]string{
	PointerReleased:          "Released",
	PointerPressedThisFrame:  "PressedThisFrame",
	PointerPressed:           "Pressed",
	PointerReleasedThisFrame: "ReleasedThisFrame",
}

func (s PointerState) String() string {
	if int(s) < len(pointerStateNames) {
		return pointerStateNames[s]
	}
	return fmt.Sprintf("PointerState(%d)", s)
}

// Down reports whether the button is held.
func (s PointerState) Down() bool {
	return s == PointerPressedThisFrame || s == PointerPressed
}

// next returns the state after one frame with the button down or up.
func (s PointerState) next(down bool) PointerState {
	if down {
		switch s {
		case PointerPressedThisFrame, PointerPressed:
			return PointerPressed
		default:
			return PointerPressedThisFrame
		}
	}
	switch s {
	case PointerReleasedThisFrame, PointerReleased:
		return PointerReleased
	default:
		return PointerReleasedThisFrame
	}
}

// SetPointer records the pointer position and button state for this frame
// and hit tests the current tree.
//
// Roots are tested from the highest z-index down. Within a root every
// element whose box contains pos, and whose nearest clipping ancestor's box
// contains it too, is hit; hits are recorded outermost first. A hit on a
// floating root in capture mode hides the roots beneath it.
func (c *Context) SetPointer(pos Vec2, down bool) {
	c.pointer = pos
	c.pointerState = c.pointerState.next(down)

	c.pointerOver = c.pointerOver[:0]
	clear(c.overSet)
	for i := range c.elements {
		c.elements[i].hovered = false
	}

	order := c.rootOrder()
	byZ := slices.Clone(order)
	slices.SortStableFunc(byZ, func(a, b int32) int {
		return cmp.Compare(c.elements[a].zIndex, c.elements[b].zIndex)
	})

	stack := make([]int32, 0, 32)
	for k := len(byZ) - 1; k >= 0; k-- {
		ri := byZ[k]
		found := false
		stack = append(stack[:0], ri)
		for len(stack) > 0 {
			i := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			e := &c.elements[i]

			if e.box.Contains(pos) && (e.clipAncestor == none || c.elements[e.clipAncestor].box.Contains(pos)) {
				e.hovered = true
				found = true
				if e.id != "" {
					c.pointerOver = append(c.pointerOver, pointerHit{id: e.id, root: len(byZ) - 1 - k})
					c.overSet[e.id] = struct{}{}
				}
			}
			if e.isText() {
				continue
			}
			for j := len(e.children) - 1; j >= 0; j-- {
				stack = append(stack, e.children[j])
			}
		}

		r := &c.elements[ri]
		if found && r.isFloating() && r.floating.PointerCapture == CapturePointer {
			break
		}
	}
}

// Pointer returns the last pointer position and button state.
func (c *Context) Pointer() (Vec2, PointerState) {
	return c.pointer, c.pointerState
}

// PointerOver returns the ids of the elements under the pointer at the last
// SetPointer call, starting with the topmost root's outermost element.
func (c *Context) PointerOver() []string {
	out := make([]string, len(c.pointerOver))
	for k, hit := range c.pointerOver {
		out[k] = hit.id
	}
	return out
}

// pointerHit is an element with an id under the pointer. root counts
// roots from the topmost down.
type pointerHit struct {
	id   string
	root int
}

// IsPointerOver reports whether the element with id was under the pointer.
func (c *Context) IsPointerOver(id string) bool {
	_, ok := c.overSet[id]
	return ok
}
