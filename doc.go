// Package layout is an immediate-mode layout engine.
//
// Each frame the host declares a tree of rectangular elements with
// Context.Open and Context.Close. Every element carries a Policy: how each
// axis is sized (Fit, Fixed, Grow, Percent), padding, the gap between
// children, alignment, layout direction and a list of configurations
// (clipping, aspect ratio, floating placement, text, border). Closing the
// root runs the layout passes and publishes an immutable list of render
// commands for an external renderer.
//
// # Example
//
//	ctx := layout.NewContext(800, 600, layout.WithMeasurer(fonts))
//
//	root := ctx.Open(layout.NoParent, layout.Policy{
//	    Width:     layout.Grow(0, 0),
//	    Height:    layout.Grow(0, 0),
//	    Padding:   layout.PadAll(16),
//	    ChildGap:  8,
//	    Direction: layout.TopToBottom,
//	}, "root")
//	ctx.Text(root, layout.TextConfig{Text: "Hello", FontSize: 24}, "title")
//	ctx.Close(root)
//
//	ctx.Commands().Playback(backend)
//
// # Passes
//
// Sizing runs along the x axis first. Text is then wrapped to the resolved
// widths, which fixes text heights, and the y axis is sized. Within one
// axis, a parent shrinks overflowing children largest first and grows grow
// children smallest first, so siblings of equal size stay equal.
//
// # Input
//
// SetPointer hit tests the tree from the topmost root down and drives a
// four-state button machine; UpdateScroll moves scroll containers by wheel,
// drag and momentum. Scroll positions shift children in the next Layout.
//
// # Errors
//
// Misusing Open and Close is a programmer error and panics with a
// *ConstructionError. Out-of-range policy values are clamped.
package layout
