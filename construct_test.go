package layout

import (
	"errors"
	"testing"
)

func TestCloseFitsChildren(t *testing.T) {
	tests := []struct {
		name               string
		dir                Direction
		wantW, wantH       float64
		wantMinW, wantMinH float64
	}{
		{"row", LeftToRight, 5 + 20 + 10 + 30 + 5, 5 + 40 + 5, 70, 50},
		{"column", TopToBottom, 5 + 30 + 5, 5 + 10 + 10 + 40 + 5, 40, 70},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := newTestContext(1000, 1000)
			ctx.With(NoParent, Policy{Direction: tt.dir, Padding: PadAll(5), ChildGap: 10}, "root", func(root Handle) {
				fixedBox(ctx, root, 20, 10, "a")
				fixedBox(ctx, root, 30, 40, "b")
			})

			e := mustElement(t, ctx, "root")
			if e.Width != tt.wantW || e.Height != tt.wantH {
				t.Errorf("size = %gx%g, want %gx%g", e.Width, e.Height, tt.wantW, tt.wantH)
			}
			if e.MinWidth != tt.wantMinW || e.MinHeight != tt.wantMinH {
				t.Errorf("min = %gx%g, want %gx%g", e.MinWidth, e.MinHeight, tt.wantMinW, tt.wantMinH)
			}
		})
	}
}

func TestCloseClippedAxisKeepsPaddingMinimum(t *testing.T) {
	ctx := newTestContext(1000, 1000)
	ctx.With(NoParent, Policy{}, "root", func(root Handle) {
		ctx.With(root, Policy{
			Padding: PadXY(4, 2),
			Configs: []Config{ClipConfig{Horizontal: true}},
		}, "clip", func(h Handle) {
			fixedBox(ctx, h, 50, 30, "")
			fixedBox(ctx, h, 50, 30, "")
		})
	})

	e := mustElement(t, ctx, "clip")
	if e.MinWidth != 8 {
		t.Errorf("MinWidth = %g, want 8 (padding only)", e.MinWidth)
	}
	if e.MinHeight != 34 {
		t.Errorf("MinHeight = %g, want 34", e.MinHeight)
	}
	if e.Width != 108 {
		t.Errorf("Width = %g, want 108", e.Width)
	}
}

func TestCloseClampsAndZeroesPercent(t *testing.T) {
	ctx := newTestContext(1000, 1000)
	var pct Handle
	ctx.With(NoParent, Policy{Width: Fixed(200), Height: Fixed(100)}, "root", func(root Handle) {
		ctx.With(root, Policy{Width: Fit(0, 25)}, "capped", func(h Handle) {
			fixedBox(ctx, h, 40, 10, "")
		})
		pct = ctx.Open(root, Policy{Width: Percent(0.5), Height: Fixed(10)}, "pct")
		fixedBox(ctx, pct, 30, 10, "")
		ctx.Close(pct)
		if w := ctx.elements[pct.index].width; w != 0 {
			t.Errorf("percent width after close = %g, want 0", w)
		}
	})

	if e := mustElement(t, ctx, "capped"); e.Width != 25 {
		t.Errorf("capped width = %g, want 25", e.Width)
	}
	if e := mustElement(t, ctx, "pct"); e.Width != 100 {
		t.Errorf("percent width after layout = %g, want 100", e.Width)
	}
}

func TestCloseDerivesAspect(t *testing.T) {
	ctx := newTestContext(1000, 1000)
	h := ctx.Open(NoParent, Policy{Width: Fixed(100), Configs: []Config{AspectRatioConfig{Ratio: 2}}}, "img")
	ctx.Close(h)

	e := ctx.Element(h)
	if e.Width != 100 || e.Height != 50 {
		t.Errorf("size = %gx%g, want 100x50", e.Width, e.Height)
	}
}

func TestCloseIgnoresNonPositiveAspect(t *testing.T) {
	ctx := newTestContext(1000, 1000)
	h := ctx.Open(NoParent, Policy{Width: Fixed(100), Configs: []Config{AspectRatioConfig{Ratio: 0}}}, "img")
	ctx.Close(h)

	if e := ctx.Element(h); e.Height != 0 {
		t.Errorf("Height = %g, want 0", e.Height)
	}
	if len(ctx.aspects) != 0 {
		t.Errorf("aspect registry has %d entries, want 0", len(ctx.aspects))
	}
}

func TestCloseTwiceIsNoop(t *testing.T) {
	ctx := newTestContext(100, 100)
	h := ctx.Open(NoParent, Policy{Width: Fixed(10)}, "root")
	ctx.Close(h)
	ctx.Close(h)

	if n := len(ctx.roots); n != 1 {
		t.Errorf("roots = %d, want 1", n)
	}
}

func TestConstructionPanics(t *testing.T) {
	t.Run("duplicate id", func(t *testing.T) {
		ctx := newTestContext(100, 100)
		root := ctx.Open(NoParent, Policy{}, "root")
		fixedBox(ctx, root, 1, 1, "x")
		expectPanic(t, ErrDuplicateID, func() {
			fixedBox(ctx, root, 1, 1, "x")
		})
	})

	t.Run("text parent", func(t *testing.T) {
		ctx := newTestContext(100, 100)
		root := ctx.Open(NoParent, Policy{}, "root")
		txt := ctx.Text(root, TextConfig{Text: "hi"}, "label")
		expectPanic(t, ErrTextHasChildren, func() {
			ctx.Open(txt, Policy{}, "child")
		})
	})

	t.Run("closed parent", func(t *testing.T) {
		ctx := newTestContext(100, 100)
		root := ctx.Open(NoParent, Policy{}, "root")
		child := fixedBox(ctx, root, 1, 1, "child")
		expectPanic(t, ErrParentClosed, func() {
			ctx.Open(child, Policy{}, "grandchild")
		})
	})

	t.Run("other context", func(t *testing.T) {
		a, b := newTestContext(100, 100), newTestContext(100, 100)
		root := a.Open(NoParent, Policy{}, "root")
		expectPanic(t, ErrForeignHandle, func() {
			b.Open(root, Policy{}, "child")
		})
	})

	t.Run("stale handle", func(t *testing.T) {
		ctx := newTestContext(100, 100)
		root := ctx.Open(NoParent, Policy{}, "root")
		ctx.Reset()
		expectPanic(t, ErrForeignHandle, func() {
			ctx.Close(root)
		})
	})
}

func TestConstructionErrorUnwrap(t *testing.T) {
	err := error(&ConstructionError{Op: "close", ID: "x", Err: ErrDuplicateID})
	if !errors.Is(err, ErrDuplicateID) {
		t.Error("errors.Is(err, ErrDuplicateID) = false")
	}
	want := `layout: close "x": layout: duplicate element id`
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if got := (&ConstructionError{Op: "open", Err: ErrForeignHandle}).Error(); got != "layout: open: layout: handle does not belong to this frame" {
		t.Errorf("Error() without id = %q", got)
	}
}

func TestWithClosesOnPanic(t *testing.T) {
	ctx := newTestContext(100, 100)
	root := ctx.Open(NoParent, Policy{}, "root")

	func() {
		defer func() { _ = recover() }()
		ctx.With(root, Policy{Width: Fixed(10)}, "child", func(Handle) {
			panic("boom")
		})
	}()

	if _, ok := ctx.ElementByID("child"); !ok {
		t.Fatal("child was not closed")
	}
	ctx.Close(root)
	if e := mustElement(t, ctx, "root"); len(e.Children) != 1 {
		t.Errorf("root has %d children, want 1", len(e.Children))
	}
}

func TestDuplicateIDLeavesNoRegistration(t *testing.T) {
	ctx := newTestContext(100, 100)
	root := ctx.Open(NoParent, Policy{}, "root")
	first := fixedBox(ctx, root, 10, 10, "x")

	expectPanic(t, ErrDuplicateID, func() {
		ctx.With(root, Policy{
			Width: Fixed(5), Height: Fixed(5),
			Configs: []Config{
				FloatingConfig{},
				AspectRatioConfig{Ratio: 1},
			},
		}, "x", nil)
	})
	expectPanic(t, ErrDuplicateID, func() {
		ctx.Text(root, TextConfig{Text: "dup"}, "x")
	})

	if len(ctx.roots) != 0 || len(ctx.texts) != 0 || len(ctx.aspects) != 0 {
		t.Errorf("registries after failed closes: roots=%d texts=%d aspects=%d, want 0",
			len(ctx.roots), len(ctx.texts), len(ctx.aspects))
	}
	if got := ctx.ids["x"]; got != first.index {
		t.Errorf("id x maps to %d, want %d", got, first.index)
	}
	ctx.Close(root)
	if e := mustElement(t, ctx, "root"); len(e.Children) != 1 {
		t.Errorf("root has %d children, want 1", len(e.Children))
	}
	if e := mustElement(t, ctx, "x"); e.BoundingBox.Width != 10 {
		t.Errorf("x width = %g, want the first element's 10", e.BoundingBox.Width)
	}
}

func TestTextReplacesConfig(t *testing.T) {
	ctx := newTestContext(1000, 100)
	h := ctx.Text(NoParent, TextConfig{Text: "abc"}, "t", Policy{
		Configs: []Config{TextConfig{Text: "ignored"}, BorderConfig{}},
	})
	ctx.Layout()

	e := ctx.Element(h)
	if !e.IsText || e.Width != 30 {
		t.Errorf("text element = %v, want width 30", e)
	}
	if got := ctx.elements[h.index].text.Text; got != "abc" {
		t.Errorf("text = %q, want %q", got, "abc")
	}
}

func TestSortConfigsByPriority(t *testing.T) {
	in := []Config{BorderConfig{}, TextConfig{}, FloatingConfig{}, AspectRatioConfig{}, ClipConfig{}}
	out := sortConfigs(in)

	for k := 1; k < len(out); k++ {
		if out[k-1].Priority() > out[k].Priority() {
			t.Fatalf("configs not sorted: %v", out)
		}
	}
	if _, ok := in[0].(BorderConfig); !ok {
		t.Error("sortConfigs modified its input")
	}
}

func TestFloatingChildIsNotInFlow(t *testing.T) {
	ctx := newTestContext(200, 200)
	ctx.With(NoParent, Policy{}, "root", func(root Handle) {
		fixedBox(ctx, root, 20, 20, "a")
		ctx.With(root, Policy{
			Width: Fixed(500), Height: Fixed(500),
			Configs: []Config{FloatingConfig{AttachTo: AttachToParent, ZIndex: 3}},
		}, "popup", nil)
	})

	root := mustElement(t, ctx, "root")
	if root.Width != 20 || len(root.Children) != 1 {
		t.Errorf("root = %v with %d children, want width 20 and 1 child", root, len(root.Children))
	}
	if popup := mustElement(t, ctx, "popup"); !popup.IsFloating || popup.ZIndex != 3 {
		t.Errorf("popup = %v", popup)
	}
}
