package layout

import (
	"fmt"
	"testing"
)

// clippedFit is a horizontally clipping Fit(min, 0) container holding one
// fixed child, so its width is w and its minimum width is min.
func clippedFit(ctx *Context, parent Handle, w, min float64, id string) {
	ctx.With(parent, Policy{
		Width:   Fit(min, 0),
		Configs: []Config{ClipConfig{Horizontal: true}},
	}, id, func(h Handle) {
		fixedBox(ctx, h, w, 10, "")
	})
}

func TestGrowSharesSlack(t *testing.T) {
	tests := []struct {
		name  string
		width float64
		padX  float64
		gap   float64
		build func(ctx *Context, root Handle)
		want  map[string]float64
	}{
		{
			name:  "equal split",
			width: 70,
			build: func(ctx *Context, root Handle) {
				fixedBox(ctx, root, 20, 10, "fixed")
				ctx.With(root, Policy{Width: Grow(0, 0)}, "a", nil)
				ctx.With(root, Policy{Width: Grow(0, 0)}, "b", nil)
			},
			want: map[string]float64{"fixed": 20, "a": 25, "b": 25},
		},
		{
			name:  "max pins",
			width: 100,
			build: func(ctx *Context, root Handle) {
				ctx.With(root, Policy{Width: Grow(0, 20)}, "a", nil)
				ctx.With(root, Policy{Width: Grow(0, 0)}, "b", nil)
			},
			want: map[string]float64{"a": 20, "b": 80},
		},
		{
			name:  "smallest first",
			width: 100,
			build: func(ctx *Context, root Handle) {
				ctx.With(root, Policy{Width: Grow(0, 0)}, "a", func(h Handle) { fixedBox(ctx, h, 60, 10, "") })
				ctx.With(root, Policy{Width: Grow(0, 0)}, "b", func(h Handle) { fixedBox(ctx, h, 10, 10, "") })
			},
			want: map[string]float64{"a": 60, "b": 40},
		},
		{
			name:  "fit does not grow",
			width: 100,
			build: func(ctx *Context, root Handle) {
				ctx.With(root, Policy{}, "fit", func(h Handle) { fixedBox(ctx, h, 30, 10, "") })
				ctx.With(root, Policy{Width: Grow(0, 0)}, "grow", nil)
			},
			want: map[string]float64{"fit": 30, "grow": 70},
		},
		{
			name:  "padding and gaps",
			width: 100,
			padX:  5,
			gap:   10,
			build: func(ctx *Context, root Handle) {
				ctx.With(root, Policy{Width: Grow(0, 0)}, "a", nil)
				ctx.With(root, Policy{Width: Grow(0, 0)}, "b", nil)
			},
			want: map[string]float64{"a": 40, "b": 40},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := newTestContext(1000, 1000)
			policy := Policy{Width: Fixed(tt.width), Height: Fixed(10), Padding: PadXY(tt.padX, 0), ChildGap: tt.gap}
			ctx.With(NoParent, policy, "root", func(root Handle) { tt.build(ctx, root) })

			for id, want := range tt.want {
				if got := mustElement(t, ctx, id).Width; !almostEqual(got, want, 0.05) {
					t.Errorf("%s width = %g, want %g", id, got, want)
				}
			}
		})
	}
}

func TestShrinkLargestFirst(t *testing.T) {
	ctx := newTestContext(1000, 1000)
	ctx.With(NoParent, Policy{Width: Fixed(50)}, "root", func(root Handle) {
		clippedFit(ctx, root, 100, 40, "big")
		clippedFit(ctx, root, 20, 10, "small")
	})

	big, small := mustElement(t, ctx, "big"), mustElement(t, ctx, "small")
	if !almostEqual(big.Width, 40, 0.05) || !almostEqual(small.Width, 10, 0.05) {
		t.Errorf("widths = %g, %g, want 40, 10", big.Width, small.Width)
	}
}

func TestShrinkEqualizes(t *testing.T) {
	ctx := newTestContext(1000, 1000)
	ctx.With(NoParent, Policy{Width: Fixed(60)}, "root", func(root Handle) {
		clippedFit(ctx, root, 100, 0, "a")
		clippedFit(ctx, root, 50, 0, "b")
		clippedFit(ctx, root, 20, 0, "c")
	})

	total := 0.0
	for _, id := range []string{"a", "b", "c"} {
		w := mustElement(t, ctx, id).Width
		total += w
		if !almostEqual(w, 20, 0.05) {
			t.Errorf("%s width = %g, want 20", id, w)
		}
	}
	if !almostEqual(total, 60, 0.05) {
		t.Errorf("total = %g, want 60", total)
	}
}

func TestShrinkRespectsMinimums(t *testing.T) {
	ctx := newTestContext(1000, 1000)
	ctx.With(NoParent, Policy{Width: Fixed(60)}, "root", func(root Handle) {
		clippedFit(ctx, root, 100, 10, "a")
		clippedFit(ctx, root, 50, 10, "b")
		clippedFit(ctx, root, 20, 10, "c")
	})

	const tolerance = 0.01
	total := 0.0
	for _, id := range []string{"a", "b", "c"} {
		e := mustElement(t, ctx, id)
		total += e.Width
		if e.Width < e.MinWidth {
			t.Errorf("%s width %g below its minimum %g", id, e.Width, e.MinWidth)
		}
		if !almostEqual(e.Width, 20, tolerance) {
			t.Errorf("%s width = %g, want 20", id, e.Width)
		}
	}
	if total > 60+3*tolerance {
		t.Errorf("total = %g, want at most 60 within tolerance", total)
	}
}

func TestShrinkSkippedWhenClipping(t *testing.T) {
	ctx := newTestContext(1000, 1000)
	ctx.With(NoParent, Policy{Width: Fixed(50), Configs: []Config{ClipConfig{Horizontal: true}}}, "root", func(root Handle) {
		clippedFit(ctx, root, 100, 0, "a")
	})

	if w := mustElement(t, ctx, "a").Width; w != 100 {
		t.Errorf("width = %g, want 100", w)
	}
}

func TestCrossAxis(t *testing.T) {
	ctx := newTestContext(1000, 1000)
	ctx.With(NoParent, Policy{Width: Fixed(300), Height: Fixed(100), Padding: PadXY(0, 10)}, "root", func(root Handle) {
		ctx.With(root, Policy{Height: Grow(0, 0)}, "grow", nil)
		ctx.With(root, Policy{Height: Grow(0, 50)}, "capped", nil)
		ctx.With(root, Policy{}, "fit", func(h Handle) { fixedBox(ctx, h, 10, 30, "") })
		ctx.With(root, Policy{}, "tall", func(h Handle) { fixedBox(ctx, h, 10, 200, "") })
		ctx.With(root, Policy{Configs: []Config{ClipConfig{Vertical: true}}}, "clipped", func(h Handle) {
			fixedBox(ctx, h, 10, 200, "")
		})
	})

	want := map[string]float64{
		"grow":    80,
		"capped":  50,
		"fit":     30,
		"tall":    200,
		"clipped": 80,
	}
	for id, h := range want {
		if got := mustElement(t, ctx, id).Height; !almostEqual(got, h, 0.05) {
			t.Errorf("%s height = %g, want %g", id, got, h)
		}
	}
}

func TestPercentOfInnerSpace(t *testing.T) {
	ctx := newTestContext(1000, 1000)
	ctx.With(NoParent, Policy{Width: Fixed(210), Padding: PadXY(5, 0), ChildGap: 10}, "root", func(root Handle) {
		ctx.With(root, Policy{Width: Percent(0.5)}, "half", nil)
		fixedBox(ctx, root, 50, 10, "fixed")
	})

	if w := mustElement(t, ctx, "half").Width; w != 95 {
		t.Errorf("width = %g, want 95", w)
	}
}

func TestGrowRootFillsViewport(t *testing.T) {
	ctx := newTestContext(640, 480)
	ctx.With(NoParent, Policy{Width: Grow(0, 0), Height: Grow(0, 400)}, "root", nil)

	e := mustElement(t, ctx, "root")
	if e.Width != 640 || e.Height != 400 {
		t.Errorf("root = %gx%g, want 640x400", e.Width, e.Height)
	}

	ctx.SetViewport(320, 240)
	ctx.Layout()
	if e := mustElement(t, ctx, "root"); e.Width != 320 || e.Height != 240 {
		t.Errorf("after resize root = %gx%g, want 320x240", e.Width, e.Height)
	}
}

func TestWrappedTextGrowsParent(t *testing.T) {
	ctx := newTestContext(1000, 1000)
	ctx.With(NoParent, Policy{Width: Fixed(60)}, "root", func(root Handle) {
		ctx.Text(root, TextConfig{Text: "hello world"}, "t")
	})

	txt := mustElement(t, ctx, "t")
	if txt.Width != 60 || txt.Height != 20 {
		t.Errorf("text = %gx%g, want 60x20", txt.Width, txt.Height)
	}
	if len(txt.Lines) != 2 || txt.Lines[0] != "hello" || txt.Lines[1] != "world" {
		t.Errorf("lines = %q", txt.Lines)
	}
	if h := mustElement(t, ctx, "root").Height; h != 20 {
		t.Errorf("root height = %g, want 20", h)
	}
}

func TestTextShrinkStopsAtLongestWord(t *testing.T) {
	ctx := newTestContext(1000, 1000)
	ctx.With(NoParent, Policy{Width: Fixed(20)}, "root", func(root Handle) {
		ctx.Text(root, TextConfig{Text: "abc de"}, "words")
		ctx.Text(root, TextConfig{Text: "abc de", Wrap: WrapNone}, "line")
	})

	if w := mustElement(t, ctx, "words").Width; w != 30 {
		t.Errorf("wrapping text width = %g, want 30", w)
	}
	if w := mustElement(t, ctx, "line").Width; w != 60 {
		t.Errorf("unwrapped text width = %g, want 60", w)
	}
}

func BenchmarkLayout(b *testing.B) {
	for _, rows := range []int{10, 100, 1000} {
		b.Run(fmt.Sprintf("rows=%d", rows), func(b *testing.B) {
			ctx := newTestContext(800, 600)
			for b.Loop() {
				ctx.Reset()
				ctx.With(NoParent, Policy{
					Width: Grow(0, 0), Height: Grow(0, 0), Direction: TopToBottom,
					Configs: []Config{ClipConfig{Vertical: true}},
				}, "list", func(list Handle) {
					for r := range rows {
						ctx.With(list, Policy{Width: Grow(0, 0), Padding: PadAll(4), ChildGap: 8, Background: true}, "", func(row Handle) {
							ctx.Text(row, TextConfig{Text: "row label with a few words"}, "")
							ctx.With(row, Policy{Width: Grow(0, 0)}, "", nil)
							ctx.Text(row, TextConfig{Text: fmt.Sprint(r)}, "")
						})
					}
				})
			}
		})
	}
}
