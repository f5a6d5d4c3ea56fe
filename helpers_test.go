package layout

import (
	"math"
	"testing"

	"github.com/gogpu/layout/text"
)

// monoMeasurer makes every byte 10 units wide and every line 10 units tall.
var monoMeasurer = text.MeasurerFunc(func(s string, _ text.FontID, _ float64) text.Dimensions {
	return text.Dimensions{Width: 10 * float64(len(s)), Height: 10}
})

func almostEqual(a, b, epsilon float64) bool {
	return math.Abs(a-b) < epsilon
}

func newTestContext(w, h float64, opts ...Option) *Context {
	return NewContext(w, h, append([]Option{WithMeasurer(monoMeasurer)}, opts...)...)
}

// fixedBox opens and closes a fixed-size leaf.
func fixedBox(ctx *Context, parent Handle, w, h float64, id string) Handle {
	return ctx.With(parent, Policy{Width: Fixed(w), Height: Fixed(h)}, id, nil)
}

func mustElement(t *testing.T, ctx *Context, id string) Element {
	t.Helper()
	e, ok := ctx.ElementByID(id)
	if !ok {
		t.Fatalf("element %q not found", id)
	}
	return e
}

func kinds(cmds *Commands) []CommandKind {
	out := make([]CommandKind, 0, cmds.Len())
	for _, cmd := range cmds.All() {
		out = append(out, cmd.Kind)
	}
	return out
}

func expectPanic(t *testing.T, want error, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("expected panic with %v", want)
		}
		ce, ok := r.(*ConstructionError)
		if !ok {
			t.Fatalf("panic value %T(%v), want *ConstructionError", r, r)
		}
		if ce.Err != want {
			t.Fatalf("panic error %v, want %v", ce.Err, want)
		}
	}()
	fn()
}
