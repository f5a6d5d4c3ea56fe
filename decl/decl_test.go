package decl

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/layout"
	"github.com/gogpu/layout/text"
)

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"a.toml", FormatTOML, false},
		{"dir/b.YAML", FormatYAML, false},
		{"c.yml", FormatYAML, false},
		{"d.json", 0, true},
		{"noext", 0, true},
	}
	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		if (err != nil) != tt.wantErr {
			t.Errorf("FormatFromPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			continue
		}
		if err != nil && !errors.Is(err, ErrUnknownFormat) {
			t.Errorf("FormatFromPath(%q) error = %v, want ErrUnknownFormat", tt.path, err)
		}
		if got != tt.want {
			t.Errorf("FormatFromPath(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestLoadFormatsAgree(t *testing.T) {
	fromTOML, err := Load(filepath.Join("testdata", "card.toml"))
	if err != nil {
		t.Fatalf("Load(toml) error: %v", err)
	}
	fromYAML, err := Load(filepath.Join("testdata", "card.yaml"))
	if err != nil {
		t.Fatalf("Load(yaml) error: %v", err)
	}
	if diff := cmp.Diff(fromTOML, fromYAML); diff != "" {
		t.Errorf("TOML and YAML documents differ (-toml +yaml):\n%s", diff)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join("testdata", "missing.toml")); err == nil {
		t.Error("Load of a missing file succeeded")
	}
}

func TestBuildCard(t *testing.T) {
	doc, err := Load(filepath.Join("testdata", "card.toml"))
	if err != nil {
		t.Fatal(err)
	}

	ctx := layout.NewContext(10, 10, layout.WithMeasurer(text.CellMeasurer{}))
	if _, err := doc.Build(ctx); err != nil {
		t.Fatalf("Build error: %v", err)
	}

	if ctx.Viewport() != (layout.Vec2{X: 320, Y: 240}) {
		t.Errorf("viewport = %v, want 320x240", ctx.Viewport())
	}
	card, ok := ctx.ElementByID("card")
	if !ok {
		t.Fatal("card not built")
	}
	if card.BoundingBox != (layout.BoundingBox{Width: 320, Height: 240}) {
		t.Errorf("card box = %v", card.BoundingBox)
	}

	actions, _ := ctx.ElementByID("actions")
	ok2, _ := ctx.ElementByID("ok")
	if got, want := ok2.BoundingBox.Max().X, actions.BoundingBox.Max().X; got != want {
		t.Errorf("right aligned button ends at %g, want %g", got, want)
	}

	badge, _ := ctx.ElementByID("badge")
	if !badge.IsFloating || badge.ZIndex != 10 {
		t.Errorf("badge = %v", badge)
	}
	if got := (layout.Vec2{X: badge.BoundingBox.X + 12, Y: badge.BoundingBox.Y + 12}); got != (layout.Vec2{X: 320, Y: 0}) {
		t.Errorf("badge centered at %v, want the card's top right corner", got)
	}

	cmds := ctx.Commands()
	if last := cmds.At(cmds.Len() - 1); last.ID != "badge" || last.ZIndex != 10 {
		t.Errorf("last command = %v, want the badge", last)
	}
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		data   string
	}{
		{"toml", FormatTOML, "[root]\nwidht = \"grow\"\n"},
		{"yaml", FormatYAML, "root:\n  widht: grow\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.data), tt.format); err == nil {
				t.Error("Parse accepted an unknown key")
			}
		})
	}
	if _, err := Parse(nil, Format(7)); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Parse with a bad format: %v, want ErrUnknownFormat", err)
	}
}

func TestBuildFieldErrors(t *testing.T) {
	tests := []struct {
		name      string
		root      Node
		wantPath  string
		wantField string
		wantErr   error
	}{
		{"direction", Node{Direction: "diagonal"}, "root", "direction", ErrUnknownValue},
		{"size name", Node{Width: "huge(3)"}, "root", "width", ErrUnknownValue},
		{"size args", Node{Height: "fixed()"}, "root", "height", ErrBadSize},
		{"too many args", Node{Width: "fit(1, 2, 3)"}, "root", "width", ErrBadSize},
		{"padding", Node{Padding: []float64{1, 2, 3}}, "root", "padding", ErrBadLength},
		{"offset", Node{Clip: &Clip{Offset: []float64{1}}}, "root", "clip.offset", ErrBadLength},
		{"wrap", Node{Text: &Text{Wrap: "sometimes"}}, "root", "text.wrap", ErrUnknownValue},
		{"text children", Node{Text: &Text{}, Children: []Node{{}}}, "root", "children", layout.ErrTextHasChildren},
		{"anchor", Node{Floating: &Floating{Element: "middle"}}, "root", "floating.element", ErrUnknownValue},
		{"attach id", Node{Floating: &Floating{AttachTo: "id"}}, "root", "floating.parent_id", ErrUnknownValue},
		{
			"nested",
			Node{Children: []Node{{}, {AlignY: "sideways"}}},
			"root.children[1]", "align_y", ErrUnknownValue,
		},
		{
			"duplicate id",
			Node{ID: "x", Children: []Node{{ID: "y"}, {ID: "x"}}},
			"root.children[1]", "id", layout.ErrDuplicateID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := layout.NewContext(100, 100)
			doc := &Document{Root: tt.root}
			_, err := doc.Build(ctx)

			var fe *FieldError
			if !errors.As(err, &fe) {
				t.Fatalf("Build error = %v, want *FieldError", err)
			}
			if fe.Path != tt.wantPath || fe.Field != tt.wantField {
				t.Errorf("error at %s.%s, want %s.%s", fe.Path, fe.Field, tt.wantPath, tt.wantField)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
			if ctx.Len() != 0 {
				t.Errorf("a failed Build opened %d elements", ctx.Len())
			}
		})
	}
}

func TestBuildBadColor(t *testing.T) {
	doc := &Document{Root: Node{Border: &Border{Color: "#nothex"}}}
	_, err := doc.Build(layout.NewContext(100, 100))

	var fe *FieldError
	if !errors.As(err, &fe) || fe.Field != "border.color" {
		t.Errorf("Build error = %v, want a border.color field error", err)
	}
}

func TestBuildBorderSides(t *testing.T) {
	two := 2.0
	doc := &Document{Root: Node{
		ID:     "box",
		Width:  "fixed(10)",
		Height: "fixed(10)",
		Border: &Border{Color: "#000", Width: 1, Top: &two, Between: 3},
	}}
	ctx := layout.NewContext(100, 100)
	if _, err := doc.Build(ctx); err != nil {
		t.Fatal(err)
	}

	cmds := ctx.Commands()
	if cmds.Len() != 1 {
		t.Fatalf("%d commands, want 1", cmds.Len())
	}
	p, ok := cmds.At(0).Payload.(layout.BorderPayload)
	if !ok {
		t.Fatalf("payload = %T, want BorderPayload", cmds.At(0).Payload)
	}
	want := layout.BorderWidth{Left: 1, Right: 1, Top: 2, Bottom: 1, BetweenChildren: 3}
	if p.Width != want {
		t.Errorf("border width = %+v, want %+v", p.Width, want)
	}
}

func TestFieldErrorMessage(t *testing.T) {
	err := &FieldError{Path: "root", Field: "width", Value: "huge", Err: ErrUnknownValue}
	if got, want := err.Error(), `decl: root.width = "huge": decl: unknown value`; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	err.Value = ""
	if got, want := err.Error(), "decl: root.width: decl: unknown value"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
