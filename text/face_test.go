package text

import (
	"math"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func loadTestFont(t *testing.T) *FontSource {
	t.Helper()

	source, err := NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatalf("failed to load test font: %v", err)
	}
	return source
}

func TestFaceMetrics(t *testing.T) {
	source := loadTestFont(t)

	tests := []struct {
		name string
		size float64
	}{
		{"size 12", 12.0},
		{"size 16", 16.0},
		{"size 24", 24.0},
		{"size 48", 48.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metrics := source.Face(tt.size).Metrics()

			if metrics.Ascent <= 0 {
				t.Errorf("Ascent should be positive, got %f", metrics.Ascent)
			}
			if metrics.Descent <= 0 {
				t.Errorf("Descent should be positive, got %f", metrics.Descent)
			}
			if metrics.LineGap < 0 {
				t.Errorf("LineGap should be non-negative, got %f", metrics.LineGap)
			}

			want := metrics.Ascent + metrics.Descent + metrics.LineGap
			if metrics.LineHeight() != want {
				t.Errorf("LineHeight() = %f, want %f", metrics.LineHeight(), want)
			}
		})
	}

	ratio := source.Face(24).Metrics().Ascent / source.Face(12).Metrics().Ascent
	if ratio < 1.8 || ratio > 2.2 {
		t.Errorf("Metrics scaling incorrect: ratio = %f, want ~2.0", ratio)
	}
}

func TestFaceAdvance(t *testing.T) {
	face := loadTestFont(t).Face(16)

	if got := face.Advance(""); got != 0 {
		t.Errorf("Advance(\"\") = %f, want 0", got)
	}

	one := face.Advance("a")
	if one <= 0 {
		t.Fatalf("Advance(a) = %f, want > 0", one)
	}

	// "aaaa" has no kerning pairs in Go Regular.
	if got := face.Advance("aaaa"); math.Abs(got-4*one) > 0.01 {
		t.Errorf("Advance(aaaa) = %f, want %f", got, 4*one)
	}

	if w, m := face.Advance("W"), face.Advance("i"); w <= m {
		t.Errorf("Advance(W) = %f should exceed Advance(i) = %f", w, m)
	}
}

func TestFaceKerningOption(t *testing.T) {
	source := loadTestFont(t)
	kerned := source.Face(32).Advance("AV")
	plain := source.Face(32, WithKerning(false)).Advance("AV")

	// Go Regular may or may not kern AV; kerning never widens the pair.
	if kerned > plain+0.01 {
		t.Errorf("kerned AV = %f wider than unkerned %f", kerned, plain)
	}
}

func TestFaceHinting(t *testing.T) {
	face := loadTestFont(t).Face(13.3, WithHinting(HintingFull))
	adv := face.Advance("abc")
	if adv != math.Trunc(adv) {
		t.Errorf("fully hinted advance %f is not a whole pixel", adv)
	}
}

func TestFaceHasGlyph(t *testing.T) {
	face := loadTestFont(t).Face(12)

	if !face.HasGlyph('A') {
		t.Error("HasGlyph('A') = false, want true")
	}
	if face.HasGlyph('\U0001F600') {
		t.Error("HasGlyph(emoji) = true, want false for Go Regular")
	}
}

func TestFaceAccessors(t *testing.T) {
	source := loadTestFont(t)
	face := source.Face(20)

	if face.Size() != 20 {
		t.Errorf("Size() = %f, want 20", face.Size())
	}
	if face.Source() != source {
		t.Error("Source() did not return the creating FontSource")
	}
}
