package text

// Face represents a font face at a specific size.
// Face is safe for concurrent use.
type Face interface {
	// Metrics returns the font metrics at this face's size.
	Metrics() Metrics

	// Advance returns the total advance width of the text in pixels,
	// including pair kerning unless disabled with WithKerning(false).
	Advance(text string) float64

	// HasGlyph reports whether the font has a glyph for the given rune.
	HasGlyph(r rune) bool

	// Source returns the FontSource this face was created from.
	Source() *FontSource

	// Size returns the size of this face in pixels per em.
	Size() float64

	private()
}

type sourceFace struct {
	source *FontSource
	size   float64
	config faceConfig
}

func (f *sourceFace) Metrics() Metrics {
	fm := f.source.Parsed().Metrics(f.size, f.config.hinting)

	descent := fm.Descent
	if descent < 0 {
		descent = -descent
	}

	return Metrics{
		Ascent:  fm.Ascent,
		Descent: descent,
		LineGap: fm.LineGap,
	}
}

func (f *sourceFace) Advance(text string) float64 {
	parsed := f.source.Parsed()
	total := 0.0

	var prev uint16
	first := true
	for _, r := range text {
		gid := parsed.GlyphIndex(r)
		if f.config.kerning && !first {
			total += parsed.Kern(prev, gid, f.size, f.config.hinting)
		}
		total += parsed.GlyphAdvance(gid, f.size, f.config.hinting)
		prev, first = gid, false
	}

	return total
}

func (f *sourceFace) HasGlyph(r rune) bool {
	return f.source.Parsed().GlyphIndex(r) != 0
}

func (f *sourceFace) Source() *FontSource {
	return f.source
}

func (f *sourceFace) Size() float64 {
	return f.size
}

func (f *sourceFace) private() {}
