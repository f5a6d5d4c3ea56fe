package text

// FontParser is an interface for font parsing backends.
// The default implementation, registered as "ximage", uses
// golang.org/x/image/font/opentype.
type FontParser interface {
	// Parse parses font data (TTF or OTF) and returns a ParsedFont.
	Parse(data []byte) (ParsedFont, error)
}

// ParsedFont represents a parsed font file.
type ParsedFont interface {
	// Name returns the font family name, or "" if not available.
	Name() string

	// FullName returns the full font name, or "" if not available.
	FullName() string

	// UnitsPerEm returns the units per em for the font.
	UnitsPerEm() int

	// GlyphIndex returns the glyph index for a rune, 0 if the glyph is not found.
	GlyphIndex(r rune) uint16

	// GlyphAdvance returns the advance width for a glyph at ppem pixels per em.
	GlyphAdvance(glyphIndex uint16, ppem float64, h Hinting) float64

	// Kern returns the horizontal adjustment between two glyphs.
	// Fonts without a kern table report 0.
	Kern(left, right uint16, ppem float64, h Hinting) float64

	// Metrics returns the font metrics at the given size.
	Metrics(ppem float64, h Hinting) FontMetrics
}

// FontMetrics holds font-level metrics at a specific size.
type FontMetrics struct {
	// Ascent is the distance from the baseline to the top of the font (positive).
	Ascent float64

	// Descent is the distance from the baseline to the bottom of the font (negative).
	Descent float64

	// LineGap is the recommended line gap between lines.
	LineGap float64
}

// Height returns the total line height (ascent - descent + line gap).
func (m FontMetrics) Height() float64 {
	return m.Ascent - m.Descent + m.LineGap
}

var parserRegistry = map[string]FontParser{
	"ximage": &ximageParser{},
}

const defaultParserName = "ximage"

// RegisterParser registers a custom font parser under name.
// It is not safe to call concurrently with NewFontSource.
func RegisterParser(name string, parser FontParser) {
	parserRegistry[name] = parser
}

func getParser(name string) (FontParser, error) {
	if p, ok := parserRegistry[name]; ok {
		return p, nil
	}
	return nil, ErrUnknownParser
}
