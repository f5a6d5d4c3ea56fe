package text

import (
	"errors"
	"fmt"

	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ximageParser implements FontParser using golang.org/x/image/font/opentype.
type ximageParser struct{}

// Parse implements FontParser.Parse.
func (p *ximageParser) Parse(data []byte) (ParsedFont, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	return &ximageParsedFont{font: f}, nil
}

// ximageParsedFont implements ParsedFont using sfnt.Font.
// sfnt.Font is safe for concurrent use as long as each call gets its own Buffer.
type ximageParsedFont struct {
	font *opentype.Font
}

func (f *ximageParsedFont) Name() string {
	if buf, err := f.font.Name(nil, sfnt.NameIDFamily); err == nil {
		return buf
	}
	return ""
}

func (f *ximageParsedFont) FullName() string {
	if buf, err := f.font.Name(nil, sfnt.NameIDFull); err == nil {
		return buf
	}
	return ""
}

func (f *ximageParsedFont) UnitsPerEm() int {
	return int(f.font.UnitsPerEm())
}

func (f *ximageParsedFont) GlyphIndex(r rune) uint16 {
	idx, err := f.font.GlyphIndex(nil, r)
	if err != nil {
		return 0
	}
	return uint16(idx)
}

func (f *ximageParsedFont) GlyphAdvance(glyphIndex uint16, ppem float64, h Hinting) float64 {
	var buf sfnt.Buffer
	advance, err := f.font.GlyphAdvance(&buf, sfnt.GlyphIndex(glyphIndex), floatToFixed(ppem), h.ximage())
	if err != nil {
		return 0
	}
	return fixedToFloat(advance)
}

func (f *ximageParsedFont) Kern(left, right uint16, ppem float64, h Hinting) float64 {
	var buf sfnt.Buffer
	k, err := f.font.Kern(&buf, sfnt.GlyphIndex(left), sfnt.GlyphIndex(right), floatToFixed(ppem), h.ximage())
	if err != nil {
		// ErrNotFound means the font has no kern table.
		if !errors.Is(err, sfnt.ErrNotFound) {
			Logger().Debug("text: kern lookup failed", "left", left, "right", right, "err", err)
		}
		return 0
	}
	return fixedToFloat(k)
}

func (f *ximageParsedFont) Metrics(ppem float64, h Hinting) FontMetrics {
	var buf sfnt.Buffer
	m, err := f.font.Metrics(&buf, floatToFixed(ppem), h.ximage())
	if err != nil {
		return FontMetrics{}
	}
	return FontMetrics{
		Ascent:  fixedToFloat(m.Ascent),
		Descent: -fixedToFloat(m.Descent),
		LineGap: fixedToFloat(m.Height) - fixedToFloat(m.Ascent) - fixedToFloat(m.Descent),
	}
}

// floatToFixed converts a float64 size to fixed.Int26_6.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
