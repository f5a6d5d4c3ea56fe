package text

import (
	"bytes"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/text/unicode/bidi"
)

// ShapingMeasurer measures text with HarfBuzz shaping from go-text/typesetting.
// Ligatures, kerning, and complex scripts affect the measured width. Mixed
// direction text is split into bidi runs and each run is shaped on its own.
//
// ShapingMeasurer is safe for concurrent use. Parsed font.Font values are
// shared; HarfbuzzShaper instances are pooled because they are not.
type ShapingMeasurer struct {
	shaperPool sync.Pool

	mu    sync.RWMutex
	fonts map[FontID]*font.Font

	lang language.Language
}

// NewShapingMeasurer returns a measurer with no fonts.
// lang is the BCP 47 tag passed to the shaper; "" means "en".
func NewShapingMeasurer(lang string) *ShapingMeasurer {
	if lang == "" {
		lang = "en"
	}
	return &ShapingMeasurer{
		shaperPool: sync.Pool{
			New: func() any { return &shaping.HarfbuzzShaper{} },
		},
		fonts: make(map[FontID]*font.Font),
		lang:  language.NewLanguage(lang),
	}
}

// Register parses src with go-text and binds it to id.
func (m *ShapingMeasurer) Register(id FontID, src *FontSource) error {
	if src == nil {
		return &FontIDError{ID: id, Err: ErrEmptyFontData}
	}
	face, err := font.ParseTTF(bytes.NewReader(src.Data()))
	if err != nil {
		return &FontIDError{ID: id, Err: err}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.fonts[id]; ok {
		return &FontIDError{ID: id, Err: ErrFontIDInUse}
	}
	m.fonts[id] = face.Font
	return nil
}

// Measure implements Measurer.
func (m *ShapingMeasurer) Measure(s string, id FontID, size float64) Dimensions {
	m.mu.RLock()
	f, ok := m.fonts[id]
	m.mu.RUnlock()
	if !ok {
		Logger().Debug("text: shaping measurer has no such font", "font", id)
		return Dimensions{}
	}

	// font.Face is not safe for concurrent use; it is cheap to create.
	face := font.NewFace(f)
	runes := []rune(s)
	if len(runes) == 0 {
		// Shape a space to get the line bounds of an empty line.
		out := m.shape(face, []rune{' '}, 0, 1, di.DirectionLTR, size)
		return Dimensions{Height: lineHeight(out)}
	}

	var dims Dimensions
	for _, r := range bidiRuns(s, len(runes)) {
		out := m.shape(face, runes, r.start, r.end, r.dir, size)
		dims.Width += fixedToFloat(out.Advance)
		dims.Height = max(dims.Height, lineHeight(out))
	}
	return dims
}

func (m *ShapingMeasurer) shape(face *font.Face, runes []rune, start, end int, dir di.Direction, size float64) shaping.Output {
	input := shaping.Input{
		Text:      runes,
		RunStart:  start,
		RunEnd:    end,
		Direction: dir,
		Face:      face,
		Size:      floatToFixed(size),
		Script:    detectScript(runes[start:end]),
		Language:  m.lang,
	}

	hb := m.shaperPool.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	m.shaperPool.Put(hb)
	return out
}

func lineHeight(out shaping.Output) float64 {
	b := out.LineBounds
	return fixedToFloat(b.Ascent - b.Descent + b.Gap)
}

type bidiRun struct {
	start, end int // rune indices, end exclusive
	dir        di.Direction
}

// bidiRuns splits s into directional runs. n is the rune count of s.
func bidiRuns(s string, n int) []bidiRun {
	whole := []bidiRun{{start: 0, end: n, dir: di.DirectionLTR}}

	var p bidi.Paragraph
	if _, err := p.SetString(s, bidi.DefaultDirection(bidi.LeftToRight)); err != nil {
		return whole
	}
	ordering, err := p.Order()
	if err != nil || ordering.NumRuns() == 0 {
		return whole
	}

	runs := make([]bidiRun, 0, ordering.NumRuns())
	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		// Pos reports inclusive rune indices.
		start, end := run.Pos()
		if end >= n {
			end = n - 1
		}
		if start > end {
			continue
		}
		dir := di.DirectionLTR
		if run.Direction() == bidi.RightToLeft {
			dir = di.DirectionRTL
		}
		runs = append(runs, bidiRun{start: start, end: end + 1, dir: dir})
	}
	if len(runs) == 0 {
		return whole
	}
	return runs
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
