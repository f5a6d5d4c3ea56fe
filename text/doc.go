// Package text provides text measurement for the layout engine.
//
// Layout never draws glyphs. It only needs to know how wide and tall a
// run of text is, which is what a Measurer reports:
//
//   - FontRegistry: outline fonts parsed with golang.org/x/image, with pair kerning
//   - ShapingMeasurer: HarfBuzz shaping via go-text/typesetting, bidi aware
//   - CellMeasurer: fixed character grid for terminal-style output
//   - MeasurerFunc: any function, handy in tests
//
// # Example usage
//
//	source, err := text.NewFontSourceFromFile("Roboto-Regular.ttf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fonts := text.NewFontRegistry()
//	if err := fonts.Register(0, source); err != nil {
//	    log.Fatal(err)
//	}
//
//	ctx := layout.NewContext(800, 600, layout.WithMeasurer(fonts))
//
// # Pluggable Parser Backend
//
// Font parsing is abstracted through the FontParser interface.
// By default, golang.org/x/image/font/opentype is used:
//
//	text.RegisterParser("myparser", myCustomParser)
//	source, err := text.NewFontSource(data, text.WithParser("myparser"))
//
// Cache is the generic LRU used by the layout engine for its measured
// text cache and by FontRegistry for faces.
package text
