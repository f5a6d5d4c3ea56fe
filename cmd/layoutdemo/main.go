// Command layoutdemo lays out a TOML or YAML document and renders it to PNG.
package main

import (
	_ "embed"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math"
	"os"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/layout"
	"github.com/gogpu/layout/decl"
	"github.com/gogpu/layout/text"
)

//go:embed sample.toml
var sample []byte

func main() {
	var (
		input    = flag.String("input", "", "layout document (.toml, .yaml, .yml); empty renders a built-in sample")
		output   = flag.String("output", "layout.png", "output file")
		fontPath = flag.String("font", "", "TrueType/OpenType font; empty uses Go Regular")
		shape    = flag.Bool("shape", false, "measure text with HarfBuzz shaping instead of glyph advances")
		dump     = flag.Bool("dump", false, "print the render commands")
		verbose  = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *verbose {
		layout.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	fonts, err := loadFonts(*fontPath)
	if err != nil {
		log.Fatalf("Failed to load font: %v", err)
	}

	doc, err := loadDocument(*input)
	if err != nil {
		log.Fatalf("Failed to load document: %v", err)
	}

	measurer, err := newMeasurer(fonts, *shape)
	if err != nil {
		log.Fatalf("Failed to set up shaping: %v", err)
	}

	width, height := doc.Width, doc.Height
	if width <= 0 || height <= 0 {
		width, height = 800, 600
	}
	ctx := layout.NewContext(width, height, layout.WithMeasurer(measurer))
	if _, err := doc.Build(ctx); err != nil {
		log.Fatalf("Failed to build layout: %v", err)
	}
	cmds := ctx.Commands()

	if *dump {
		for _, cmd := range cmds.All() {
			fmt.Println(cmd)
		}
	}

	c := newCanvas(int(math.Ceil(width)), int(math.Ceil(height)), fonts)
	c.dc.SetRGB(1, 1, 1)
	c.dc.Clear()
	cmds.Playback(c)

	if err := c.dc.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Layout saved to %s (%gx%g, %d commands)\n", *output, width, height, cmds.Len())
}

// loadFonts registers the font at path, or Go Regular, as font 0.
func loadFonts(path string) (*text.FontRegistry, error) {
	var (
		src *text.FontSource
		err error
	)
	if path == "" {
		src, err = text.NewFontSource(goregular.TTF)
	} else {
		src, err = text.NewFontSourceFromFile(path)
	}
	if err != nil {
		return nil, err
	}

	fonts := text.NewFontRegistry()
	if err := fonts.Register(0, src); err != nil {
		return nil, err
	}
	return fonts, nil
}

// newMeasurer returns fonts, or a shaping measurer over font 0 when shape
// is set.
func newMeasurer(fonts *text.FontRegistry, shape bool) (text.Measurer, error) {
	if !shape {
		return fonts, nil
	}
	src, _ := fonts.Source(0)
	m := text.NewShapingMeasurer("")
	if err := m.Register(0, src); err != nil {
		return nil, err
	}
	return m, nil
}

func loadDocument(path string) (*decl.Document, error) {
	if path == "" {
		return decl.Parse(sample, decl.FormatTOML)
	}
	return decl.Load(path)
}
