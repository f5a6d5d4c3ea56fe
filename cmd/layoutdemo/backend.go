package main

import (
	"strings"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"

	"github.com/gogpu/layout"
	"github.com/gogpu/layout/text"
)

// faceKey identifies a rasterizer face.
type faceKey struct {
	font text.FontID
	size float64
}

// canvas draws layout commands with fogleman/gg. It implements layout.Backend.
type canvas struct {
	dc    *gg.Context
	fonts *text.FontRegistry
	faces *text.Cache[faceKey, font.Face]
	// clips holds the active clip rectangles, innermost last.
	clips []layout.BoundingBox
}

func newCanvas(width, height int, fonts *text.FontRegistry) *canvas {
	return &canvas{
		dc:    gg.NewContext(width, height),
		fonts: fonts,
		faces: text.NewCache[faceKey, font.Face](16),
	}
}

func (c *canvas) setColor(col layout.Color) {
	c.dc.SetRGBA(col.R, col.G, col.B, col.A)
}

func (c *canvas) FillRect(box layout.BoundingBox, p layout.RectanglePayload) {
	if !p.Color.Visible() {
		return
	}
	c.setColor(p.Color)
	if p.CornerRadius > 0 {
		c.dc.DrawRoundedRectangle(box.X, box.Y, box.Width, box.Height, p.CornerRadius)
	} else {
		c.dc.DrawRectangle(box.X, box.Y, box.Width, box.Height)
	}
	c.dc.Fill()
}

func (c *canvas) StrokeBorder(box layout.BoundingBox, p layout.BorderPayload) {
	w := p.Width
	if !p.Color.Visible() || (w.Left <= 0 && w.Right <= 0 && w.Top <= 0 && w.Bottom <= 0) {
		return
	}
	c.setColor(p.Color)

	if p.CornerRadius > 0 && w.Left == w.Right && w.Left == w.Top && w.Left == w.Bottom {
		half := w.Left / 2
		c.dc.SetLineWidth(w.Left)
		c.dc.DrawRoundedRectangle(box.X+half, box.Y+half, box.Width-w.Left, box.Height-w.Left, max(p.CornerRadius-half, 0))
		c.dc.Stroke()
		return
	}

	// One quad per side, mitred at the corners.
	ol, ot := box.X, box.Y
	or, ob := box.X+box.Width, box.Y+box.Height
	il, it := ol+w.Left, ot+w.Top
	ir, ib := or-w.Right, ob-w.Bottom
	quads := [4][4][2]float64{
		{{ol, ot}, {or, ot}, {ir, it}, {il, it}},
		{{or, ot}, {or, ob}, {ir, ib}, {ir, it}},
		{{ol, ob}, {or, ob}, {ir, ib}, {il, ib}},
		{{ol, ot}, {ol, ob}, {il, ib}, {il, it}},
	}
	widths := [4]float64{w.Top, w.Right, w.Bottom, w.Left}
	for k, q := range quads {
		if widths[k] <= 0 {
			continue
		}
		c.dc.MoveTo(q[0][0], q[0][1])
		for _, pt := range q[1:] {
			c.dc.LineTo(pt[0], pt[1])
		}
		c.dc.ClosePath()
		c.dc.Fill()
	}
}

// face returns the rasterizer face for a font at size.
func (c *canvas) face(id text.FontID, size float64) (font.Face, bool) {
	src, ok := c.fonts.Source(id)
	if !ok {
		if src, ok = c.fonts.Source(0); !ok {
			return nil, false
		}
	}
	var err error
	f := c.faces.GetOrCreate(faceKey{id, size}, func() font.Face {
		var parsed *opentype.Font
		if parsed, err = opentype.Parse(src.Data()); err != nil {
			return nil
		}
		var face font.Face
		face, err = opentype.NewFace(parsed, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingNone})
		return face
	})
	return f, err == nil && f != nil
}

func (c *canvas) DrawText(box layout.BoundingBox, p layout.TextPayload) {
	ff, ok := c.face(p.Font, p.FontSize)
	if !ok {
		return
	}
	measure, _ := c.fonts.Face(p.Font, p.FontSize)

	c.setColor(p.Color)
	c.dc.SetFontFace(ff)
	baseline := box.Y + float64(ff.Metrics().Ascent.Ceil())

	if p.LetterSpacing == 0 || measure == nil {
		c.dc.DrawString(p.Text, box.X, baseline)
		return
	}
	// Letter spacing is applied after every word, the way it is measured.
	x := box.X
	for _, word := range strings.SplitAfter(p.Text, " ") {
		c.dc.DrawString(word, x, baseline)
		x += measure.Advance(word) + p.LetterSpacing
	}
}

func (c *canvas) PushClip(box layout.BoundingBox, p layout.ClipPayload) {
	if !p.Horizontal {
		box.X, box.Width = 0, float64(c.dc.Width())
	}
	if !p.Vertical {
		box.Y, box.Height = 0, float64(c.dc.Height())
	}
	c.clips = append(c.clips, box)
	c.clip(box)
}

// PopClip rebuilds the mask from the remaining clips.
func (c *canvas) PopClip() {
	if len(c.clips) == 0 {
		return
	}
	c.clips = c.clips[:len(c.clips)-1]
	c.dc.ResetClip()
	for _, box := range c.clips {
		c.clip(box)
	}
}

func (c *canvas) clip(box layout.BoundingBox) {
	c.dc.DrawRectangle(box.X, box.Y, box.Width, box.Height)
	c.dc.Clip()
}
