package decl

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is a document encoding.
type Format uint8

const (
	FormatTOML Format = iota
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	}
	return fmt.Sprintf("Format(%d)", f)
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
}

// Document is a layout tree with the viewport it is laid out in.
type Document struct {
	// Width and Height set the viewport when positive.
	Width  float64 `toml:"width" yaml:"width"`
	Height float64 `toml:"height" yaml:"height"`

	Root Node `toml:"root" yaml:"root"`
}

// Node is one element. A node with Text is a text element and has no children.
type Node struct {
	ID string `toml:"id" yaml:"id"`

	Width  string `toml:"width" yaml:"width"`
	Height string `toml:"height" yaml:"height"`

	// Direction is "row" (the default) or "column".
	Direction string `toml:"direction" yaml:"direction"`
	// Padding holds 1 (all sides), 2 (x, y) or 4 (left, right, top, bottom) values.
	Padding []float64 `toml:"padding" yaml:"padding"`
	Gap     float64   `toml:"gap" yaml:"gap"`
	// AlignX is "left", "center" or "right"; AlignY is "top", "center" or "bottom".
	AlignX string `toml:"align_x" yaml:"align_x"`
	AlignY string `toml:"align_y" yaml:"align_y"`

	Background string  `toml:"background" yaml:"background"`
	Radius     float64 `toml:"radius" yaml:"radius"`

	// Aspect is the width / height ratio, ignored when not positive.
	Aspect   float64   `toml:"aspect" yaml:"aspect"`
	Clip     *Clip     `toml:"clip" yaml:"clip"`
	Floating *Floating `toml:"floating" yaml:"floating"`
	Text     *Text     `toml:"text" yaml:"text"`
	Border   *Border   `toml:"border" yaml:"border"`

	Children []Node `toml:"children" yaml:"children"`
}

// Clip clips children per axis and shifts them by Offset ([x, y]).
type Clip struct {
	Horizontal bool      `toml:"horizontal" yaml:"horizontal"`
	Vertical   bool      `toml:"vertical" yaml:"vertical"`
	Offset     []float64 `toml:"offset" yaml:"offset"`
}

// Floating takes the node out of the flow.
type Floating struct {
	// AttachTo is "none", "parent", "root" or "id".
	AttachTo string `toml:"attach_to" yaml:"attach_to"`
	ParentID string `toml:"parent_id" yaml:"parent_id"`
	// Element and Parent are anchor names such as "left-top" or "center".
	Element string `toml:"element" yaml:"element"`
	Parent  string `toml:"parent" yaml:"parent"`

	Offset []float64 `toml:"offset" yaml:"offset"`
	Expand []float64 `toml:"expand" yaml:"expand"`
	Z      int       `toml:"z" yaml:"z"`

	ClipToParent bool `toml:"clip_to_parent" yaml:"clip_to_parent"`
	Passthrough  bool `toml:"passthrough" yaml:"passthrough"`
}

// Text makes the node a text element.
type Text struct {
	Text          string  `toml:"text" yaml:"text"`
	Font          uint16  `toml:"font" yaml:"font"`
	Size          float64 `toml:"size" yaml:"size"`
	LetterSpacing float64 `toml:"letter_spacing" yaml:"letter_spacing"`
	LineHeight    float64 `toml:"line_height" yaml:"line_height"`
	// Wrap is "words" (the default), "newlines" or "none".
	Wrap string `toml:"wrap" yaml:"wrap"`
	// Align is "left", "center" or "right".
	Align string `toml:"align" yaml:"align"`
	Color string `toml:"color" yaml:"color"`
}

// Border strokes the node's edges. Width sets every side; the per-side
// fields override it.
type Border struct {
	Color   string   `toml:"color" yaml:"color"`
	Width   float64  `toml:"width" yaml:"width"`
	Left    *float64 `toml:"left" yaml:"left"`
	Right   *float64 `toml:"right" yaml:"right"`
	Top     *float64 `toml:"top" yaml:"top"`
	Bottom  *float64 `toml:"bottom" yaml:"bottom"`
	Between float64  `toml:"between" yaml:"between"`
}

// Parse decodes a document. Unknown keys are errors.
func Parse(data []byte, f Format) (*Document, error) {
	var doc Document
	switch f {
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decl: parse toml: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decl: parse yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}
	return &doc, nil
}

// Load reads and parses the document at path. The format follows the
// file extension.
func Load(path string) (*Document, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("decl: read %s: %w", path, err)
	}
	doc, err := Parse(data, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}
