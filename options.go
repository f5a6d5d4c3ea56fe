package layout

import "github.com/gogpu/layout/text"

// Option configures a Context during creation.
//
// Example:
//
//	fonts := text.NewFontRegistry()
//	ctx := layout.NewContext(800, 600, layout.WithMeasurer(fonts))
type Option func(*options)

type options struct {
	measurer   text.Measurer
	culling    bool
	wheelSpeed float64
}

func defaultOptions() options {
	return options{
		measurer:   text.CellMeasurer{},
		culling:    true,
		wheelSpeed: 10,
	}
}

// WithMeasurer sets the text measurer. The default is a text.CellMeasurer,
// which treats every character as half the font size wide.
//
// The measurer must be pure: measurements are cached by text, font, size
// and letter spacing.
func WithMeasurer(m text.Measurer) Option {
	return func(o *options) {
		if m != nil {
			o.measurer = m
		}
	}
}

// WithCulling controls whether elements entirely outside the viewport
// emit rectangle, text and border commands. Clip commands are always
// emitted. Culling is enabled by default.
func WithCulling(enabled bool) Option {
	return func(o *options) {
		o.culling = enabled
	}
}

// WithWheelSpeed sets the factor applied to scroll wheel deltas. The default is 10.
func WithWheelSpeed(f float64) Option {
	return func(o *options) {
		o.wheelSpeed = f
	}
}
