package text

// FontID identifies a font known to a Measurer.
// The zero value is a valid identifier (the first registered font).
type FontID uint16

// Dimensions is the measured extent of a text fragment in layout units.
type Dimensions struct {
	Width  float64
	Height float64
}

// Measurer reports the natural size of a text fragment rendered with a font
// at a given size.
//
// Implementations must be pure: the same (text, font, size) triple must
// always produce the same Dimensions. Layout caches measurements keyed by
// that triple and never invalidates them on its own.
type Measurer interface {
	Measure(s string, font FontID, size float64) Dimensions
}

// MeasurerFunc adapts an ordinary function to the Measurer interface.
type MeasurerFunc func(s string, font FontID, size float64) Dimensions

// Measure implements Measurer.
func (f MeasurerFunc) Measure(s string, font FontID, size float64) Dimensions {
	return f(s, font, size)
}
