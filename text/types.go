package text

import "golang.org/x/image/font"

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// Hinting specifies font hinting mode used when measuring advances.
type Hinting int

const (
	// HintingNone disables hinting. Advances keep their fractional part.
	HintingNone Hinting = iota
	// HintingVertical applies vertical hinting only.
	HintingVertical
	// HintingFull applies full hinting. Advances snap to whole pixels.
	HintingFull
)

// String returns the string representation of the hinting.
func (h Hinting) String() string {
	switch h {
	case HintingNone:
		return "None"
	case HintingVertical:
		return "Vertical"
	case HintingFull:
		return "Full"
	default:
		return unknownStr
	}
}

// ximage maps the hinting mode onto golang.org/x/image/font.
func (h Hinting) ximage() font.Hinting {
	switch h {
	case HintingVertical:
		return font.HintingVertical
	case HintingFull:
		return font.HintingFull
	default:
		return font.HintingNone
	}
}
