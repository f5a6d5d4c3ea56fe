package text

import (
	"errors"
	"fmt"
)

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrUnknownParser is returned when a FontSource asks for a parser that was never registered.
	ErrUnknownParser = errors.New("text: unknown font parser")

	// ErrFontIDInUse is returned when a FontRegistry id is registered twice.
	ErrFontIDInUse = errors.New("text: font id already registered")
)

// FontIDError reports a registry operation on a specific font id.
type FontIDError struct {
	ID  FontID
	Err error
}

func (e *FontIDError) Error() string {
	return fmt.Sprintf("text: font %d: %v", e.ID, e.Err)
}

func (e *FontIDError) Unwrap() error {
	return e.Err
}
