package decl

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownFormat is returned for files that are neither TOML nor YAML.
	ErrUnknownFormat = errors.New("decl: unknown document format")

	// ErrUnknownValue is reported for enum strings that name no option.
	ErrUnknownValue = errors.New("decl: unknown value")

	// ErrBadSize is reported for malformed size expressions.
	ErrBadSize = errors.New("decl: malformed size")

	// ErrBadLength is reported for lists with the wrong number of values.
	ErrBadLength = errors.New("decl: wrong number of values")
)

// FieldError describes an invalid value in a document.
type FieldError struct {
	Path  string // node path, e.g. "root.children[2]"
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("decl: %s.%s: %v", e.Path, e.Field, e.Err)
	}
	return fmt.Sprintf("decl: %s.%s = %q: %v", e.Path, e.Field, e.Value, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
