package layout

import (
	"errors"
	"fmt"
)

// Sentinel errors for construction misuse. They reach callers wrapped in a
// *ConstructionError panic value.
var (
	// ErrDuplicateID is reported when two elements in one frame share an id.
	ErrDuplicateID = errors.New("layout: duplicate element id")

	// ErrTextHasChildren is reported when an element is opened under a text element.
	ErrTextHasChildren = errors.New("layout: text elements cannot have children")

	// ErrForeignHandle is reported for handles from another Context or an earlier frame.
	ErrForeignHandle = errors.New("layout: handle does not belong to this frame")

	// ErrParentClosed is reported when an element is opened under a closed parent.
	ErrParentClosed = errors.New("layout: parent element already closed")
)

// ConstructionError describes a misuse of the Open/Close protocol.
// Construction errors are programmer errors: Open and Close panic with
// a *ConstructionError instead of returning it.
type ConstructionError struct {
	Op  string // "open" or "close"
	ID  string // element id, may be empty
	Err error
}

func (e *ConstructionError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("layout: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("layout: %s %q: %v", e.Op, e.ID, e.Err)
}

func (e *ConstructionError) Unwrap() error {
	return e.Err
}
