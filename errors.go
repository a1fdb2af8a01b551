package grib

import (
	"fmt"

	"github.com/nwpgo/grib/message"
)

// ErrInconsistentAttribute indicates that an attribute key expected to hold
// a single value across a variable's messages has several distinct ones,
// e.g. two different units for the same parameter.
type ErrInconsistentAttribute struct {
	Key    string
	Values []message.Value
}

func (e *ErrInconsistentAttribute) Error() string {
	return fmt.Sprintf("GRIB has multiple values for key %q: %v", e.Key, e.Values)
}

// ErrMultiValuedGroup indicates that a variable's scope spans more than one
// distinct value of the grouping key.
type ErrMultiValuedGroup struct {
	Key    string
	Values []message.Value
}

func (e *ErrMultiValuedGroup) Error() string {
	return fmt.Sprintf("GRIB must have a single %q per variable, got %v", e.Key, e.Values)
}

// ErrMissingCoordinate indicates that a required coordinate key has no index
// entries, signalling malformed or unsupported input.
type ErrMissingCoordinate struct {
	Key string
}

func (e *ErrMissingCoordinate) Error() string {
	return fmt.Sprintf("GRIB has no values for coordinate key %q", e.Key)
}
