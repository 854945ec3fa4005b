package jsonml

import (
	"errors"
	"fmt"
)

// ErrInvalidShape is returned when a value does not have the shape an
// operation requires.
var ErrInvalidShape = errors.New("invalid JsonML")

func shapeErr(want string, got any) error {
	return fmt.Errorf("%w: expected %s, got %T", ErrInvalidShape, want, got)
}
