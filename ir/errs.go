package ir

import (
	"errors"

	"github.com/signadot/jsonml"
)

var (
	ErrUnsupported  = errors.New("unsupported node")
	ErrInvalidShape = jsonml.ErrInvalidShape
)
