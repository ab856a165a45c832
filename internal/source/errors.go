package source

import (
	"errors"
	"fmt"
)

var (
	// ErrIncompatible is returned when the root element or schema version is
	// not one this package can read.
	ErrIncompatible = errors.New("incompatible debate format")
	// ErrMalformed is returned when the input is not well-formed XML.
	ErrMalformed = errors.New("malformed debate format")
	// ErrInvalidValue is returned for attribute values outside their domain.
	ErrInvalidValue = errors.New("invalid value")
)

func invalidValuef(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidValue, fmt.Sprintf(format, args...))
}
