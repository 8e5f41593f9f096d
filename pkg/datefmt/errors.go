package datefmt

import "errors"

var (
	// ErrInvalidDate indicates a value that cannot be read as a point in time.
	ErrInvalidDate = errors.New("datefmt: invalid date")

	// ErrUnsupportedType indicates a Go type Parse does not know how to convert.
	ErrUnsupportedType = errors.New("datefmt: unsupported date type")
)
