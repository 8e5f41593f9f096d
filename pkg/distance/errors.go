package distance

import "errors"

// ErrInvalidRange indicates a zero reference or target instant.
var ErrInvalidRange = errors.New("distance: invalid date range")
