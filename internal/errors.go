package internal

import "errors"

var (
	// ErrInvalidArgument indicates a filter call with arguments in the wrong
	// number, order or type.
	ErrInvalidArgument = errors.New("datefilter: invalid argument")

	// ErrInvalidOption indicates an unknown or malformed formatting option.
	ErrInvalidOption = errors.New("datefilter: invalid option")

	// ErrNilRegistry indicates Install was called without a filter registry.
	ErrNilRegistry = errors.New("datefilter: nil filter registry")
)
