package region

import "errors"

var (
	// ErrInvalidConfiguration indicates region boundaries with End <= Start.
	ErrInvalidConfiguration = errors.New("region: invalid configuration")

	// ErrClosed indicates use of a region after Close.
	ErrClosed = errors.New("region: closed")
)
