package alloc

import "errors"

var (
	// ErrAllocationOverflow indicates the free space below the frontier is
	// smaller than the request. No state was changed.
	ErrAllocationOverflow = errors.New("alloc: allocation overflow")

	// ErrZeroSize indicates a request for zero bytes.
	ErrZeroSize = errors.New("alloc: size must be > 0")

	// ErrFreeOfInactiveChunk indicates Free of a nil, already freed, or
	// foreign chunk. No state was changed.
	ErrFreeOfInactiveChunk = errors.New("alloc: chunk is not allocated")

	// ErrUnsupported is returned by operations the allocator does not provide.
	ErrUnsupported = errors.New("alloc: unsupported operation")

	// ErrCorrupt indicates that Verify found a broken invariant.
	ErrCorrupt = errors.New("alloc: corrupt state")
)
