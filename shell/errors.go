package shell

// Error is a command error whose text is shown to the user verbatim.
type Error string

func (e Error) Error() string { return string(e) }

const (
	// ErrInvalidArguments indicates a wrong argument count.
	ErrInvalidArguments = Error("Invalid arguments")

	// ErrInvalidSize indicates an ALLOC size that is not a non-negative integer.
	ErrInvalidSize = Error("Invalid size")

	// ErrInvalidOffset indicates a FREE offset that is not a non-negative integer.
	ErrInvalidOffset = Error("Invalid offset")

	// ErrChunkNotFound indicates that no live chunk starts at the FREE offset.
	ErrChunkNotFound = Error("Could not locate chunk with specified offset")

	// ErrUnknownCommand indicates an empty line or an unrecognized command.
	ErrUnknownCommand = Error("Invalid command")
)
