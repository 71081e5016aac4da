// Package shell implements the line-oriented command interpreter that drives
// an allocator from a terminal.
//
// Commands are case-insensitive and arguments are separated by whitespace:
//
//	CLS            clear the display
//	ALLOC <size>   allocate size bytes (decimal); the handle is not kept
//	FREE <offset>  free the live chunk whose offset (decimal) matches
//
// Every failure is reported through the Console and the loop keeps reading.
package shell
