package shell

import (
	"fmt"
	"io"
)

// Console is the terminal the shell talks to.
type Console interface {
	// Prompt is called before each line is read.
	Prompt()
	// Clear clears the display.
	Clear()
	// Error reports a failed command.
	Error(msg string)
}

// PlainConsole writes uncolored output to a writer.
type PlainConsole struct {
	W io.Writer
}

func (c PlainConsole) Prompt() { fmt.Fprint(c.W, "shell> ") }

// Clear emits the ANSI erase-display and cursor-home sequences.
func (c PlainConsole) Clear() { fmt.Fprint(c.W, "\x1b[2J\x1b[H") }

func (c PlainConsole) Error(msg string) { fmt.Fprintln(c.W, msg) }
