package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	titleColor  = lipgloss.Color("11") // yellow
	mutedColor  = lipgloss.Color("7")  // gray
	promptColor = lipgloss.Color("14") // cyan
	errorColor  = lipgloss.Color("9")  // red
)

// termConsole renders the shell on a terminal.
type termConsole struct {
	w   io.Writer
	out *termenv.Output

	titleStyle  lipgloss.Style
	mutedStyle  lipgloss.Style
	promptStyle lipgloss.Style
	errorStyle  lipgloss.Style
}

func newTermConsole(w io.Writer, noColor bool) *termConsole {
	r := lipgloss.NewRenderer(w)
	if noColor {
		r.SetColorProfile(termenv.Ascii)
	}
	return &termConsole{
		w:           w,
		out:         termenv.NewOutput(w),
		titleStyle:  r.NewStyle().Foreground(titleColor).Bold(true),
		mutedStyle:  r.NewStyle().Foreground(mutedColor),
		promptStyle: r.NewStyle().Foreground(promptColor),
		errorStyle:  r.NewStyle().Foreground(errorColor),
	}
}

// Banner prints the startup title.
func (c *termConsole) Banner() {
	fmt.Fprintln(c.w, c.titleStyle.Render("Slug Memory Allocator"))
	fmt.Fprintln(c.w, c.mutedStyle.Render("version "+version))
}

func (c *termConsole) Prompt() {
	fmt.Fprint(c.w, c.promptStyle.Render("shell")+"> ")
}

func (c *termConsole) Clear() {
	c.out.ClearScreen()
}

func (c *termConsole) Error(msg string) {
	fmt.Fprintln(c.w, c.errorStyle.Render(msg))
}
