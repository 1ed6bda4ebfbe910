// Package ui provides terminal styling for task output.
package ui

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	red    = lipgloss.Color("1")
	green  = lipgloss.Color("2")
	yellow = lipgloss.Color("3")

	colored = newRenderer(termenv.ANSI)
	plain   = newRenderer(termenv.Ascii)
)

// newRenderer returns a renderer pinned to the given profile so styling
// does not depend on whether stdout happens to be a terminal.
func newRenderer(profile termenv.Profile) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(profile)
	return r
}

// Enabled reports whether colored output should be produced. Output
// stays colored when piped: the command picker's preview pane runs
// `view` through a pipe and shows the same glyphs as a terminal.
func Enabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return true
}

// TodoGlyph marks an unfinished task in rendered lists.
func TodoGlyph(color bool) string { return styled("✕", red, color) }

// DoneGlyph marks a completed task in rendered lists.
func DoneGlyph(color bool) string { return styled("✓", green, color) }

// TodoChoice is the status menu entry for todo.
func TodoChoice(color bool) string { return styled("x", red, color) + " todo" }

// DoneChoice is the status menu entry for done.
func DoneChoice(color bool) string { return styled("✓", green, color) + " done" }

// OtherChoice is the status menu entry for other.
func OtherChoice(color bool) string { return styled("~", yellow, color) + " other" }

func styled(text string, color lipgloss.TerminalColor, enabled bool) string {
	r := plain
	if enabled {
		r = colored
	}
	return r.NewStyle().Foreground(color).Render(text)
}
