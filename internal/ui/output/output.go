// Package output provides utilities for creating terminal outputs with a
// consistent color profile across the CLI.
package output

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ColorProfile returns the color profile to use for terminal output.
// It returns Ascii if NO_COLOR is set and detects the terminal's capabilities otherwise.
func ColorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// New creates a new termenv.Output for w.
// If w is nil, os.Stderr is used.
func New(w io.Writer, opts ...termenv.OutputOption) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}

	opts = append(opts,
		termenv.WithProfile(ColorProfile()),
		termenv.WithTTY(true),
	)

	return termenv.NewOutput(w, opts...)
}

// Renderer creates a lipgloss renderer for w that shares the color profile of New.
// If w is nil, os.Stdout is used.
func Renderer(w io.Writer) *lipgloss.Renderer {
	if w == nil {
		w = os.Stdout
	}
	return lipgloss.NewRenderer(w, termenv.WithProfile(ColorProfile()))
}
