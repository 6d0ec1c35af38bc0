// Package style provides shared UI styling primitives including brand colors
// and icons for consistent visual presentation across the CLI.
package style

import "github.com/charmbracelet/lipgloss"

// Brand Colors.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Dot     = "●"
	Arrow   = "→"
)

// Styles are the text styles of command output.
type Styles struct {
	Path    lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Tag     lipgloss.Style
}

// New creates the command output styles for r.
func New(r *lipgloss.Renderer) Styles {
	return Styles{
		Path:    r.NewStyle().Bold(true),
		Muted:   r.NewStyle().Foreground(Slate),
		Success: r.NewStyle().Foreground(Green),
		Tag:     r.NewStyle().Foreground(Iris),
	}
}
