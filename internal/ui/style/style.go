// Package style holds the colours and icons shared by every terminal surface.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Mist   = lipgloss.Color("#F6F7FB")
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
	Circle  = "○"
	Pointer = "›"
)

// Text styles used by the chooser and command listings.
var (
	Title    = lipgloss.NewStyle().Bold(true).Foreground(Iris)
	Selected = lipgloss.NewStyle().Bold(true).Foreground(Iris)
	Muted    = lipgloss.NewStyle().Foreground(Slate)
	Success  = lipgloss.NewStyle().Foreground(Green)
)
