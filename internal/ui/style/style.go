// Package style provides the colour palette and icons shared by the log
// handler and the report renderer.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Slate   = lipgloss.Color("#667085")
	Green   = lipgloss.Color("#22A06B")
	Red     = lipgloss.Color("#D93025")
	Yellow  = lipgloss.Color("#F59E0B")
	Blue    = lipgloss.Color("#2F6FEB")
	Magenta = lipgloss.Color("#B43FD4")
)

// Icons.
const (
	Cross   = "✗"
	Warning = "!"
)
