package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Accent color shared by the form theme
	Accent = lipgloss.Color("#7D56F4")

	// Progress verb styling ("Compiling", "Finished", ...)
	StatusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true)

	// Warning styling
	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFB000")).
			Bold(true)

	// Error styling
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true)

	// Subtle text styling
	SubtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// statusWidth right-aligns progress verbs the way cargo does.
const statusWidth = 12

// Status writes a progress line such as "   Compiling demo v0.1.0".
func Status(w io.Writer, verb, format string, args ...any) {
	_, _ = fmt.Fprintf(w, "%s %s\n", StatusStyle.Render(fmt.Sprintf("%*s", statusWidth, verb)), fmt.Sprintf(format, args...))
}

// Warn writes a "warning:" line.
func Warn(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, "%s %s\n", WarningStyle.Render("warning:"), fmt.Sprintf(format, args...))
}

// Error writes an "error:" line.
func Error(w io.Writer, msg string) {
	_, _ = fmt.Fprintf(w, "%s %s\n", ErrorStyle.Render("error:"), msg)
}
