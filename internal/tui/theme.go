package tui

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// NewHuhTheme returns the form theme used by interactive prompts.
func NewHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = t.Focused.Title.Foreground(Accent).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(lipgloss.Color("#888888"))
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(Accent)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(lipgloss.Color("#04B575"))
	t.Focused.Option = t.Focused.Option.Foreground(lipgloss.Color("#DDDDDD"))
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(lipgloss.Color("#FF0000"))
	t.Focused.Base = t.Focused.Base.BorderForeground(Accent)

	t.Blurred = t.Focused
	t.Blurred.Base = t.Blurred.Base.BorderStyle(lipgloss.HiddenBorder())

	return t
}
