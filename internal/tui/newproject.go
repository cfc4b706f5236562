package tui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/jakoblorz/carton/internal/models"
)

// ErrAborted is returned when the user cancels a prompt.
var ErrAborted = errors.New("aborted by user")

// KindPrompt asks which template a new project should use.
type KindPrompt struct {
	theme   *huh.Theme
	options []tea.ProgramOption
}

// NewKindPrompt constructs a prompt with the carton theme.
func NewKindPrompt() *KindPrompt {
	return &KindPrompt{
		theme:   NewHuhTheme(),
		options: []tea.ProgramOption{tea.WithAltScreen()},
	}
}

// Form builds the select form bound to kind. It is separate from Run so
// the form can be driven without a terminal.
func (p *KindPrompt) Form(path string, kind *models.ProjectKind) *huh.Form {
	keyMap := huh.NewDefaultKeyMap()
	keyMap.Select.Filter.SetEnabled(false)
	keyMap.Select.Submit.SetKeys("enter", " ")
	keyMap.Select.Submit.SetHelp("space/enter", "create")

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[models.ProjectKind]().
				Options(
					huh.NewOption(fmt.Sprintf("bin: %s with src/main.c", models.KindBinary.Describe()), models.KindBinary),
					huh.NewOption(fmt.Sprintf("lib: %s with include/ and tests/", models.KindLibrary.Describe()), models.KindLibrary),
				).
				Value(kind),
		).
			Title("Project Template").
			Description(fmt.Sprintf("Creating %s", path)),
	).
		WithTheme(p.theme).
		WithShowHelp(true).
		WithProgramOptions(p.options...).
		WithKeyMap(keyMap)
}

// Run shows the prompt and returns the chosen kind.
func (p *KindPrompt) Run(path string) (models.ProjectKind, error) {
	kind := models.KindBinary
	if err := p.Form(path, &kind).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", ErrAborted
		}
		return "", err
	}
	return kind, nil
}
