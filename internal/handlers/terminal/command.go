package terminal

import (
	"github.com/pterm/pterm"
)

// Menu labels offered to the player
const (
	ActionRoll   = "Roll dice"
	ActionFreeze = "Freeze or release a die"
	ActionScore  = "Score a category"
	ActionQuit   = "Quit"
	ActionBack   = "Back"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_prompter.go github.com/KirkDiggler/yahtzee/internal/handlers/terminal Prompter

// Prompter asks the player to pick one of several options
type Prompter interface {
	// Select shows options under prompt and returns the chosen one
	Select(prompt string, options []string) (string, error)
}

// PtermPrompter renders an interactive arrow-key menu
type PtermPrompter struct{}

// Select implements Prompter
func (PtermPrompter) Select(prompt string, options []string) (string, error) {
	return pterm.DefaultInteractiveSelect.
		WithDefaultText(prompt).
		WithOptions(options).
		WithMaxHeight(len(options)).
		Show()
}

// menuOption pairs a label with the value it stands for
type menuOption[T any] struct {
	label string
	value T
}

// choose prompts with the labels of options and returns the chosen value
func choose[T any](p Prompter, prompt string, options []menuOption[T]) (T, error) {
	var zero T

	labels := make([]string, len(options))
	for i, o := range options {
		labels[i] = o.label
	}

	picked, err := p.Select(prompt, labels)
	if err != nil {
		return zero, err
	}

	for _, o := range options {
		if o.label == picked {
			return o.value, nil
		}
	}
	return zero, ErrUnknownOption
}
