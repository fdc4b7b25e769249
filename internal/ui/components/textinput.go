package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/multiz/internal/ui/theme"
)

// AnswerInput wraps bubbles/textinput for numeric answers. Once locked it
// ignores keystrokes and shows whether the answer was right.
type AnswerInput struct {
	Model   textinput.Model
	locked  bool
	correct bool
}

// NewAnswerInput creates a focused input accepting up to maxDigits digits.
func NewAnswerInput(placeholder string, maxDigits int) AnswerInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "› "
	ti.Focus()
	if maxDigits > 0 {
		ti.CharLimit = maxDigits
	}
	return AnswerInput{Model: ti}
}

// Init returns the initial command.
func (a AnswerInput) Init() tea.Cmd {
	return a.Model.Focus()
}

// Update handles messages. Non-digit printable keys are dropped.
func (a AnswerInput) Update(msg tea.Msg) (AnswerInput, tea.Cmd) {
	if a.locked {
		return a, nil
	}
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		key := kmsg.String()
		if len(key) == 1 && (key[0] < '0' || key[0] > '9') {
			return a, nil
		}
	}

	var cmd tea.Cmd
	a.Model, cmd = a.Model.Update(msg)
	return a, cmd
}

// View renders the input with the verdict mark once locked.
func (a AnswerInput) View() string {
	view := a.Model.View()
	if a.locked {
		if a.correct {
			view += " " + theme.Correct.Render("✓")
		} else {
			view += " " + theme.Incorrect.Render("✗")
		}
	}
	return view
}

// Value returns the current input value.
func (a AnswerInput) Value() string {
	return a.Model.Value()
}

// Lock freezes the input and records the verdict.
func (a *AnswerInput) Lock(correct bool) {
	a.locked = true
	a.correct = correct
	a.Model.Blur()
}

// Locked reports whether the input has been locked.
func (a AnswerInput) Locked() bool {
	return a.locked
}
