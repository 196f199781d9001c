package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"runcalc/internal/input"
)

// numberField is a text input that only accepts digits
type numberField struct {
	input textinput.Model
}

func newNumberField(placeholder string, limit int) numberField {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Width = limit
	ti.Prompt = ""
	return numberField{input: ti}
}

// Int returns the field value, with empty or invalid text counting as 0
func (f numberField) Int() int {
	return input.Int(f.input.Value())
}

func (f *numberField) focus() tea.Cmd {
	return f.input.Focus()
}

func (f *numberField) blur() {
	f.input.Blur()
}

// update passes messages to the input, dropping keys with non-digit characters
func (f numberField) update(msg tea.Msg) (numberField, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyRunes {
		for _, r := range key.Runes {
			if r < '0' || r > '9' {
				return f, nil
			}
		}
	}

	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return f, cmd
}

func (f numberField) View() string {
	return "[" + f.input.View() + "]"
}

// focusRing tracks which of n controls has keyboard focus
type focusRing struct {
	index int
	size  int
}

func (r focusRing) next() focusRing {
	r.index = (r.index + 1) % r.size
	return r
}

func (r focusRing) prev() focusRing {
	r.index = (r.index + r.size - 1) % r.size
	return r
}

// cycle moves an index over n choices by delta, wrapping around
func cycle(index, delta, n int) int {
	return ((index+delta)%n + n) % n
}
