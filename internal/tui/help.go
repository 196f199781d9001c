package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HelpModel is the help screen model. Once the window size is known the
// content scrolls inside a viewport.
type HelpModel struct {
	viewport viewport.Model
	ready    bool
}

// NewHelpModel creates a new help model
func NewHelpModel() HelpModel {
	return HelpModel{}
}

// Init initializes the help screen
func (m HelpModel) Init() tea.Cmd {
	return nil
}

// SetSize fits the scrollable area to the space below the app chrome
func (m HelpModel) SetSize(width, height int) HelpModel {
	if width <= 0 || height <= 0 {
		return m
	}
	if !m.ready {
		m.viewport = viewport.New(width, height)
		m.viewport.SetContent(m.content())
		m.ready = true
		return m
	}
	m.viewport.Width = width
	m.viewport.Height = height
	return m
}

// Update handles messages
func (m HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if !m.ready {
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the help screen
func (m HelpModel) View() string {
	if m.ready {
		return m.viewport.View()
	}
	return m.content()
}

func (m HelpModel) content() string {
	var sections []string

	title := cardTitleStyle.Render("Keyboard Shortcuts")
	sections = append(sections, title)

	navSection := m.renderSection("Navigation", []keyHelp{
		{"F1", "Pace to time"},
		{"F2", "Time to pace"},
		{"F3", "VDOT"},
		{"[ / ]", "Previous / next tab"},
		{"?", "Help (this screen)"},
		{"q", "Quit"},
		{"esc", "Back / close help"},
	})
	sections = append(sections, navSection)

	formSection := m.renderSection("Forms", []keyHelp{
		{"tab / down", "Next field"},
		{"shift+tab / up", "Previous field"},
		{"0-9", "Enter a value"},
		{"left / right", "Change distance or cadence"},
		{"enter", "Calculate"},
	})
	sections = append(sections, formSection)

	scrollSection := m.renderSection("Help Screen", []keyHelp{
		{"j / k", "Scroll down / up"},
		{"pgdn / pgup", "Page down / up"},
	})
	sections = append(sections, scrollSection)

	sections = append(sections, m.renderTermsHelp())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

type keyHelp struct {
	key  string
	desc string
}

func (m HelpModel) renderSection(title string, keys []keyHelp) string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, labelStyle.Render(title))

	for _, k := range keys {
		lines = append(lines, "  "+RenderKeyHelp(k.key, k.desc))
	}

	return strings.Join(lines, "\n")
}

func (m HelpModel) renderTermsHelp() string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, labelStyle.Render("Terms Explained"))
	lines = append(lines, "")

	terms := []struct {
		name string
		desc string
	}{
		{"Pace", "Minutes and seconds per kilometer."},
		{"Cadence", "Steps per minute. Stride length = meters per minute / cadence."},
		{"VDOT", "Jack Daniels' running fitness score from a race result."},
		{"Race Predictions", "Equivalent times at the same VDOT, solved numerically."},
		{"~", "Solver stopped before converging; the time is its last estimate."},
	}

	for _, term := range terms {
		lines = append(lines, "  "+helpKeyStyle.Render(term.name))
		lines = append(lines, "  "+helpDescStyle.Render(term.desc))
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}
