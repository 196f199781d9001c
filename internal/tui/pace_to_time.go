package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"runcalc/internal/config"
	"runcalc/internal/service"
)

const (
	paceFocusMinutes = iota
	paceFocusSeconds
	paceFocusCadence
)

// PaceToTimeModel projects race times from a target pace
type PaceToTimeModel struct {
	calc    *service.CalculatorService
	minutes numberField
	seconds numberField
	cadence int
	focus   focusRing
	result  service.RaceTimesData
}

// NewPaceToTimeModel creates a new pace to time model
func NewPaceToTimeModel(calc *service.CalculatorService, cadence int) PaceToTimeModel {
	if cadence < config.MinCadence || cadence > config.MaxCadence {
		cadence = config.DefaultCadence
	}

	m := PaceToTimeModel{
		calc:    calc,
		minutes: newNumberField("5", 2),
		seconds: newNumberField("00", 2),
		cadence: cadence,
		focus:   focusRing{size: 3},
	}
	m.minutes.focus()
	return m
}

// Init initializes the screen
func (m PaceToTimeModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m PaceToTimeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateField(msg)
	}

	switch keyMsg.String() {
	case "tab", "down":
		return m.setFocus(m.focus.next())
	case "shift+tab", "up":
		return m.setFocus(m.focus.prev())
	case "enter":
		m.result = m.calc.RaceTimes(m.minutes.Int(), m.seconds.Int(), m.cadence)
		return m, nil
	}

	if m.focus.index == paceFocusCadence {
		switch keyMsg.String() {
		case "left", "h", "-":
			m = m.setCadence(m.cadence - 1)
		case "right", "l", "+":
			m = m.setCadence(m.cadence + 1)
		}
		return m, nil
	}
	return m.updateField(msg)
}

// updateField forwards a message to the focused pace input
func (m PaceToTimeModel) updateField(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus.index {
	case paceFocusMinutes:
		m.minutes, cmd = m.minutes.update(msg)
	case paceFocusSeconds:
		m.seconds, cmd = m.seconds.update(msg)
	}
	return m, cmd
}

// setCadence moves the cadence slider, refreshing the stride if results are showing
func (m PaceToTimeModel) setCadence(cadence int) PaceToTimeModel {
	m.cadence = max(config.MinCadence, min(config.MaxCadence, cadence))
	if m.result.OK {
		m.result = m.calc.RaceTimes(m.minutes.Int(), m.seconds.Int(), m.cadence)
	}
	return m
}

func (m PaceToTimeModel) setFocus(ring focusRing) (tea.Model, tea.Cmd) {
	m.focus = ring
	m.minutes.blur()
	m.seconds.blur()

	var cmd tea.Cmd
	switch ring.index {
	case paceFocusMinutes:
		cmd = m.minutes.focus()
	case paceFocusSeconds:
		cmd = m.seconds.focus()
	}
	return m, cmd
}

// View renders the screen
func (m PaceToTimeModel) View() string {
	var sections []string

	sections = append(sections, cardTitleStyle.Render("Pace to Times"))
	sections = append(sections, helpDescStyle.Render("Enter target pace and see projected finish times"))
	sections = append(sections, "")

	sections = append(sections, renderLabel("Your Pace per km", m.focus.index != paceFocusCadence))
	sections = append(sections, fmt.Sprintf("    %s : %s /km", m.minutes.View(), m.seconds.View()))
	sections = append(sections, "")

	sections = append(sections, renderLabel("Cadence (spm)", m.focus.index == paceFocusCadence))
	percent := float64(m.cadence-config.MinCadence) / float64(config.MaxCadence-config.MinCadence)
	sections = append(sections, fmt.Sprintf("    %d %s %d   %s spm",
		config.MinCadence, RenderProgressBar(percent, 30), config.MaxCadence,
		resultValueStyle.Render(fmt.Sprintf("%d", m.cadence))))

	if m.result.OK {
		sections = append(sections, "")
		sections = append(sections, m.renderResults())
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m PaceToTimeModel) renderResults() string {
	var lines []string

	lines = append(lines, cardTitleStyle.Render("Race Times"))
	for _, row := range m.result.Times {
		style := shortDistanceStyle
		if row.Distance.Kilometers() > 10 {
			style = longDistanceStyle
		}
		lines = append(lines, fmt.Sprintf("  %s %s", style.Render(fmt.Sprintf("%-6s", row.Label)), resultValueStyle.Render(row.Time)))
	}

	if m.result.HasStride {
		lines = append(lines, "")
		lines = append(lines, fmt.Sprintf("  %s %s  %s",
			labelStyle.Render("Stride"),
			resultValueStyle.Render(m.result.StrideString),
			helpDescStyle.Render(fmt.Sprintf("@ %d steps/min", m.result.Cadence))))
	}

	return cardStyle.Render(strings.Join(lines, "\n"))
}
