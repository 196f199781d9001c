package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"runcalc/internal/analysis"
	"runcalc/internal/service"
)

const (
	timeFocusDistance = iota
	timeFocusHours
	timeFocusMinutes
	timeFocusSeconds
)

// clockFields is the hours/minutes/seconds entry shared by the time based tabs
type clockFields struct {
	hours   numberField
	minutes numberField
	seconds numberField
}

func newClockFields() clockFields {
	return clockFields{
		hours:   newNumberField("0", 2),
		minutes: newNumberField("00", 2),
		seconds: newNumberField("00", 2),
	}
}

func (c clockFields) values() (int, int, int) {
	return c.hours.Int(), c.minutes.Int(), c.seconds.Int()
}

func (c *clockFields) blur() {
	c.hours.blur()
	c.minutes.blur()
	c.seconds.blur()
}

// field returns the input at offset 0, 1 or 2 (hours, minutes, seconds)
func (c *clockFields) field(offset int) *numberField {
	switch offset {
	case 0:
		return &c.hours
	case 1:
		return &c.minutes
	default:
		return &c.seconds
	}
}

func (c clockFields) View() string {
	return fmt.Sprintf("    %s : %s : %s", c.hours.View(), c.minutes.View(), c.seconds.View())
}

// renderDistanceChoice renders the distance selector line
func renderDistanceChoice(d analysis.Distance, focused bool) string {
	choice := resultValueStyle.Render(d.Label())
	if focused {
		return "    ◂ " + choice + " ▸"
	}
	return "      " + choice
}

// TimeToPaceModel finds the pace required for a target time
type TimeToPaceModel struct {
	calc      *service.CalculatorService
	distances []analysis.Distance
	distance  int
	clock     clockFields
	focus     focusRing
	result    service.RequiredPaceData
	submitted bool
}

// NewTimeToPaceModel creates a new time to pace model starting at the given distance
func NewTimeToPaceModel(calc *service.CalculatorService, d analysis.Distance) TimeToPaceModel {
	m := TimeToPaceModel{
		calc:      calc,
		distances: analysis.PaceDistances(),
		clock:     newClockFields(),
		focus:     focusRing{size: 4},
	}
	for i, pd := range m.distances {
		if pd == d {
			m.distance = i
		}
	}
	return m
}

// Init initializes the screen
func (m TimeToPaceModel) Init() tea.Cmd {
	return nil
}

// Distance returns the selected distance
func (m TimeToPaceModel) Distance() analysis.Distance {
	return m.distances[m.distance]
}

// Update handles messages
func (m TimeToPaceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
		return m.calculate(), nil
	}

	if m.focus.index == timeFocusDistance {
		switch keyMsg.String() {
		case "left", "h":
			m.distance = cycle(m.distance, -1, len(m.distances))
		case "right", "l":
			m.distance = cycle(m.distance, 1, len(m.distances))
		default:
			return m, nil
		}
		if m.submitted {
			m = m.calculate()
		}
		return m, nil
	}

	return m.updateField(msg)
}

func (m TimeToPaceModel) updateField(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.focus.index == timeFocusDistance {
		return m, nil
	}
	f := m.clock.field(m.focus.index - timeFocusHours)
	var cmd tea.Cmd
	*f, cmd = f.update(msg)
	return m, cmd
}

func (m TimeToPaceModel) calculate() TimeToPaceModel {
	hours, minutes, seconds := m.clock.values()
	m.result = m.calc.RequiredPace(hours, minutes, seconds, m.Distance())
	m.submitted = true
	return m
}

func (m TimeToPaceModel) setFocus(ring focusRing) (tea.Model, tea.Cmd) {
	m.focus = ring
	m.clock.blur()
	if ring.index == timeFocusDistance {
		return m, nil
	}
	return m, m.clock.field(ring.index - timeFocusHours).focus()
}

// View renders the screen
func (m TimeToPaceModel) View() string {
	var sections []string

	sections = append(sections, cardTitleStyle.Render("Time to Pace"))
	sections = append(sections, helpDescStyle.Render("Enter a target time and see the pace you need"))
	sections = append(sections, "")

	sections = append(sections, renderLabel("Distance", m.focus.index == timeFocusDistance))
	sections = append(sections, renderDistanceChoice(m.Distance(), m.focus.index == timeFocusDistance))
	sections = append(sections, "")

	sections = append(sections, renderLabel("Target Time (h:mm:ss)", m.focus.index != timeFocusDistance))
	sections = append(sections, m.clock.View())

	switch {
	case m.result.OK:
		sections = append(sections, "")
		sections = append(sections, m.renderResult())
	case m.submitted:
		sections = append(sections, "")
		sections = append(sections, errorStyle.Render("Enter a target time above zero"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m TimeToPaceModel) renderResult() string {
	lines := []string{
		cardTitleStyle.Render("Required Pace"),
		fmt.Sprintf("  %s  %s", resultValueStyle.Render(m.result.Pace), helpDescStyle.Render(fmt.Sprintf("for %s in %s", m.result.Distance.Label(), m.result.Time))),
	}
	return cardStyle.Render(strings.Join(lines, "\n"))
}
