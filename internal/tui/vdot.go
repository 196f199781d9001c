package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"runcalc/internal/analysis"
	"runcalc/internal/service"
)

// VDOTModel scores a race result and projects equivalent race times
type VDOTModel struct {
	calc      *service.CalculatorService
	distances []analysis.Distance
	distance  int
	clock     clockFields
	focus     focusRing
	result    service.VDOTData
	submitted bool
}

// NewVDOTModel creates a new VDOT model starting at the given race distance
func NewVDOTModel(calc *service.CalculatorService, d analysis.Distance) VDOTModel {
	m := VDOTModel{
		calc:      calc,
		distances: analysis.VDOTDistances(),
		clock:     newClockFields(),
		focus:     focusRing{size: 4},
	}
	for i, vd := range m.distances {
		if vd == d {
			m.distance = i
		}
	}
	return m
}

// Init initializes the screen
func (m VDOTModel) Init() tea.Cmd {
	return nil
}

// Distance returns the selected race distance
func (m VDOTModel) Distance() analysis.Distance {
	return m.distances[m.distance]
}

// Update handles messages
func (m VDOTModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

func (m VDOTModel) updateField(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.focus.index == timeFocusDistance {
		return m, nil
	}
	f := m.clock.field(m.focus.index - timeFocusHours)
	var cmd tea.Cmd
	*f, cmd = f.update(msg)
	return m, cmd
}

func (m VDOTModel) calculate() VDOTModel {
	hours, minutes, seconds := m.clock.values()
	m.result = m.calc.VDOTProjection(hours, minutes, seconds, m.Distance())
	m.submitted = true
	return m
}

func (m VDOTModel) setFocus(ring focusRing) (tea.Model, tea.Cmd) {
	m.focus = ring
	m.clock.blur()
	if ring.index == timeFocusDistance {
		return m, nil
	}
	return m, m.clock.field(ring.index - timeFocusHours).focus()
}

// View renders the screen
func (m VDOTModel) View() string {
	var sections []string

	sections = append(sections, cardTitleStyle.Render("VDOT"))
	sections = append(sections, helpDescStyle.Render("Enter a race result to get your VDOT and equivalent times"))
	sections = append(sections, "")

	sections = append(sections, renderLabel("Race Distance", m.focus.index == timeFocusDistance))
	sections = append(sections, renderDistanceChoice(m.Distance(), m.focus.index == timeFocusDistance))
	sections = append(sections, "")

	sections = append(sections, renderLabel("Race Time (h:mm:ss)", m.focus.index != timeFocusDistance))
	sections = append(sections, m.clock.View())

	switch {
	case m.result.OK:
		sections = append(sections, "")
		sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top, m.renderResults(), " ", m.renderChart()))
	case m.submitted:
		sections = append(sections, "")
		sections = append(sections, errorStyle.Render("Enter a race time above zero"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m VDOTModel) renderResults() string {
	var lines []string

	lines = append(lines, cardTitleStyle.Render("Your VDOT"))
	lines = append(lines, fmt.Sprintf("  %s  %s",
		resultValueStyle.Render(fmt.Sprintf("%.1f", m.result.Score)),
		helpDescStyle.Render(m.result.Label)))
	lines = append(lines, "")
	lines = append(lines, labelStyle.Render("Race Predictions"))

	for _, p := range m.result.Projections {
		style := shortDistanceStyle
		if p.Distance.Kilometers() > 10 {
			style = longDistanceStyle
		}
		row := fmt.Sprintf("  %s %s  %s",
			style.Render(fmt.Sprintf("%-5s", p.Label)),
			resultValueStyle.Render(fmt.Sprintf("%8s", p.Time)),
			helpDescStyle.Render(p.Pace))
		if !p.Converged {
			row += " " + errorStyle.Render("~")
		}
		lines = append(lines, row)
	}

	return cardStyle.Render(strings.Join(lines, "\n"))
}

// renderChart plots the solver error for the longest projection trace
func (m VDOTModel) renderChart() string {
	var trace service.VDOTProjection
	for _, p := range m.result.Projections {
		if len(p.Solution.Iterations) > len(trace.Solution.Iterations) {
			trace = p
		}
	}
	if len(trace.Solution.Iterations) < 2 {
		return ""
	}

	title := cardTitleStyle.Render(fmt.Sprintf("Solver Convergence - %s", trace.Label))
	graph := asciigraph.Plot(trace.Solution.Errors(),
		asciigraph.Height(6),
		asciigraph.Width(36),
		asciigraph.Precision(2),
	)
	caption := helpDescStyle.Render(fmt.Sprintf("%d steps, |error| in VDOT points", len(trace.Solution.Iterations)))

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, graph, caption))
}
