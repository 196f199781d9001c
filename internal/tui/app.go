package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"runcalc/internal/analysis"
	"runcalc/internal/config"
	"runcalc/internal/service"
)

// Screen identifiers
type Screen int

const (
	ScreenPaceToTime Screen = iota
	ScreenTimeToPace
	ScreenVDOT
	ScreenHelp
)

// chromeHeight is the number of lines taken by the header, nav and footer
const chromeHeight = 7

// calculatorScreens are the tabs cycled by [ and ]
var calculatorScreens = []Screen{ScreenPaceToTime, ScreenTimeToPace, ScreenVDOT}

// App is the root Bubble Tea model
type App struct {
	screen     Screen
	prevScreen Screen

	// Screen models
	paceToTime PaceToTimeModel
	timeToPace TimeToPaceModel
	vdot       VDOTModel
	help       HelpModel

	// Window dimensions
	width  int
	height int
}

// NewApp creates a new App showing the tab and defaults from display
func NewApp(calc *service.CalculatorService, display config.DisplayConfig) *App {
	return &App{
		screen:     screenForTab(display.Tab),
		paceToTime: NewPaceToTimeModel(calc, display.Cadence),
		timeToPace: NewTimeToPaceModel(calc, parseOr(display.Distance, analysis.Distance5K)),
		vdot:       NewVDOTModel(calc, parseOr(display.VDOTDistance, analysis.Distance5K)),
		help:       NewHelpModel(),
	}
}

func screenForTab(tab string) Screen {
	switch tab {
	case config.TabTimeToPace:
		return ScreenTimeToPace
	case config.TabVDOT:
		return ScreenVDOT
	default:
		return ScreenPaceToTime
	}
}

func parseOr(s string, fallback analysis.Distance) analysis.Distance {
	d, err := analysis.ParseDistance(s)
	if err != nil {
		return fallback
	}
	return d
}

// Screen returns the screen currently shown
func (a *App) Screen() Screen {
	return a.screen
}

// Init initializes the app
func (a *App) Init() tea.Cmd {
	return a.focusScreen()
}

// Update handles messages
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return a, tea.Quit
		case "f1":
			return a, a.switchTo(ScreenPaceToTime)
		case "f2":
			return a, a.switchTo(ScreenTimeToPace)
		case "f3":
			return a, a.switchTo(ScreenVDOT)
		case "]":
			return a, a.switchTo(a.neighbour(1))
		case "[":
			return a, a.switchTo(a.neighbour(-1))
		case "?":
			if a.screen != ScreenHelp {
				a.prevScreen = a.screen
				a.screen = ScreenHelp
			}
			return a, nil
		case "esc":
			if a.screen == ScreenHelp {
				a.screen = a.prevScreen
				return a, a.focusScreen()
			}
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help = a.help.SetSize(msg.Width, msg.Height-chromeHeight)
	}

	// Delegate to current screen
	var cmd tea.Cmd
	switch a.screen {
	case ScreenPaceToTime:
		var m tea.Model
		m, cmd = a.paceToTime.Update(msg)
		a.paceToTime = m.(PaceToTimeModel)
	case ScreenTimeToPace:
		var m tea.Model
		m, cmd = a.timeToPace.Update(msg)
		a.timeToPace = m.(TimeToPaceModel)
	case ScreenVDOT:
		var m tea.Model
		m, cmd = a.vdot.Update(msg)
		a.vdot = m.(VDOTModel)
	case ScreenHelp:
		var m tea.Model
		m, cmd = a.help.Update(msg)
		a.help = m.(HelpModel)
	}

	return a, cmd
}

func (a *App) switchTo(s Screen) tea.Cmd {
	a.screen = s
	return a.focusScreen()
}

// neighbour returns the calculator tab delta steps away from the current one
func (a *App) neighbour(delta int) Screen {
	current := a.screen
	if current == ScreenHelp {
		current = a.prevScreen
	}
	for i, s := range calculatorScreens {
		if s == current {
			return calculatorScreens[cycle(i, delta, len(calculatorScreens))]
		}
	}
	return ScreenPaceToTime
}

// focusScreen restores input focus on the current tab's focused control
func (a *App) focusScreen() tea.Cmd {
	var m tea.Model
	var cmd tea.Cmd
	switch a.screen {
	case ScreenPaceToTime:
		m, cmd = a.paceToTime.setFocus(a.paceToTime.focus)
		a.paceToTime = m.(PaceToTimeModel)
	case ScreenTimeToPace:
		m, cmd = a.timeToPace.setFocus(a.timeToPace.focus)
		a.timeToPace = m.(TimeToPaceModel)
	case ScreenVDOT:
		m, cmd = a.vdot.setFocus(a.vdot.focus)
		a.vdot = m.(VDOTModel)
	}
	return cmd
}

// View renders the app
func (a *App) View() string {
	header := a.renderHeader()
	nav := a.renderNav()

	var content string
	switch a.screen {
	case ScreenPaceToTime:
		content = a.paceToTime.View()
	case ScreenTimeToPace:
		content = a.timeToPace.View()
	case ScreenVDOT:
		content = a.vdot.View()
	case ScreenHelp:
		content = a.help.View()
	}

	footer := a.renderFooter()

	return lipgloss.JoinVertical(lipgloss.Left, header, nav, content, footer)
}

func (a *App) renderHeader() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Render("Running Calculator"),
		subtitleStyle.Render("Calculating your pain, one step at a time."),
	)
}

func (a *App) renderNav() string {
	items := []struct {
		key    string
		label  string
		screen Screen
	}{
		{"F1", "Pace → Time", ScreenPaceToTime},
		{"F2", "Time → Pace", ScreenTimeToPace},
		{"F3", "VDOT", ScreenVDOT},
		{"?", "Help", ScreenHelp},
	}

	var nav string
	for i, item := range items {
		if i > 0 {
			nav += "  "
		}

		label := "[" + item.key + "] " + item.label
		if a.screen == item.screen {
			nav += navActiveStyle.Render(label)
		} else {
			nav += navInactiveStyle.Render(label)
		}
	}

	nav += "  " + navInactiveStyle.Render("[q] Quit")

	return navStyle.Render(nav)
}

func (a *App) renderFooter() string {
	if a.screen == ScreenHelp {
		return statusStyle.Render("esc to go back")
	}
	return statusStyle.Render("tab: next field  ←/→: adjust  enter: calculate  [ ]: switch tab")
}
