package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"runcalc/internal/analysis"
	"runcalc/internal/config"
	"runcalc/internal/logging"
	"runcalc/internal/service"
)

func newCalc() *service.CalculatorService {
	return service.NewCalculatorService(logging.Discard())
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyTab      = tea.KeyMsg{Type: tea.KeyTab}
	keyShiftTab = tea.KeyMsg{Type: tea.KeyShiftTab}
	keyEnter    = tea.KeyMsg{Type: tea.KeyEnter}
	keyLeft     = tea.KeyMsg{Type: tea.KeyLeft}
	keyRight    = tea.KeyMsg{Type: tea.KeyRight}
	keyEsc      = tea.KeyMsg{Type: tea.KeyEsc}
)

// press sends each message to the model in turn
func press(m tea.Model, msgs ...tea.Msg) tea.Model {
	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}
	return m
}

func TestPaceToTime_Results(t *testing.T) {
	m := press(NewPaceToTimeModel(newCalc(), 180), runes("5"), keyTab, runes("00"), keyEnter)
	view := m.View()

	assert.Contains(t, view, "Race Times")
	assert.Contains(t, view, "25:00")
	assert.Contains(t, view, "50:00")
	assert.Contains(t, view, "1:45:29")
	assert.Contains(t, view, "111.1 cm")
}

func TestPaceToTime_NoResultForZeroPace(t *testing.T) {
	m := press(NewPaceToTimeModel(newCalc(), 180), keyEnter)
	assert.NotContains(t, m.View(), "Race Times")
}

func TestPaceToTime_IgnoresNonDigits(t *testing.T) {
	m := press(NewPaceToTimeModel(newCalc(), 180), runes("x"), runes("4"), keyEnter)
	pm := m.(PaceToTimeModel)

	assert.Equal(t, 4, pm.minutes.Int())
	assert.True(t, pm.result.OK)
	assert.Equal(t, "4:00/km", pm.result.Pace)
}

func TestPaceToTime_Cadence(t *testing.T) {
	m := press(NewPaceToTimeModel(newCalc(), 180), runes("5"), keyEnter, keyTab, keyTab, keyRight)
	pm := m.(PaceToTimeModel)

	assert.Equal(t, 181, pm.cadence)
	assert.Equal(t, 181, pm.result.Cadence)
	assert.Contains(t, pm.View(), "110.5 cm")
}

func TestPaceToTime_CadenceClamped(t *testing.T) {
	m := press(NewPaceToTimeModel(newCalc(), config.MinCadence), keyShiftTab, keyLeft)
	assert.Equal(t, config.MinCadence, m.(PaceToTimeModel).cadence)

	m = press(NewPaceToTimeModel(newCalc(), config.MaxCadence), keyShiftTab, keyRight)
	assert.Equal(t, config.MaxCadence, m.(PaceToTimeModel).cadence)

	// Out of range cadence falls back to the default
	assert.Equal(t, config.DefaultCadence, NewPaceToTimeModel(newCalc(), 0).cadence)
}

func TestTimeToPace(t *testing.T) {
	m := press(NewTimeToPaceModel(newCalc(), analysis.Distance5K),
		keyTab, keyTab, runes("25"), keyEnter)
	tm := m.(TimeToPaceModel)

	require.True(t, tm.result.OK)
	assert.Equal(t, "5:00/km", tm.result.Pace)
	assert.Contains(t, tm.View(), "Required Pace")
	assert.Contains(t, tm.View(), "5:00/km")
}

func TestTimeToPace_DistanceChangeRecalculates(t *testing.T) {
	m := press(NewTimeToPaceModel(newCalc(), analysis.Distance5K),
		keyTab, keyTab, runes("25"), keyEnter, keyShiftTab, keyShiftTab, keyRight)
	tm := m.(TimeToPaceModel)

	assert.Equal(t, analysis.Distance10K, tm.Distance())
	assert.Equal(t, "2:30/km", tm.result.Pace)
}

func TestTimeToPace_DistanceWraps(t *testing.T) {
	m := press(NewTimeToPaceModel(newCalc(), analysis.Distance100m), keyLeft)
	assert.Equal(t, analysis.DistanceFull, m.(TimeToPaceModel).Distance())

	m = press(m, keyRight)
	assert.Equal(t, analysis.Distance100m, m.(TimeToPaceModel).Distance())
}

func TestTimeToPace_ZeroTime(t *testing.T) {
	m := press(NewTimeToPaceModel(newCalc(), analysis.DistanceHalf), keyEnter)
	view := m.View()

	assert.NotContains(t, view, "Required Pace")
	assert.Contains(t, view, "Enter a target time above zero")
}

func TestVDOT(t *testing.T) {
	m := press(NewVDOTModel(newCalc(), analysis.Distance5K),
		keyTab, keyTab, runes("20"), keyEnter)
	vm := m.(VDOTModel)

	require.True(t, vm.result.OK)
	assert.Equal(t, 49.8, vm.result.Score)
	require.Len(t, vm.result.Projections, 4)
	assert.Equal(t, "20:00", vm.result.Projections[0].Time)

	view := vm.View()
	assert.Contains(t, view, "49.8")
	assert.Contains(t, view, "Advanced Recreational")
	assert.Contains(t, view, "Solver Convergence")
}

func TestVDOT_OnlyVDOTDistances(t *testing.T) {
	m := NewVDOTModel(newCalc(), analysis.Distance3K)
	assert.Equal(t, analysis.Distance5K, m.Distance())

	got := press(m, keyLeft).(VDOTModel).Distance()
	assert.Equal(t, analysis.DistanceFull, got)
}

func TestVDOT_ZeroTime(t *testing.T) {
	m := press(NewVDOTModel(newCalc(), analysis.Distance10K), keyEnter)
	view := m.View()

	assert.NotContains(t, view, "Your VDOT")
	assert.Contains(t, view, "Enter a race time above zero")
}

func TestApp_InitialTab(t *testing.T) {
	tests := []struct {
		tab  string
		want Screen
	}{
		{config.TabPaceToTime, ScreenPaceToTime},
		{config.TabTimeToPace, ScreenTimeToPace},
		{config.TabVDOT, ScreenVDOT},
		{"", ScreenPaceToTime},
	}

	for _, tt := range tests {
		t.Run(tt.tab, func(t *testing.T) {
			app := NewApp(newCalc(), config.DisplayConfig{Tab: tt.tab})
			assert.Equal(t, tt.want, app.Screen())
		})
	}
}

func TestApp_DisplayDefaults(t *testing.T) {
	app := NewApp(newCalc(), config.DisplayConfig{
		Cadence:      175,
		Distance:     "half",
		VDOTDistance: "full",
	})

	assert.Equal(t, 175, app.paceToTime.cadence)
	assert.Equal(t, analysis.DistanceHalf, app.timeToPace.Distance())
	assert.Equal(t, analysis.DistanceFull, app.vdot.Distance())
}

func TestApp_Navigation(t *testing.T) {
	app := NewApp(newCalc(), config.DefaultConfig().Display)
	app.Init()

	press(app, tea.KeyMsg{Type: tea.KeyF3})
	assert.Equal(t, ScreenVDOT, app.Screen())

	press(app, runes("]"))
	assert.Equal(t, ScreenPaceToTime, app.Screen())

	press(app, runes("["))
	assert.Equal(t, ScreenVDOT, app.Screen())

	press(app, tea.KeyMsg{Type: tea.KeyF2})
	assert.Equal(t, ScreenTimeToPace, app.Screen())

	press(app, runes("?"))
	assert.Equal(t, ScreenHelp, app.Screen())
	assert.Contains(t, app.View(), "Keyboard Shortcuts")

	press(app, keyEsc)
	assert.Equal(t, ScreenTimeToPace, app.Screen())
}

func TestApp_TabsKeepState(t *testing.T) {
	app := NewApp(newCalc(), config.DefaultConfig().Display)
	app.Init()

	press(app, runes("5"), keyEnter, tea.KeyMsg{Type: tea.KeyF3}, tea.KeyMsg{Type: tea.KeyF1})

	assert.Equal(t, ScreenPaceToTime, app.Screen())
	assert.Contains(t, app.View(), "25:00")
}

func TestApp_Quit(t *testing.T) {
	app := NewApp(newCalc(), config.DefaultConfig().Display)

	_, cmd := app.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestApp_View(t *testing.T) {
	app := NewApp(newCalc(), config.DefaultConfig().Display)
	view := app.View()

	assert.Contains(t, view, "Running Calculator")
	assert.Contains(t, view, "Calculating your pain, one step at a time.")
	assert.Contains(t, view, "Pace to Times")
}

func TestHelp_Scrolls(t *testing.T) {
	app := NewApp(newCalc(), config.DefaultConfig().Display)
	press(app, tea.WindowSizeMsg{Width: 80, Height: chromeHeight + 5}, runes("?"))

	view := app.help.View()
	assert.Contains(t, view, "Keyboard Shortcuts")
	assert.NotContains(t, view, "Terms Explained")

	// Unsized help renders everything
	assert.Contains(t, NewHelpModel().View(), "Terms Explained")
}

func TestCycle(t *testing.T) {
	assert.Equal(t, 1, cycle(0, 1, 4))
	assert.Equal(t, 3, cycle(0, -1, 4))
	assert.Equal(t, 0, cycle(3, 1, 4))
}
