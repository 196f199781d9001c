package service

import (
	"github.com/sirupsen/logrus"

	"runcalc/internal/analysis"
)

// Solver selects the inverse VDOT algorithm used for projections
type Solver string

const (
	// SolverRelax is the fixed-point relaxation used by published calculators
	SolverRelax Solver = "relax"
	// SolverBisect is the bracketed bisection alternative
	SolverBisect Solver = "bisect"

	bisectToleranceSeconds = 0.01
)

// CalculatorService runs the three calculator modes
type CalculatorService struct {
	log    logrus.FieldLogger
	solver Solver
}

// NewCalculatorService creates a calculator that logs each calculation at debug level
func NewCalculatorService(log logrus.FieldLogger) *CalculatorService {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &CalculatorService{log: log, solver: SolverRelax}
}

// WithSolver returns a copy of the calculator using the given inverse solver
func (c *CalculatorService) WithSolver(s Solver) *CalculatorService {
	cp := *c
	cp.solver = s
	return &cp
}

// RaceTimeDisplay is one row of the projected race times
type RaceTimeDisplay struct {
	Distance analysis.Distance
	Label    string  // "5K", "Half"
	Seconds  float64 // unrounded
	Time     string  // "M:SS" or "H:MM:SS"
}

// RaceTimesData is the result of the pace to time mode
type RaceTimesData struct {
	OK           bool // false when the pace is not positive
	PacePerKm    float64
	Pace         string // "M:SS/km"
	Times        []RaceTimeDisplay
	Cadence      int
	StrideCm     float64
	HasStride    bool
	StrideString string // "111.1 cm"
}

// RequiredPaceData is the result of the time to pace mode
type RequiredPaceData struct {
	OK           bool // false when the target time is not positive
	Distance     analysis.Distance
	TotalSeconds float64
	Time         string
	PacePerKm    float64
	Pace         string // "M:SS/km"
}

// VDOTProjection is one projected race time for a VDOT score
type VDOTProjection struct {
	Distance  analysis.Distance
	Label     string
	Seconds   float64
	Time      string
	Pace      string
	Converged bool
	Solution  analysis.Solution // empty for the bisection solver
}

// VDOTData is the result of the VDOT mode
type VDOTData struct {
	OK           bool // false when the race time is not positive or the distance has no VDOT
	Distance     analysis.Distance
	TotalSeconds float64
	Time         string
	RawScore     float64
	Score        float64 // rounded to one decimal
	Label        string  // "Advanced Recreational", etc.
	Solver       Solver
	Projections  []VDOTProjection
}

// RaceTimes projects finish times for every distance from a per-km pace,
// plus the stride length at the given cadence.
func (c *CalculatorService) RaceTimes(paceMinutes, paceSeconds, cadence int) RaceTimesData {
	pace := analysis.PaceSeconds(paceMinutes, paceSeconds)
	data := RaceTimesData{PacePerKm: pace, Cadence: cadence}

	projection, ok := analysis.ProjectTimes(pace)
	if !ok {
		return data
	}

	data.OK = true
	data.Pace = analysis.FormatPace(pace)
	for _, pt := range projection {
		data.Times = append(data.Times, RaceTimeDisplay{
			Distance: pt.Distance,
			Label:    pt.Distance.ShortLabel(),
			Seconds:  pt.Seconds,
			Time:     pt.Time,
		})
	}

	if stride, ok := analysis.StrideLength(pace, cadence); ok {
		data.StrideCm = stride
		data.HasStride = true
		data.StrideString = formatStride(stride)
	}

	c.log.WithFields(logrus.Fields{
		"mode":    "pace-to-time",
		"pace":    pace,
		"cadence": cadence,
		"stride":  data.StrideCm,
	}).Debug("calculated race times")

	return data
}

// RequiredPace returns the per-km pace needed to cover d in the given time
func (c *CalculatorService) RequiredPace(hours, minutes, seconds int, d analysis.Distance) RequiredPaceData {
	total := analysis.ClockSeconds(hours, minutes, seconds)
	data := RequiredPaceData{Distance: d, TotalSeconds: total}

	pace, ok := analysis.PaceFromTime(total, d)
	if !ok {
		return data
	}

	data.OK = true
	data.Time = analysis.FormatTime(total)
	data.PacePerKm = analysis.PacePerKm(total, d)
	data.Pace = pace

	c.log.WithFields(logrus.Fields{
		"mode":     "time-to-pace",
		"distance": d,
		"seconds":  total,
		"pace":     data.PacePerKm,
	}).Debug("calculated required pace")

	return data
}

// VDOTProjection scores a race result and projects equivalent times for
// 5k, 10k, half and full, whichever distance the result was run over.
// Projections are solved from the unrounded score.
func (c *CalculatorService) VDOTProjection(hours, minutes, seconds int, d analysis.Distance) VDOTData {
	total := analysis.ClockSeconds(hours, minutes, seconds)
	data := VDOTData{Distance: d, TotalSeconds: total, Solver: c.solver}

	if total <= 0 || !d.IsVDOTDistance() {
		return data
	}

	score := analysis.VDOT(d.Meters(), total)

	data.OK = true
	data.Time = analysis.FormatTime(total)
	data.RawScore = score
	data.Score = analysis.RoundVDOT(score)
	data.Label = analysis.VDOTLabel(data.Score)

	for _, target := range analysis.VDOTDistances() {
		proj := c.project(score, target)
		data.Projections = append(data.Projections, proj)

		entry := c.log.WithFields(logrus.Fields{
			"mode":       "vdot",
			"distance":   target,
			"score":      score,
			"seconds":    proj.Seconds,
			"solver":     c.solver,
			"iterations": len(proj.Solution.Iterations),
			"converged":  proj.Converged,
		})
		if proj.Converged {
			entry.Debug("projected race time")
		} else {
			entry.Warn("inverse solver did not converge, using last estimate")
		}
	}

	return data
}

func (c *CalculatorService) project(score float64, target analysis.Distance) VDOTProjection {
	proj := VDOTProjection{
		Distance: target,
		Label:    target.ShortLabel(),
	}

	if c.solver == SolverBisect {
		secs, ok := analysis.BisectTimeForVDOT(score, target.Meters(), bisectToleranceSeconds)
		proj.Seconds = secs
		proj.Converged = ok
	} else {
		sol := analysis.SolveTimeForVDOT(score, target.Meters())
		proj.Seconds = sol.Seconds
		proj.Converged = sol.Converged
		proj.Solution = sol
	}

	proj.Time = analysis.FormatTime(proj.Seconds)
	if p, ok := analysis.PaceFromTime(proj.Seconds, target); ok {
		proj.Pace = p
	}
	return proj
}
