package analysis

import (
	"math"
)

// Solver tuning for TimeForVDOT. These values reproduce published calculator
// output and must not be changed.
const (
	MaxSolverIterations = 20
	SolverTolerance     = 0.01 // VDOT points
	solverDamping       = 100
	solverSeedSpeed     = 5 // m/s
)

// Bracket for BisectTimeForVDOT, as constant speeds in m/s.
// Over this range VO2 stays positive so VDOT is strictly decreasing in time.
const (
	bisectFastSpeed     = 12
	bisectSlowSpeed     = 1
	bisectMaxIterations = 200
)

// VDOT computes Jack Daniels' VDOT from a race performance
// distanceMeters: the race distance in meters
// seconds: the finish time in seconds
// Returns 0 when either input is not positive
func VDOT(distanceMeters, seconds float64) float64 {
	if distanceMeters <= 0 || seconds <= 0 {
		return 0
	}
	return vdot(distanceMeters, seconds)
}

func vdot(distanceMeters, seconds float64) float64 {
	minutes := seconds / 60
	velocity := distanceMeters / minutes // m/min

	vo2 := -4.60 + 0.182258*velocity + 0.000104*velocity*velocity
	percentMax := 0.8 + 0.1894393*math.Exp(-0.012778*minutes) + 0.2989558*math.Exp(-0.1932605*minutes)

	return vo2 / percentMax
}

// RoundVDOT rounds a VDOT score to one decimal place for display
func RoundVDOT(score float64) float64 {
	return math.Round(score*10) / 10
}

// Iteration is one step of the inverse solver
type Iteration struct {
	Seconds   float64 // time evaluated in this step
	Predicted float64 // VDOT of Seconds at the target distance
	Error     float64 // Predicted minus the target score
}

// Solution is the outcome of SolveTimeForVDOT
type Solution struct {
	Seconds    float64
	Iterations []Iteration
	Converged  bool
}

// Errors returns the absolute error of each iteration, for charting
func (s Solution) Errors() []float64 {
	errs := make([]float64, len(s.Iterations))
	for i, it := range s.Iterations {
		errs[i] = math.Abs(it.Error)
	}
	return errs
}

// SolveTimeForVDOT finds the finish time at distanceMeters whose VDOT equals score.
//
// There is no closed form inverse, so the time is relaxed towards the target:
// starting from a 5 m/s guess, each step scales the time by 1+err/100 where err
// is the VDOT overshoot. The loop stops once |err| drops below SolverTolerance
// (after applying that step's update) or after MaxSolverIterations. The last
// estimate is returned either way; Converged reports which case occurred.
func SolveTimeForVDOT(score, distanceMeters float64) Solution {
	t := distanceMeters / solverSeedSpeed
	sol := Solution{
		Iterations: make([]Iteration, 0, MaxSolverIterations),
	}

	for i := 0; i < MaxSolverIterations; i++ {
		predicted := vdot(distanceMeters, t)
		err := predicted - score

		sol.Iterations = append(sol.Iterations, Iteration{
			Seconds:   t,
			Predicted: predicted,
			Error:     err,
		})

		t = t * (1 + err/solverDamping)

		if math.Abs(err) < SolverTolerance {
			sol.Converged = true
			break
		}
	}

	sol.Seconds = t
	return sol
}

// TimeForVDOT predicts the finish time in seconds at distanceMeters for a VDOT score.
// It never fails; see SolveTimeForVDOT for the convergence behaviour.
func TimeForVDOT(score, distanceMeters float64) float64 {
	return SolveTimeForVDOT(score, distanceMeters).Seconds
}

// BisectTimeForVDOT solves the same inverse problem as TimeForVDOT by bisection
// between 12 m/s and 1 m/s, stopping when the bracket is narrower than
// tolerance seconds. Returns false when the score is outside the bracket.
// This is an alternative for callers wanting a guaranteed bound; its output
// differs slightly from TimeForVDOT.
func BisectTimeForVDOT(score, distanceMeters, tolerance float64) (float64, bool) {
	if distanceMeters <= 0 || score <= 0 {
		return 0, false
	}
	if tolerance <= 0 {
		tolerance = SolverTolerance
	}

	lo := distanceMeters / bisectFastSpeed
	hi := distanceMeters / bisectSlowSpeed

	if score > vdot(distanceMeters, lo) || score < vdot(distanceMeters, hi) {
		return 0, false
	}

	for i := 0; i < bisectMaxIterations && hi-lo > tolerance; i++ {
		mid := (lo + hi) / 2
		if vdot(distanceMeters, mid) > score {
			lo = mid
		} else {
			hi = mid
		}
	}

	return (lo + hi) / 2, true
}

// VDOTLabel returns a human-readable fitness level for a VDOT value
func VDOTLabel(score float64) string {
	switch {
	case score >= 75:
		return "Elite"
	case score >= 65:
		return "Highly Competitive"
	case score >= 55:
		return "Competitive"
	case score >= 45:
		return "Advanced Recreational"
	case score >= 38:
		return "Intermediate"
	case score >= 30:
		return "Beginner"
	default:
		return "Novice"
	}
}
