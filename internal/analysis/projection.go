package analysis

import "math"

// ProjectedTime is the finish time for one distance at a constant pace
type ProjectedTime struct {
	Distance Distance
	Seconds  float64
	Time     string // formatted with FormatTime
}

// Projection holds projected finish times ordered by distance
type Projection []ProjectedTime

// Lookup returns the projected time for a distance
func (p Projection) Lookup(d Distance) (ProjectedTime, bool) {
	for _, pt := range p {
		if pt.Distance == d {
			return pt, true
		}
	}
	return ProjectedTime{}, false
}

// ProjectTime returns the time needed to cover d at a constant pace.
// Sub-kilometer distances scale the per-meter pace, everything else scales by kilometers.
func ProjectTime(pacePerKm float64, d Distance) float64 {
	if d.Meters() < metersPerKm {
		return (pacePerKm / metersPerKm) * d.Meters()
	}
	return pacePerKm * d.Kilometers()
}

// ProjectTimes projects finish times for every pace distance.
// Returns false when pace is not positive.
func ProjectTimes(pacePerKm float64) (Projection, bool) {
	if pacePerKm <= 0 {
		return nil, false
	}

	distances := PaceDistances()
	projection := make(Projection, 0, len(distances))
	for _, d := range distances {
		seconds := ProjectTime(pacePerKm, d)
		projection = append(projection, ProjectedTime{
			Distance: d,
			Seconds:  seconds,
			Time:     FormatTime(seconds),
		})
	}

	return projection, true
}

// StrideLength estimates stride length in centimeters (one decimal) from pace and cadence.
// Returns false when either input is not positive.
func StrideLength(pacePerKm float64, cadence int) (float64, bool) {
	if pacePerKm <= 0 || cadence <= 0 {
		return 0, false
	}

	speedMetersPerMin := metersPerKm / (pacePerKm / secondsPerMinute)
	strideMeters := speedMetersPerMin / float64(cadence)

	return math.Round(strideMeters*1000) / 10, true
}

// PacePerKm returns the pace in seconds per km needed to cover d in totalSeconds
func PacePerKm(totalSeconds float64, d Distance) float64 {
	km := d.Kilometers()
	if km <= 0 {
		return 0
	}
	return totalSeconds / km
}

// PaceFromTime returns the "M:SS/km" pace needed to cover d in totalSeconds.
// Returns false when the time is not positive or the distance is unknown.
func PaceFromTime(totalSeconds float64, d Distance) (string, bool) {
	if totalSeconds <= 0 || !d.Valid() {
		return "", false
	}
	return FormatPace(PacePerKm(totalSeconds, d)), true
}
