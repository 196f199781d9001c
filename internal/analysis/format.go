package analysis

import (
	"fmt"
	"math"
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 3600
)

// ClockSeconds converts an hours/minutes/seconds triple into total seconds
func ClockSeconds(hours, minutes, seconds int) float64 {
	return float64(hours*secondsPerHour + minutes*secondsPerMinute + seconds)
}

// PaceSeconds converts a minutes:seconds per km pace into seconds per km
func PaceSeconds(minutes, seconds int) float64 {
	return float64(minutes*secondsPerMinute + seconds)
}

// FormatTime renders a duration as H:MM:SS, or M:SS when under an hour.
// The total is rounded first so a fractional remainder can never render as ":60".
func FormatTime(totalSeconds float64) string {
	total := int64(math.Round(totalSeconds))

	hours := total / secondsPerHour
	minutes := (total % secondsPerHour) / secondsPerMinute
	seconds := total % secondsPerMinute

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}

// FormatPace renders a per-km pace as "M:SS/km".
// Seconds are rounded after the modulo and are not carried into the minutes,
// so a pace of 299.7s renders as "4:60/km".
func FormatPace(pacePerKm float64) string {
	minutes := int64(math.Floor(pacePerKm / secondsPerMinute))
	seconds := int64(math.Round(math.Mod(pacePerKm, secondsPerMinute)))
	return fmt.Sprintf("%d:%02d/km", minutes, seconds)
}
