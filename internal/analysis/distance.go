package analysis

import (
	"errors"
	"fmt"
	"strings"
)

// Distance identifies one of the fixed race distances the calculator knows about
type Distance string

// Race distances
const (
	Distance100m Distance = "100m"
	Distance200m Distance = "200m"
	Distance400m Distance = "400m"
	Distance1400 Distance = "1.4k"
	Distance3K   Distance = "3k"
	Distance5K   Distance = "5k"
	Distance10K  Distance = "10k"
	DistanceHalf Distance = "half"
	DistanceFull Distance = "full"
)

// Distance lengths in meters
const (
	Meters100m = 100
	Meters200m = 200
	Meters400m = 400
	Meters1400 = 1400
	Meters3K   = 3000
	Meters5K   = 5000
	Meters10K  = 10000
	MetersHalf = 21097.5
	MetersFull = 42195

	metersPerKm = 1000.0
)

// ErrUnknownDistance is returned when a distance identifier is not in the catalogue
var ErrUnknownDistance = errors.New("unknown distance")

type distanceInfo struct {
	meters     float64
	km         float64
	label      string
	shortLabel string
}

var catalogue = map[Distance]distanceInfo{
	Distance100m: {Meters100m, 0.1, "100m", "100m"},
	Distance200m: {Meters200m, 0.2, "200m", "200m"},
	Distance400m: {Meters400m, 0.4, "400m", "400m"},
	Distance1400: {Meters1400, 1.4, "1.4K (HV)", "1.4K"},
	Distance3K:   {Meters3K, 3, "3K", "3K"},
	Distance5K:   {Meters5K, 5, "5K", "5K"},
	Distance10K:  {Meters10K, 10, "10K", "10K"},
	DistanceHalf: {MetersHalf, 21.0975, "Half Marathon", "Half"},
	DistanceFull: {MetersFull, 42.195, "Full Marathon", "Full"},
}

// PaceDistances returns every distance used by the pace/time conversions, shortest first
func PaceDistances() []Distance {
	return []Distance{
		Distance100m,
		Distance200m,
		Distance400m,
		Distance1400,
		Distance3K,
		Distance5K,
		Distance10K,
		DistanceHalf,
		DistanceFull,
	}
}

// VDOTDistances returns the race distances a VDOT score can be derived from or projected to
func VDOTDistances() []Distance {
	return []Distance{Distance5K, Distance10K, DistanceHalf, DistanceFull}
}

// ParseDistance resolves a distance identifier such as "5k" or "half".
// The legacy "1.4k(HV)" key is accepted as an alias for 1.4k.
func ParseDistance(s string) (Distance, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	switch key {
	case "1.4k(hv)", "1.4k (hv)":
		return Distance1400, nil
	case "marathon":
		return DistanceFull, nil
	}

	d := Distance(key)
	if !d.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownDistance, s)
	}
	return d, nil
}

// Valid reports whether d is part of the catalogue
func (d Distance) Valid() bool {
	_, ok := catalogue[d]
	return ok
}

// Meters returns the distance length in meters, or 0 for an unknown distance
func (d Distance) Meters() float64 {
	return catalogue[d].meters
}

// Kilometers returns the distance length in kilometers
func (d Distance) Kilometers() float64 {
	return catalogue[d].km
}

// Label returns the long display name, e.g. "Half Marathon"
func (d Distance) Label() string {
	if info, ok := catalogue[d]; ok {
		return info.label
	}
	return string(d)
}

// ShortLabel returns the compact display name, e.g. "Half"
func (d Distance) ShortLabel() string {
	if info, ok := catalogue[d]; ok {
		return info.shortLabel
	}
	return string(d)
}

// IsVDOTDistance reports whether d can be used as a VDOT source or projection target
func (d Distance) IsVDOTDistance() bool {
	for _, v := range VDOTDistances() {
		if v == d {
			return true
		}
	}
	return false
}

func (d Distance) String() string {
	return string(d)
}
