package analysis

import (
	"math"
	"testing"
)

func TestProjectTimes(t *testing.T) {
	projection, ok := ProjectTimes(300) // 5:00/km
	if !ok {
		t.Fatal("ProjectTimes(300) returned ok=false")
	}

	want := map[Distance]string{
		Distance100m: "0:30",
		Distance200m: "1:00",
		Distance400m: "2:00",
		Distance1400: "7:00",
		Distance3K:   "15:00",
		Distance5K:   "25:00",
		Distance10K:  "50:00",
		DistanceHalf: "1:45:29", // 6329.25s
	}

	for d, wantTime := range want {
		pt, found := projection.Lookup(d)
		if !found {
			t.Errorf("Lookup(%v) not found", d)
			continue
		}
		if pt.Time != wantTime {
			t.Errorf("%v time = %q, want %q (%.2fs)", d, pt.Time, wantTime, pt.Seconds)
		}
	}

	if len(projection) != len(PaceDistances()) {
		t.Errorf("projection has %d entries, want %d", len(projection), len(PaceDistances()))
	}
	for i, d := range PaceDistances() {
		if projection[i].Distance != d {
			t.Errorf("projection[%d] = %v, want %v", i, projection[i].Distance, d)
		}
	}
}

func TestProjectTimes_NotComputable(t *testing.T) {
	for _, pace := range []float64{0, -10} {
		if p, ok := ProjectTimes(pace); ok || p != nil {
			t.Errorf("ProjectTimes(%v) = %v, %v, want nil, false", pace, p, ok)
		}
	}
}

func TestProjectTime_SubKilometer(t *testing.T) {
	// Sub-km distances scale the per-meter pace
	for _, d := range []Distance{Distance100m, Distance200m, Distance400m} {
		want := (250.0 / 1000) * d.Meters()
		if got := ProjectTime(250, d); got != want {
			t.Errorf("ProjectTime(250, %v) = %v, want %v", d, got, want)
		}
		if math.Abs(ProjectTime(250, d)-250*d.Kilometers()) > 1e-9 {
			t.Errorf("ProjectTime(250, %v) disagrees with km scaling", d)
		}
	}
}

func TestStrideLength(t *testing.T) {
	tests := []struct {
		name    string
		pace    float64
		cadence int
		want    float64
		wantOK  bool
	}{
		{"5:00/km at 180", 300, 180, 111.1, true},
		{"4:00/km at 180", 240, 180, 138.9, true},
		{"6:00/km at 170", 360, 170, 98.0, true},
		{"zero pace", 0, 180, 0, false},
		{"zero cadence", 300, 0, 0, false},
		{"negative cadence", 300, -5, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := StrideLength(tt.pace, tt.cadence)
			if ok != tt.wantOK {
				t.Fatalf("StrideLength() ok = %v, want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("StrideLength(%v, %v) = %v, want %v", tt.pace, tt.cadence, got, tt.want)
			}
		})
	}
}

func TestPaceFromTime(t *testing.T) {
	tests := []struct {
		name     string
		seconds  float64
		distance Distance
		want     string
	}{
		{"5K in 25:00", 1500, Distance5K, "5:00/km"},
		{"10K in 45:00", 2700, Distance10K, "4:30/km"},
		{"100m in 15s", 15, Distance100m, "2:30/km"},
		{"marathon in 3:00:00", 10800, DistanceFull, "4:16/km"},
		// 6329/21.0975 = 299.988s/km, the seconds round to 60 without carrying
		{"half in 1:45:29", 6329, DistanceHalf, "4:60/km"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := PaceFromTime(tt.seconds, tt.distance)
			if !ok {
				t.Fatal("PaceFromTime returned ok=false")
			}
			if got != tt.want {
				t.Errorf("PaceFromTime(%v, %v) = %q, want %q", tt.seconds, tt.distance, got, tt.want)
			}
		})
	}
}

func TestPaceFromTime_NotComputable(t *testing.T) {
	if _, ok := PaceFromTime(0, Distance5K); ok {
		t.Error("zero time: ok = true, want false")
	}
	if _, ok := PaceFromTime(-60, Distance5K); ok {
		t.Error("negative time: ok = true, want false")
	}
	if _, ok := PaceFromTime(1200, Distance("2k")); ok {
		t.Error("unknown distance: ok = true, want false")
	}
}

func TestPaceTimeRoundTrip(t *testing.T) {
	for _, pace := range []float64{180, 245, 300, 372, 600} {
		projection, _ := ProjectTimes(pace)
		for _, pt := range projection {
			// Unrounded times map straight back to the pace
			if got := PacePerKm(pt.Seconds, pt.Distance); math.Abs(got-pace) > 1e-9 {
				t.Errorf("PacePerKm(%v, %v) = %v, want %v", pt.Seconds, pt.Distance, got, pace)
			}

			// Displayed times are whole seconds; from 1 km up that stays within a second of pace
			if pt.Distance.Kilometers() >= 1 {
				rounded := math.Round(pt.Seconds)
				if got := PacePerKm(rounded, pt.Distance); math.Abs(got-pace) > 1 {
					t.Errorf("pace %v via %v (%s) = %v, off by more than 1s", pace, pt.Distance, pt.Time, got)
				}
			}
		}
	}
}
