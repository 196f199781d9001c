package input

import (
	"errors"
	"testing"
)

func TestInt(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 0},
		{"abc", 0},
		{"5", 5},
		{"  42", 42},
		{"07", 7},
		{"12abc", 12},
		{"3.7", 3},
		{"-3", -3},
		{"+8", 8},
		{"-", 0},
		{"1 2", 1},
		{"99999999999999999999999", 0},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := Int(tt.text); got != tt.want {
				t.Errorf("Int(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestClock(t *testing.T) {
	tests := []struct {
		text                string
		wantH, wantM, wantS int
	}{
		{"", 0, 0, 0},
		{"45", 0, 0, 45},
		{"5:00", 0, 5, 0},
		{"20:00", 0, 20, 0},
		{"1:45:29", 1, 45, 29},
		{" 3:30:00 ", 3, 30, 0},
		{"1:xx:10", 1, 0, 10},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			h, m, s, err := Clock(tt.text)
			if err != nil {
				t.Fatalf("Clock(%q) unexpected error: %v", tt.text, err)
			}
			if h != tt.wantH || m != tt.wantM || s != tt.wantS {
				t.Errorf("Clock(%q) = %d:%d:%d, want %d:%d:%d", tt.text, h, m, s, tt.wantH, tt.wantM, tt.wantS)
			}
		})
	}
}

func TestClock_TooManyFields(t *testing.T) {
	_, _, _, err := Clock("1:2:3:4")
	if !errors.Is(err, ErrClockFormat) {
		t.Errorf("Clock error = %v, want ErrClockFormat", err)
	}
}
