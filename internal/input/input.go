// Package input turns raw text from form fields and flags into the whole
// numbers the calculator works with. Empty or non-numeric text becomes 0,
// which the calculator treats as "nothing to compute" rather than an error.
package input

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ErrClockFormat is returned when a clock string has more than three fields
var ErrClockFormat = errors.New("clock must be SS, M:SS or H:MM:SS")

// Int parses the leading integer of text, ignoring anything after it.
// "12abc" gives 12, "3.7" gives 3, and "", "abc" or an out of range number give 0.
func Int(text string) int {
	s := strings.TrimLeftFunc(text, unicode.IsSpace)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}

// Clock splits a "H:MM:SS", "M:SS" or "SS" string into hours, minutes and seconds.
// Each field follows Int, so malformed fields count as zero.
func Clock(text string) (hours, minutes, seconds int, err error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, 0, 0, nil
	}

	fields := strings.Split(text, ":")
	switch len(fields) {
	case 1:
		return 0, 0, Int(fields[0]), nil
	case 2:
		return 0, Int(fields[0]), Int(fields[1]), nil
	case 3:
		return Int(fields[0]), Int(fields[1]), Int(fields[2]), nil
	default:
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrClockFormat, text)
	}
}
