package dns

import (
	"fmt"
	"strconv"
	"time"
)

// SIGTimeLen is the length of the YYYYMMDDHHMMSS presentation form.
const SIGTimeLen = 14

// SIGTimeToWire converts t to the 32-bit seconds-since-epoch wire value.
// Sub-second precision is truncated. Instants outside the 32-bit range wrap
// modulo 2^32, as the wire field does.
func SIGTimeToWire(t time.Time) uint32 {
	return uint32(t.Unix()) //nolint:gosec // wraps like the 32-bit wire field
}

// SIGTimeFromWire converts a wire value to a UTC instant.
func SIGTimeFromWire(v uint32) time.Time {
	return time.Unix(int64(v), 0).UTC()
}

// FormatSIGTime renders t as a 14-digit UTC YYYYMMDDHHMMSS string.
func FormatSIGTime(t time.Time) string {
	t = t.UTC()
	return fmt.Sprintf("%04d%02d%02d%02d%02d%02d",
		t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute(), t.Second())
}

// ParseSIGTime parses a 14-digit YYYYMMDDHHMMSS string as a UTC instant.
//
// The string must be exactly 14 ASCII digits. The calendar fields are not
// range-checked individually: out-of-range values are normalised the way
// time.Date does, so "20041301000000" (month 13) is January 2005.
func ParseSIGTime(s string) (time.Time, error) {
	if len(s) != SIGTimeLen {
		return time.Time{}, fmt.Errorf("%w: time must be %d digits, got %d", ErrParse, SIGTimeLen, len(s))
	}
	for i := range len(s) {
		if s[i] < '0' || s[i] > '9' {
			return time.Time{}, fmt.Errorf("%w: time must be all digits", ErrParse)
		}
	}
	field := func(from, to int) int {
		n, _ := strconv.Atoi(s[from:to])
		return n
	}
	return time.Date(
		field(0, 4), time.Month(field(4, 6)), field(6, 8),
		field(8, 10), field(10, 12), field(12, 14),
		0, time.UTC,
	), nil
}
