// Package lineup implements the in-memory engine behind the event builder:
// the slot sequence with its contiguity rules, the DJ suggestion ranking,
// budget totals and the finalize snapshot. Everything in this package is a
// pure transformation over in-memory state; persistence and HTTP live in
// their own packages and call into here.
package lineup

import (
	"errors" // errors for the sentinel parse failure
	"fmt"    // fmt formats minutes back into "HH:MM"
)

// Clock is a wall-clock time expressed as minutes since midnight. Slot
// boundaries are compared numerically on this type, which is equivalent to
// lexicographic comparison of zero-padded "HH:MM" strings but does not
// depend on string padding. Values are always in [0, minutesPerDay).
type Clock int

// minutesPerDay is the number of minutes on a 24-hour clock face.
const minutesPerDay = 24 * 60

// defaultSlotMinutes is the length given to a slot when the engine has to
// invent an end time: appended slots and ends pushed forward by a start
// edit are both one hour long.
const defaultSlotMinutes = 60

// ErrBadClock is returned by ParseClock when the input is not a valid
// zero-padded 24-hour "HH:MM" string.
var ErrBadClock = errors.New("invalid HH:MM time")

// ParseClock converts a zero-padded "HH:MM" string into a Clock. It
// rejects anything that is not exactly five characters of digits and a
// colon, or whose hour/minute components fall outside the 24-hour range.
func ParseClock(s string) (Clock, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, ErrBadClock
	}
	h, okH := twoDigits(s[0], s[1])
	m, okM := twoDigits(s[3], s[4])
	if !okH || !okM || h > 23 || m > 59 {
		return 0, ErrBadClock
	}
	return Clock(h*60 + m), nil
}

// twoDigits parses a pair of ASCII digit bytes into an int.
func twoDigits(a, b byte) (int, bool) {
	if a < '0' || a > '9' || b < '0' || b > '9' {
		return 0, false
	}
	return int(a-'0')*10 + int(b-'0'), true
}

// String renders the clock as a zero-padded "HH:MM" string, the format
// used on the wire and in stored lineup rows.
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

// Hour returns the hour component (0-23). The suggestion engine uses it
// for the time-of-day vibe heuristic.
func (c Clock) Hour() int {
	return int(c) / 60
}

// Add returns the clock advanced by the given number of minutes, wrapping
// past midnight back to 00:00. Negative arguments wrap the other way.
func (c Clock) Add(minutes int) Clock {
	n := (int(c) + minutes) % minutesPerDay
	if n < 0 {
		n += minutesPerDay
	}
	return Clock(n)
}

// MarshalJSON encodes the clock as its "HH:MM" string so API responses
// carry the same format the user typed in.
func (c Clock) MarshalJSON() ([]byte, error) {
	return []byte(`"` + c.String() + `"`), nil
}

// UnmarshalJSON accepts a quoted "HH:MM" string.
func (c *Clock) UnmarshalJSON(b []byte) error {
	if len(b) < 2 || b[0] != '"' || b[len(b)-1] != '"' {
		return ErrBadClock
	}
	v, err := ParseClock(string(b[1 : len(b)-1]))
	if err != nil {
		return err
	}
	*c = v
	return nil
}
