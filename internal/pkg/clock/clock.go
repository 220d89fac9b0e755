// Package clock centralizes "now" and punch-time interpretation for payroll.
//
// Attendance punches are stored as naive local wall-clock timestamps while
// servers typically run in UTC. Every computation therefore goes through one
// Clock pinned to the company's local zone, so aggregate totals and today's
// live earnings always agree on what "now" means.
package clock

import (
	"fmt"
	"time"
)

type Clock interface {
	Now() time.Time
	Location() *time.Location
}

type realClock struct {
	loc *time.Location
}

// New returns a Clock pinned to a fixed UTC offset such as "+05:30" or
// "-03:00". An empty offset means UTC.
func New(offset string) (Clock, error) {
	if offset == "" {
		return realClock{loc: time.UTC}, nil
	}

	var sign rune
	var hours, minutes int
	if _, err := fmt.Sscanf(offset, "%c%02d:%02d", &sign, &hours, &minutes); err != nil {
		return nil, fmt.Errorf("invalid UTC offset %q: %w", offset, err)
	}

	seconds := hours*3600 + minutes*60
	switch sign {
	case '+':
	case '-':
		seconds = -seconds
	default:
		return nil, fmt.Errorf("invalid UTC offset %q: sign must be '+' or '-'", offset)
	}

	return realClock{loc: time.FixedZone("UTC"+offset, seconds)}, nil
}

func (c realClock) Now() time.Time {
	return time.Now().In(c.loc)
}

func (c realClock) Location() *time.Location {
	return c.loc
}

// Fixed is a Clock frozen at a single instant, for tests and for evaluating a
// computation against an explicit cursor.
type Fixed struct {
	At time.Time
}

func (f Fixed) Now() time.Time {
	return f.At
}

func (f Fixed) Location() *time.Location {
	return f.At.Location()
}

// MonthKey formats t as the "YYYY-MM" key used across the payroll engine.
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}

// DateKey formats t as the "YYYY-MM-DD" key used for attendance dates.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}
