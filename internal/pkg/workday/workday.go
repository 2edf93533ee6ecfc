// Package workday classifies clock times against configured office hours.
// All times are local wall-clock "HH:MM" strings compared as minutes since
// midnight; there is no timezone or day-rollover handling here.
package workday

import (
	"fmt"
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// ArrivalClass is the result of classifying a clock-in time.
type ArrivalClass struct {
	Late        bool
	LateMinutes int
}

// DepartureClass is the result of classifying a clock-out time.
type DepartureClass struct {
	Early        bool
	EarlyMinutes int
}

// MinutesOfDay parses an "HH:MM" string into minutes since midnight.
func MinutesOfDay(hhmm string) (int, error) {
	t, err := time.Parse(TimeLayout, hhmm)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", hhmm)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// ClassifyClockIn compares a clock-in time against the office work-start.
// Strictly after the start is late; arriving exactly on time is not.
func ClassifyClockIn(clockTime, workStart string) (ArrivalClass, error) {
	clockMins, err := MinutesOfDay(clockTime)
	if err != nil {
		return ArrivalClass{}, err
	}
	startMins, err := MinutesOfDay(workStart)
	if err != nil {
		return ArrivalClass{}, err
	}

	diff := clockMins - startMins
	if diff <= 0 {
		return ArrivalClass{}, nil
	}
	return ArrivalClass{Late: true, LateMinutes: diff}, nil
}

// ClassifyClockOut compares a clock-out time against the office work-end.
// Strictly before the end is early; leaving exactly at the end is not.
func ClassifyClockOut(clockTime, workEnd string) (DepartureClass, error) {
	clockMins, err := MinutesOfDay(clockTime)
	if err != nil {
		return DepartureClass{}, err
	}
	endMins, err := MinutesOfDay(workEnd)
	if err != nil {
		return DepartureClass{}, err
	}

	diff := endMins - clockMins
	if diff <= 0 {
		return DepartureClass{}, nil
	}
	return DepartureClass{Early: true, EarlyMinutes: diff}, nil
}

// FormatDate renders t in the persisted YYYY-MM-DD form.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatTime renders t in the persisted HH:MM form.
func FormatTime(t time.Time) string {
	return t.Format(TimeLayout)
}

// IsValidTime reports whether s is a well-formed HH:MM string.
func IsValidTime(s string) bool {
	_, err := time.Parse(TimeLayout, s)
	return err == nil
}
