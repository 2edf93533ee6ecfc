// Package clock abstracts the time source so services never read the system
// clock directly and tests can supply fixed instants.
package clock

import "time"

type Clock interface {
	Now() time.Time
}

// System reads the real wall clock.
type System struct{}

func (System) Now() time.Time { return time.Now() }

// Fixed always returns the same instant.
type Fixed struct {
	Instant time.Time
}

func (f Fixed) Now() time.Time { return f.Instant }

// At builds a Fixed clock from a date and an HH:MM wall time, both in the
// local zone. Panics on malformed input; intended for tests and seeds.
func At(date, hhmm string) Fixed {
	t, err := time.ParseInLocation("2006-01-02 15:04", date+" "+hhmm, time.Local)
	if err != nil {
		panic(err)
	}
	return Fixed{Instant: t}
}
