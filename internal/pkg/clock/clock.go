// Package clock stamps round records. Tests freeze it with Fixed.
package clock

import "time"

type Clock interface {
	Now() time.Time
}

// New returns the wall clock. It reports UTC so stored records compare
// equal after a JSON round trip.
func New() Clock {
	return wall{}
}

type wall struct{}

func (wall) Now() time.Time {
	return time.Now().UTC()
}

// Fixed reports At until moved with Advance. It is not safe for concurrent use.
type Fixed struct {
	At time.Time
}

func (f *Fixed) Now() time.Time {
	return f.At
}

func (f *Fixed) Advance(d time.Duration) {
	f.At = f.At.Add(d)
}
