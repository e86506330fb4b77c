package eratime

import (
	"time"

	"github.com/dmitrymomot/eradate/pkg/era"
)

// Time is a time.Time that knows its era. The embedded time.Time keeps every
// standard accessor; Strftime adds era-aware formatting.
type Time struct {
	time.Time

	codec *Codec
}

// From wraps t using the default codec.
func From(t time.Time) Time {
	return Time{Time: t}
}

// Date returns the Time for the given calendar fields, like time.Date.
func Date(year int, month time.Month, day, hour, min, sec, nsec int, loc *time.Location) Time {
	return From(time.Date(year, month, day, hour, min, sec, nsec, loc))
}

// Strftime renders t according to the strftime-style layout, including era codes.
func (t Time) Strftime(layout string) string {
	return t.codecOrDefault().Format(layout, t.Time)
}

// Era returns the era t falls in.
func (t Time) Era() era.Era {
	return t.codecOrDefault().table.LookupByDate(t.Time)
}

// EraYear returns the 1-based year of t within its era.
func (t Time) EraYear() int {
	return t.Era().Year(t.Time)
}

func (t Time) codecOrDefault() *Codec {
	if t.codec == nil {
		return Default()
	}
	return t.codec
}
