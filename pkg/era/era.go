package era

import (
	"time"
	"unicode/utf8"
)

// DateLayout is the layout of start dates in the table source format.
const DateLayout = "2006-01-02"

// Form selects which designator of an era is used for lookup or rendering.
type Form uint8

const (
	// FormName is the full native name, e.g. 令和.
	FormName Form = iota
	// FormAbbr is the single-character native abbreviation, e.g. 令.
	FormAbbr
	// FormRomaji is the full romanized name, e.g. Reiwa.
	FormRomaji
	// FormRomajiAbbr is the first letter of the romanized name, e.g. R.
	FormRomajiAbbr
)

// String returns a short human-readable name of the form.
func (f Form) String() string {
	switch f {
	case FormName:
		return "name"
	case FormAbbr:
		return "abbr"
	case FormRomaji:
		return "romaji"
	case FormRomajiAbbr:
		return "romaji_abbr"
	default:
		return "unknown"
	}
}

// Era is a single named era. Values are immutable copies handed out by a Table.
type Era struct {
	Name       string    // native full name
	Abbr       string    // native abbreviation
	Romaji     string    // romanized full name
	RomajiAbbr string    // first letter of Romaji
	Start      time.Time // inclusive start date, midnight UTC
}

// Designator returns the era's name in the given form.
func (e Era) Designator(f Form) string {
	switch f {
	case FormAbbr:
		return e.Abbr
	case FormRomaji:
		return e.Romaji
	case FormRomajiAbbr:
		return e.RomajiAbbr
	default:
		return e.Name
	}
}

// Year returns the 1-based in-era year of t.
// The result is only meaningful when t falls inside the era.
func (e Era) Year(t time.Time) int {
	return t.Year() - e.Start.Year() + 1
}

// GregorianYear converts a 1-based in-era year to a calendar year.
func (e Era) GregorianYear(eraYear int) int {
	return e.Start.Year() + eraYear - 1
}

// IsZero reports whether e is the zero Era.
func (e Era) IsZero() bool {
	return e.Name == "" && e.Start.IsZero()
}

// DateOf truncates t to its calendar date in t's own location and returns it as
// midnight UTC, the representation used for era boundaries.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func firstRune(s string) string {
	_, size := utf8.DecodeRuneInString(s)
	return s[:size]
}
