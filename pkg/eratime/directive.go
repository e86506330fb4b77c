package eratime

import (
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dmitrymomot/eradate/pkg/era"
)

const (
	// FirstYearMarker replaces the in-era year 1 in full native notation.
	FirstYearMarker = "元"
	// RomajiFirstYearMarker is accepted in place of 1 when parsing romanized notation.
	RomajiFirstYearMarker = "Gannen"
)

// Custom era codes.
const (
	CodeEraName       = 'G' // 令和5
	CodeEraAbbr       = 'g' // 令5
	CodeEraRomaji     = 'E' // Reiwa 5
	CodeEraRomajiAbbr = 'e' // R5
)

// eraForm maps a custom era code to the designator form it uses.
func eraForm(code rune) (era.Form, bool) {
	switch code {
	case CodeEraName:
		return era.FormName, true
	case CodeEraAbbr:
		return era.FormAbbr, true
	case CodeEraRomaji:
		return era.FormRomaji, true
	case CodeEraRomajiAbbr:
		return era.FormRomajiAbbr, true
	}
	return 0, false
}

// eraPattern builds the recognizer fragment for an era code: the designator
// alternation followed by the in-era year. It contributes two capture groups.
func eraPattern(table *era.Table, f era.Form) string {
	names := table.Designators(f)
	// Longer designators first so that shared prefixes cannot shadow them
	slices.SortStableFunc(names, func(a, b string) int {
		return utf8.RuneCountInString(b) - utf8.RuneCountInString(a)
	})

	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = regexp.QuoteMeta(n)
	}
	designator := "(" + strings.Join(quoted, "|") + ")"

	switch f {
	case era.FormRomaji:
		return designator + " (" + regexp.QuoteMeta(RomajiFirstYearMarker) + `|\d+)`
	case era.FormRomajiAbbr:
		return designator + "(" + regexp.QuoteMeta(RomajiFirstYearMarker) + `|\d+)`
	default:
		return designator + "(" + regexp.QuoteMeta(FirstYearMarker) + `|\d+)`
	}
}

// renderEra renders an era and in-era year in the given form. Only the full native
// form substitutes the first-year marker; every other form prints digits.
func renderEra(e era.Era, year int, f era.Form) string {
	switch f {
	case era.FormName:
		if year == 1 {
			return e.Name + FirstYearMarker
		}
		return e.Name + strconv.Itoa(year)
	case era.FormRomaji:
		return e.Romaji + " " + strconv.Itoa(year)
	default:
		return e.Designator(f) + strconv.Itoa(year)
	}
}

// field identifies what a capture group of the recognizer holds.
type field uint8

const (
	fieldNone field = iota
	fieldEra
	fieldEraYear
	fieldYear
	fieldYear2
	fieldMonth
	fieldMonthName
	fieldDay
	fieldHour
	fieldHour12
	fieldMinute
	fieldSecond
	fieldMeridiem
)

// standardDirective is a recognizer fragment for a non-era format code.
// Fragments with a field contribute exactly one capture group.
type standardDirective struct {
	pattern string
	field   field
	slot    string // calendar slot the field sets, used to reject duplicates
}

var (
	monthNames    = []string{"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"}
	monthAbbrs    = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
	weekdayNames  = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
	weekdayAbbrs  = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	monthByName   = buildMonthIndex()
	standardCodes = map[rune]standardDirective{
		'Y': {pattern: `(\d{4})`, field: fieldYear, slot: "year"},
		'y': {pattern: `(\d{2})`, field: fieldYear2, slot: "year"},
		'm': {pattern: `(\d{1,2})`, field: fieldMonth, slot: "month"},
		'd': {pattern: `(\d{1,2})`, field: fieldDay, slot: "day"},
		'B': {pattern: "((?i:" + strings.Join(monthNames, "|") + "))", field: fieldMonthName, slot: "month"},
		'b': {pattern: "((?i:" + strings.Join(monthAbbrs, "|") + "))", field: fieldMonthName, slot: "month"},
		'h': {pattern: "((?i:" + strings.Join(monthAbbrs, "|") + "))", field: fieldMonthName, slot: "month"},
		'A': {pattern: "(?i:" + strings.Join(weekdayNames, "|") + ")"},
		'a': {pattern: "(?i:" + strings.Join(weekdayAbbrs, "|") + ")"},
		'H': {pattern: `(\d{1,2})`, field: fieldHour, slot: "hour"},
		'I': {pattern: `(\d{1,2})`, field: fieldHour12, slot: "hour"},
		'M': {pattern: `(\d{1,2})`, field: fieldMinute, slot: "minute"},
		'S': {pattern: `(\d{1,2})`, field: fieldSecond, slot: "second"},
		'p': {pattern: `((?i:AM|PM))`, field: fieldMeridiem, slot: "meridiem"},
		'%': {pattern: `%`},
	}
)

// numeric reports whether the directive captures a digit run.
func (d standardDirective) numeric() bool {
	switch d.field {
	case fieldYear, fieldYear2, fieldMonth, fieldDay, fieldHour, fieldHour12, fieldMinute, fieldSecond:
		return true
	}
	return false
}

func buildMonthIndex() map[string]time.Month {
	idx := make(map[string]time.Month, len(monthNames)+len(monthAbbrs))
	for i, n := range monthNames {
		idx[strings.ToLower(n)] = time.Month(i + 1)
	}
	for i, n := range monthAbbrs {
		idx[strings.ToLower(n)] = time.Month(i + 1)
	}
	return idx
}
