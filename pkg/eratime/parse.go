package eratime

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrymomot/eradate/pkg/era"
)

// components are the decoded pieces of a single parse attempt.
type components struct {
	era     *era.Era
	eraYear int

	year, hour, minute, second int
	month                      time.Month
	day                        int

	hasYear, hasMonth, hasDay bool
	hour12, pm                bool
}

// decode fills components from the submatches of a successful match.
func (c *Codec) decode(rec *recognizer, groups []string) (components, error) {
	var comp components
	for i, capt := range rec.captures {
		text := groups[i+1]
		switch capt.field {
		case fieldEra:
			e, err := c.table.LookupByName(text, capt.form)
			if err != nil {
				return comp, err
			}
			if comp.era != nil && comp.era.Name != e.Name {
				return comp, fmt.Errorf("%w: conflicting eras %s and %s", ErrInvalidDate, comp.era.Name, e.Name)
			}
			comp.era = &e
		case fieldEraYear:
			y, err := parseEraYear(text)
			if err != nil {
				return comp, err
			}
			if comp.eraYear != 0 && comp.eraYear != y {
				return comp, fmt.Errorf("%w: conflicting era years %d and %d", ErrInvalidDate, comp.eraYear, y)
			}
			comp.eraYear = y
		case fieldYear:
			comp.year, comp.hasYear = atoi(text), true
		case fieldYear2:
			y := atoi(text)
			if y < 69 {
				y += 2000
			} else {
				y += 1900
			}
			comp.year, comp.hasYear = y, true
		case fieldMonth:
			comp.month, comp.hasMonth = time.Month(atoi(text)), true
		case fieldMonthName:
			comp.month, comp.hasMonth = monthByName[strings.ToLower(text)], true
		case fieldDay:
			comp.day, comp.hasDay = atoi(text), true
		case fieldHour:
			comp.hour = atoi(text)
		case fieldHour12:
			comp.hour, comp.hour12 = atoi(text), true
		case fieldMinute:
			comp.minute = atoi(text)
		case fieldSecond:
			comp.second = atoi(text)
		case fieldMeridiem:
			comp.pm = strings.EqualFold(text, "PM")
		}
	}
	return comp, nil
}

// resolve converts decoded components into a calendar value.
func (c *Codec) resolve(comp components) (time.Time, error) {
	year := comp.year
	switch {
	case comp.era != nil:
		year = comp.era.GregorianYear(comp.eraYear)
		if comp.hasYear && comp.year != year {
			return time.Time{}, fmt.Errorf("%w: %s%d is %d, not %d", ErrInvalidDate, comp.era.Name, comp.eraYear, year, comp.year)
		}
	case !comp.hasYear:
		return time.Time{}, fmt.Errorf("%w: year is missing", ErrIncompleteDate)
	}
	if !comp.hasMonth {
		return time.Time{}, fmt.Errorf("%w: month is missing", ErrIncompleteDate)
	}
	if !comp.hasDay {
		return time.Time{}, fmt.Errorf("%w: day is missing", ErrIncompleteDate)
	}

	hour := comp.hour
	if comp.hour12 {
		if hour < 1 || hour > 12 {
			return time.Time{}, fmt.Errorf("%w: hour %d out of range", ErrInvalidDate, hour)
		}
		hour %= 12
		if comp.pm {
			hour += 12
		}
	}

	if comp.month < time.January || comp.month > time.December {
		return time.Time{}, fmt.Errorf("%w: month %d out of range", ErrInvalidDate, comp.month)
	}
	if hour > 23 || comp.minute > 59 || comp.second > 59 {
		return time.Time{}, fmt.Errorf("%w: time %02d:%02d:%02d out of range", ErrInvalidDate, hour, comp.minute, comp.second)
	}

	t := time.Date(year, comp.month, comp.day, hour, comp.minute, comp.second, 0, time.UTC)
	if comp.day < 1 || t.Day() != comp.day || t.Month() != comp.month {
		return time.Time{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidDate, year, comp.month, comp.day)
	}

	if c.strict && comp.era != nil {
		if err := c.checkBounds(*comp.era, t); err != nil {
			return time.Time{}, err
		}
	}

	return t, nil
}

// checkBounds rejects dates outside the span of their era.
func (c *Codec) checkBounds(e era.Era, t time.Time) error {
	day := era.DateOf(t)
	if day.Before(e.Start) {
		return fmt.Errorf("%w: %s precedes the start of %s", ErrEraOutOfRange, day.Format(era.DateLayout), e.Name)
	}
	if end, ok := c.table.End(e); ok && !day.Before(end) {
		return fmt.Errorf("%w: %s is after the end of %s", ErrEraOutOfRange, day.Format(era.DateLayout), e.Name)
	}
	return nil
}

func parseEraYear(text string) (int, error) {
	if text == FirstYearMarker || text == RomajiFirstYearMarker {
		return 1, nil
	}
	y, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("%w: era year %q: %w", ErrInvalidDate, text, err)
	}
	if y < 1 {
		return 0, fmt.Errorf("%w: era year %d", ErrInvalidDate, y)
	}
	return y, nil
}

// atoi converts a pattern-validated digit run.
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
