package era

import (
	"fmt"
	"slices"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Record is one entry of the table source format.
type Record struct {
	NameJA    string `json:"name_ja" validate:"required"`
	NameEN    string `json:"name_en" validate:"required"`
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	AbbrJA    string `json:"abbr_ja,omitempty" validate:"omitempty,len=1"`
}

// Table is an ordered, immutable list of eras.
// It is safe for concurrent use.
type Table struct {
	// Most recent era first
	eras []Era

	// Per-form designator index into eras
	index map[Form]map[string]int

	// Whether the record carried an explicit abbr_ja, kept for persistence
	explicitAbbr []bool
}

// NewTable builds a table from records ordered oldest-first, as stored on disk.
// Records are validated, start dates must be strictly increasing, and native names,
// native abbreviations and romanized names must be unique.
func NewTable(records []Record) (*Table, error) {
	if len(records) == 0 {
		return nil, ErrEmptyTable
	}

	eras := make([]Era, 0, len(records))
	explicit := make([]bool, 0, len(records))
	for i, rec := range records {
		if err := validate.Struct(rec); err != nil {
			return nil, fmt.Errorf("%w: record %d: %w", ErrInvalidRecord, i, err)
		}

		start, err := time.Parse(DateLayout, rec.StartDate)
		if err != nil {
			return nil, fmt.Errorf("%w: record %d: %w", ErrInvalidRecord, i, err)
		}
		if i > 0 && !start.After(eras[i-1].Start) {
			return nil, fmt.Errorf("%w: %s (%s) after %s (%s)",
				ErrUnorderedTable, rec.NameJA, rec.StartDate, eras[i-1].Name, eras[i-1].Start.Format(DateLayout))
		}

		abbr := rec.AbbrJA
		if abbr == "" {
			abbr = firstRune(rec.NameJA)
		}

		eras = append(eras, Era{
			Name:       rec.NameJA,
			Abbr:       abbr,
			Romaji:     rec.NameEN,
			RomajiAbbr: firstRune(rec.NameEN),
			Start:      start,
		})
		explicit = append(explicit, rec.AbbrJA != "")
	}

	slices.Reverse(eras)
	slices.Reverse(explicit)

	t := &Table{
		eras:         eras,
		explicitAbbr: explicit,
		index: map[Form]map[string]int{
			FormName:       make(map[string]int, len(eras)),
			FormAbbr:       make(map[string]int, len(eras)),
			FormRomaji:     make(map[string]int, len(eras)),
			FormRomajiAbbr: make(map[string]int, len(eras)),
		},
	}

	for i, e := range eras {
		if _, ok := t.index[FormName][e.Name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, e.Name)
		}
		if _, ok := t.index[FormRomaji][e.Romaji]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, e.Romaji)
		}
		if _, ok := t.index[FormAbbr][e.Abbr]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateAbbr, e.Abbr)
		}
		t.index[FormName][e.Name] = i
		t.index[FormRomaji][e.Romaji] = i
		t.index[FormAbbr][e.Abbr] = i

		// Most recent era wins on romanized abbreviation collisions
		if _, ok := t.index[FormRomajiAbbr][e.RomajiAbbr]; !ok {
			t.index[FormRomajiAbbr][e.RomajiAbbr] = i
		}
	}

	return t, nil
}

// Len returns the number of eras in the table.
func (t *Table) Len() int {
	return len(t.eras)
}

// Eras returns a copy of the eras, most recent first.
func (t *Table) Eras() []Era {
	return slices.Clone(t.eras)
}

// Earliest returns the oldest era of the table.
func (t *Table) Earliest() Era {
	return t.eras[len(t.eras)-1]
}

// Latest returns the most recent era of the table.
func (t *Table) Latest() Era {
	return t.eras[0]
}

// LookupByDate returns the era whose start date is the greatest start date not after
// the calendar date of d. Dates before every era fall back to the earliest era.
func (t *Table) LookupByDate(d time.Time) Era {
	day := DateOf(d)
	for _, e := range t.eras {
		if !day.Before(e.Start) {
			return e
		}
	}
	return t.Earliest()
}

// LookupByName resolves a designator in the given form.
func (t *Table) LookupByName(name string, f Form) (Era, error) {
	idx, ok := t.index[f][name]
	if !ok {
		return Era{}, fmt.Errorf("%w: %q (%s)", ErrUnknownEra, name, f)
	}
	return t.eras[idx], nil
}

// End returns the exclusive upper bound of e, which is the start of the following
// era. The latest era is unbounded and reports false.
func (t *Table) End(e Era) (time.Time, bool) {
	idx, ok := t.index[FormName][e.Name]
	if !ok || idx == 0 {
		return time.Time{}, false
	}
	return t.eras[idx-1].Start, true
}

// Designators returns every distinct designator of the given form, most recent era first.
func (t *Table) Designators(f Form) []string {
	out := make([]string, 0, len(t.eras))
	seen := make(map[string]struct{}, len(t.eras))
	for _, e := range t.eras {
		d := e.Designator(f)
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	return out
}

// Records returns the table in source format, oldest first.
func (t *Table) Records() []Record {
	out := make([]Record, 0, len(t.eras))
	for i := len(t.eras) - 1; i >= 0; i-- {
		e := t.eras[i]
		rec := Record{
			NameJA:    e.Name,
			NameEN:    e.Romaji,
			StartDate: e.Start.Format(DateLayout),
		}
		if t.explicitAbbr[i] {
			rec.AbbrJA = e.Abbr
		}
		out = append(out, rec)
	}
	return out
}
