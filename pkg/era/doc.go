// Package era provides an immutable table of named calendar eras and the lookups
// needed to convert between era notation and Gregorian dates.
//
// An era is a contiguous span of the calendar that starts on a fixed date and runs up
// to (but not including) the start of the next era. The earliest era extends backward
// without bound and the latest era extends forward without bound, so every date
// resolves to exactly one era.
//
// # Era Table
//
// A Table is built once from an ordered list of records and never mutated afterwards,
// which makes it safe for concurrent use without locking:
//
//	import "github.com/dmitrymomot/eradate/pkg/era"
//
//	table := era.Default() // Meiji through Reiwa, embedded in the binary
//
//	e := table.LookupByDate(time.Date(2023, 10, 30, 0, 0, 0, 0, time.UTC))
//	fmt.Println(e.Name, e.Year(time.Date(2023, 10, 30, 0, 0, 0, 0, time.UTC))) // 令和 5
//
//	e, err := table.LookupByName("平成", era.FormName)
//	if errors.Is(err, era.ErrUnknownEra) {
//		// not in the table
//	}
//
// # Naming Forms
//
// Each era can be referenced in four forms:
//
//	FormName        native full name          令和
//	FormAbbr        native abbreviation       令
//	FormRomaji      romanized full name       Reiwa
//	FormRomajiAbbr  romanized abbreviation    R
//
// Native names, native abbreviations and romanized names must be unique across the
// table. Romanized abbreviations may collide; a colliding abbreviation resolves to the
// most recent era that uses it.
//
// # Source Format
//
// Tables are persisted as a JSON array ordered oldest-first:
//
//	[
//	    {"name_ja": "明治", "name_en": "Meiji", "start_date": "1868-09-08"},
//	    {"name_ja": "大正", "name_en": "Taisho", "start_date": "1912-07-30"}
//	]
//
// The optional "abbr_ja" field overrides the native abbreviation, which otherwise is
// the first character of the native name. Use Load or LoadFile to read a table and
// Table.WriteJSON to persist one.
//
// # Dates Before the First Era
//
// LookupByDate never fails: a date before the earliest era's start date reports under
// the earliest era, with an in-era year that may be zero or negative.
package era
