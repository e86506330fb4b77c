// Package eratime parses and formats dates written in era notation, such as
// 令和5年10月30日 or "Showa 64, January 7", using strftime-style layouts.
//
// The layout mini-language is strftime: a '%' followed by one code character.
// Four custom codes select the era notation:
//
//	%G  full native era name and year      令和5, 平成元
//	%g  abbreviated native era and year    令5, 平1
//	%E  full romanized era name and year   Reiwa 5
//	%e  abbreviated romanized era and year R5
//
// Every other code is handled by github.com/ncruces/go-strftime. A layout without era
// codes is passed to that library unchanged, so results are identical to calling
// strftime.Parse or strftime.Format directly.
//
// # Parsing
//
//	t, err := eratime.Parse("%G年%m月%d日", "令和5年10月30日")
//	if err != nil {
//		return err
//	}
//	fmt.Println(t.Format(time.DateOnly)) // 2023-10-30
//
// The first year of an era may be written as the digit 1 or the first-year marker
// (元 for native forms, Gannen for romanized forms); both parse to the same date.
// The input must match the layout in full. Parse errors wrap ErrFormatMismatch,
// ErrIncompleteDate, ErrInvalidDate, ErrUnsupportedDirective or ErrDuplicateDirective.
//
// Era codes may be combined with %Y; the two years must agree. Repeated era codes
// must name the same era and year.
//
// # Formatting
//
//	s := eratime.Format("%g年%m月%d日", time.Date(2019, 4, 30, 0, 0, 0, 0, time.UTC))
//	// 平31年04月30日
//
// Only %G renders the first year as 元; %g, %E and %e always print digits.
// Dates before the earliest era are rendered under the earliest era.
//
// # Codec
//
// The package-level functions use a shared Codec over the embedded era table.
// Create a Codec to use another table or stricter rules:
//
//	table, err := era.LoadFile("eras.json")
//	if err != nil {
//		return err
//	}
//	codec, err := eratime.New(
//		eratime.WithTable(table),
//		eratime.WithStrict(),       // reject 平成40年
//		eratime.WithWidthFolding(), // accept 令和５年
//	)
//
// A Codec caches compiled layouts and is safe for concurrent use.
package eratime
