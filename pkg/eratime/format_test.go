package eratime_test

import (
	"sync"
	"testing"
	"time"

	"github.com/ncruces/go-strftime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/eradate/pkg/era"
	"github.com/dmitrymomot/eradate/pkg/eratime"
)

type formatCase struct {
	date time.Time
	want string
}

func runFormatCases(t *testing.T, layout string, cases []formatCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.want, func(t *testing.T) {
			assert.Equal(t, tc.want, eratime.Format(layout, tc.date))
			assert.Equal(t, tc.want, eratime.From(tc.date).Strftime(layout))
		})
	}
}

func TestFormat_FullNativeEra(t *testing.T) {
	t.Parallel()
	runFormatCases(t, "%G年%m月%d日", []formatCase{
		{date(2024, time.October, 30), "令和6年10月30日"},
		{date(2018, time.April, 1), "平成30年04月01日"},
		{date(1989, time.January, 7), "昭和64年01月07日"},
		{date(1926, time.December, 24), "大正15年12月24日"},
		{date(1912, time.July, 29), "明治45年07月29日"},
		{date(2019, time.May, 1), "令和元年05月01日"},
		{date(1989, time.January, 8), "平成元年01月08日"},
		{date(1926, time.December, 25), "昭和元年12月25日"},
		{date(1912, time.July, 30), "大正元年07月30日"},
		{date(1868, time.September, 8), "明治元年09月08日"},
		{date(2019, time.April, 30), "平成31年04月30日"},
		{date(1992, time.February, 29), "平成4年02月29日"},
	})
}

func TestFormat_AbbrNativeEra(t *testing.T) {
	t.Parallel()
	runFormatCases(t, "%g年%m月%d日", []formatCase{
		{date(2023, time.October, 30), "令5年10月30日"},
		{date(2018, time.April, 1), "平30年04月01日"},
		{date(1989, time.January, 7), "昭64年01月07日"},
		{date(1912, time.July, 30), "大1年07月30日"},
		{date(1912, time.July, 29), "明45年07月29日"},
		{date(2019, time.May, 1), "令1年05月01日"},
		{date(1989, time.January, 8), "平1年01月08日"},
		{date(1926, time.December, 25), "昭1年12月25日"},
		{date(1868, time.September, 8), "明1年09月08日"},
		{date(2019, time.April, 30), "平31年04月30日"},
		{date(1992, time.February, 29), "平4年02月29日"},
	})
}

func TestFormat_FullRomajiEra(t *testing.T) {
	t.Parallel()
	runFormatCases(t, "%E, %B %d", []formatCase{
		{date(2023, time.October, 30), "Reiwa 5, October 30"},
		{date(2018, time.April, 1), "Heisei 30, April 01"},
		{date(1989, time.January, 7), "Showa 64, January 07"},
		{date(1912, time.July, 30), "Taisho 1, July 30"},
		{date(1912, time.July, 29), "Meiji 45, July 29"},
		{date(2019, time.May, 1), "Reiwa 1, May 01"},
		{date(1989, time.January, 8), "Heisei 1, January 08"},
		{date(1926, time.December, 25), "Showa 1, December 25"},
		{date(1868, time.September, 8), "Meiji 1, September 08"},
		{date(2019, time.April, 30), "Heisei 31, April 30"},
		{date(1992, time.February, 29), "Heisei 4, February 29"},
	})
}

func TestFormat_AbbrRomajiEra(t *testing.T) {
	t.Parallel()
	runFormatCases(t, "%e/%m/%d", []formatCase{
		{date(2023, time.October, 30), "R5/10/30"},
		{date(2018, time.April, 1), "H30/04/01"},
		{date(1989, time.January, 7), "S64/01/07"},
		{date(1912, time.July, 30), "T1/07/30"},
		{date(1912, time.July, 29), "M45/07/29"},
		{date(2019, time.May, 1), "R1/05/01"},
		{date(1989, time.January, 8), "H1/01/08"},
		{date(1926, time.December, 25), "S1/12/25"},
		{date(1868, time.September, 8), "M1/09/08"},
		{date(2019, time.April, 30), "H31/04/30"},
		{date(1992, time.February, 29), "H4/02/29"},
	})
}

func TestFormat_Mixed(t *testing.T) {
	t.Parallel()

	ts := time.Date(2023, time.October, 30, 14, 5, 9, 0, time.UTC)

	assert.Equal(t, "令和5年10月30日 14:05:09", eratime.Format("%G年%m月%d日 %H:%M:%S", ts))
	assert.Equal(t, "令和5 (R5)", eratime.Format("%G (%e)", ts))
	assert.Equal(t, "%G 令5", eratime.Format("%%G %g", ts))
	assert.Equal(t, "令和5年(2023年)", eratime.Format("%G年(%Y年)", ts))
	assert.Equal(t, "令和5年", eratime.Format("%G年", ts.In(time.FixedZone("JST", 9*60*60))))
	assert.Equal(t, "R5 100%", eratime.Format("%e 100%", ts))
	assert.Equal(t, "R5 100%-", eratime.Format("%e 100%-", ts))
}

func TestFormat_FlaggedCodes(t *testing.T) {
	t.Parallel()

	ts := time.Date(2023, time.January, 5, 9, 4, 0, 0, time.UTC)

	assert.Equal(t, "令和5年1月5日", eratime.Format("%G年%-m月%-d日", ts))
	assert.Equal(t, "R5 9:04", eratime.Format("%e %-H:%M", ts))

	// Non-era codes render the same with or without an era code in the layout.
	for _, layout := range []string{"%-m/%-d", "%-H:%M", "%:z"} {
		t.Run(layout, func(t *testing.T) {
			assert.Equal(t, "R5 "+strftime.Format(layout, ts), eratime.Format("%e "+layout, ts))
		})
	}
}

func TestFormat_BeforeEarliestEra(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "明治-67年", eratime.Format("%G年", date(1800, time.January, 1)))
	assert.Equal(t, "明治0年", eratime.Format("%G年", date(1867, time.January, 1)))
	assert.Equal(t, "M1", eratime.Format("%e", date(1868, time.January, 1)))
}

func TestFormat_FastPath(t *testing.T) {
	t.Parallel()

	ts := time.Date(1989, time.January, 7, 23, 59, 59, 0, time.UTC)
	for _, layout := range []string{"%Y-%m-%d", "%d %B %Y %H:%M:%S", "%a %b %d %Y", "%%G", ""} {
		t.Run(layout, func(t *testing.T) {
			assert.Equal(t, strftime.Format(layout, ts), eratime.Format(layout, ts))
		})
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	table := era.Default()
	layouts := []string{"%G年%m月%d日", "%g年%m月%d日", "%E, %B %d", "%e/%m/%d"}

	for _, e := range table.Eras() {
		end, bounded := table.End(e)
		if !bounded {
			end = e.Start.AddDate(10, 0, 0)
		}

		t.Run(e.Romaji, func(t *testing.T) {
			t.Parallel()
			for d := e.Start; d.Before(end); d = d.AddDate(0, 0, 11) {
				for _, layout := range layouts {
					text := eratime.Format(layout, d)
					got, err := eratime.Parse(layout, text)
					require.NoError(t, err, "layout %q text %q", layout, text)
					require.Equal(t, d, got.Time, "layout %q text %q", layout, text)
				}
			}

			last := end.AddDate(0, 0, -1)
			text := eratime.Format("%G年%m月%d日", last)
			got, err := eratime.Parse("%G年%m月%d日", text)
			require.NoError(t, err)
			assert.Equal(t, last, got.Time)
		})
	}
}

func TestCodec_Concurrent(t *testing.T) {
	t.Parallel()

	codec, err := eratime.New(eratime.WithCacheSize(2))
	require.NoError(t, err)

	layouts := []string{"%G年%m月%d日", "%g年%m月%d日", "%E, %B %d", "%e/%m/%d"}
	want := date(2023, time.October, 30)

	var wg sync.WaitGroup
	for i := range 32 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			layout := layouts[i%len(layouts)]
			for range 50 {
				text := codec.Format(layout, want)
				got, err := codec.Parse(layout, text)
				assert.NoError(t, err)
				assert.Equal(t, want, got.Time)
			}
		}(i)
	}
	wg.Wait()
}
