package era_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/eradate/pkg/era"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDefault(t *testing.T) {
	t.Parallel()

	table := era.Default()
	require.Equal(t, 5, table.Len())
	assert.Equal(t, "令和", table.Latest().Name)
	assert.Equal(t, "明治", table.Earliest().Name)

	eras := table.Eras()
	for i := 1; i < len(eras); i++ {
		assert.True(t, eras[i-1].Start.After(eras[i].Start), "start dates must decrease most-recent-first")
	}

	reiwa := table.Latest()
	assert.Equal(t, "令", reiwa.Abbr)
	assert.Equal(t, "Reiwa", reiwa.Romaji)
	assert.Equal(t, "R", reiwa.RomajiAbbr)
	assert.Equal(t, date(2019, time.May, 1), reiwa.Start)
}

func TestTable_LookupByDate(t *testing.T) {
	t.Parallel()
	table := era.Default()

	tests := []struct {
		name    string
		date    time.Time
		want    string
		eraYear int
	}{
		{"current era", date(2023, time.October, 30), "令和", 5},
		{"day before Reiwa", date(2019, time.April, 30), "平成", 31},
		{"Reiwa start", date(2019, time.May, 1), "令和", 1},
		{"Heisei start", date(1989, time.January, 8), "平成", 1},
		{"last day of Showa", date(1989, time.January, 7), "昭和", 64},
		{"Taisho start", date(1912, time.July, 30), "大正", 1},
		{"last day of Meiji", date(1912, time.July, 29), "明治", 45},
		{"Meiji start", date(1868, time.September, 8), "明治", 1},
		{"far future", date(2200, time.January, 1), "令和", 182},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := table.LookupByDate(tt.date)
			assert.Equal(t, tt.want, e.Name)
			assert.Equal(t, tt.eraYear, e.Year(tt.date))
		})
	}

	t.Run("time of day is ignored", func(t *testing.T) {
		e := table.LookupByDate(time.Date(2019, time.April, 30, 23, 59, 59, 0, time.UTC))
		assert.Equal(t, "平成", e.Name)
	})

	t.Run("calendar date is taken in the value's location", func(t *testing.T) {
		jst := time.FixedZone("JST", 9*60*60)
		e := table.LookupByDate(time.Date(2019, time.May, 1, 0, 30, 0, 0, jst))
		assert.Equal(t, "令和", e.Name)
	})

	t.Run("before the earliest era falls back", func(t *testing.T) {
		d := date(1800, time.January, 1)
		e := table.LookupByDate(d)
		assert.Equal(t, "明治", e.Name)
		assert.Equal(t, -67, e.Year(d))
	})
}

func TestTable_LookupByDateMonotonic(t *testing.T) {
	t.Parallel()
	table := era.Default()

	prev := table.LookupByDate(date(1868, time.September, 8))
	for d := date(1868, time.September, 8); d.Year() < 2030; d = d.AddDate(0, 0, 17) {
		e := table.LookupByDate(d)
		require.False(t, e.Start.Before(prev.Start), "era regressed at %s", d.Format(era.DateLayout))
		prev = e
	}
}

func TestTable_LookupByName(t *testing.T) {
	t.Parallel()
	table := era.Default()

	tests := []struct {
		name string
		form era.Form
		want string
	}{
		{"平成", era.FormName, "平成"},
		{"昭", era.FormAbbr, "昭和"},
		{"Taisho", era.FormRomaji, "大正"},
		{"M", era.FormRomajiAbbr, "明治"},
		{"R", era.FormRomajiAbbr, "令和"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := table.LookupByName(tt.name, tt.form)
			require.NoError(t, err)
			assert.Equal(t, tt.want, e.Name)
		})
	}

	t.Run("unknown name", func(t *testing.T) {
		_, err := table.LookupByName("慶応", era.FormName)
		assert.ErrorIs(t, err, era.ErrUnknownEra)
	})

	t.Run("form matters", func(t *testing.T) {
		_, err := table.LookupByName("平成", era.FormAbbr)
		assert.ErrorIs(t, err, era.ErrUnknownEra)
	})
}

func TestTable_End(t *testing.T) {
	t.Parallel()
	table := era.Default()

	heisei, err := table.LookupByName("平成", era.FormName)
	require.NoError(t, err)
	end, ok := table.End(heisei)
	require.True(t, ok)
	assert.Equal(t, date(2019, time.May, 1), end)

	_, ok = table.End(table.Latest())
	assert.False(t, ok)
}

func TestNewTable(t *testing.T) {
	t.Parallel()

	t.Run("empty", func(t *testing.T) {
		_, err := era.NewTable(nil)
		assert.ErrorIs(t, err, era.ErrEmptyTable)
	})

	t.Run("missing field", func(t *testing.T) {
		_, err := era.NewTable([]era.Record{{NameJA: "明治", StartDate: "1868-09-08"}})
		assert.ErrorIs(t, err, era.ErrInvalidRecord)
	})

	t.Run("bad date", func(t *testing.T) {
		_, err := era.NewTable([]era.Record{{NameJA: "明治", NameEN: "Meiji", StartDate: "1868/09/08"}})
		assert.ErrorIs(t, err, era.ErrInvalidRecord)
	})

	t.Run("unordered", func(t *testing.T) {
		_, err := era.NewTable([]era.Record{
			{NameJA: "大正", NameEN: "Taisho", StartDate: "1912-07-30"},
			{NameJA: "明治", NameEN: "Meiji", StartDate: "1868-09-08"},
		})
		assert.ErrorIs(t, err, era.ErrUnorderedTable)
	})

	t.Run("duplicate name", func(t *testing.T) {
		_, err := era.NewTable([]era.Record{
			{NameJA: "明治", NameEN: "Meiji", StartDate: "1868-09-08"},
			{NameJA: "明治", NameEN: "Meiji2", StartDate: "1912-07-30"},
		})
		assert.ErrorIs(t, err, era.ErrDuplicateName)
	})

	t.Run("duplicate native abbreviation", func(t *testing.T) {
		_, err := era.NewTable([]era.Record{
			{NameJA: "天平", NameEN: "Tenpyo", StartDate: "0729-09-02"},
			{NameJA: "天平感宝", NameEN: "Tenpyokanpo", StartDate: "0749-05-04"},
		})
		assert.ErrorIs(t, err, era.ErrDuplicateAbbr)
	})

	t.Run("explicit abbreviation resolves collision", func(t *testing.T) {
		table, err := era.NewTable([]era.Record{
			{NameJA: "天平", NameEN: "Tenpyo", StartDate: "0729-09-02"},
			{NameJA: "天平感宝", NameEN: "Tenpyokanpo", StartDate: "0749-05-04", AbbrJA: "感"},
		})
		require.NoError(t, err)

		e, err := table.LookupByName("感", era.FormAbbr)
		require.NoError(t, err)
		assert.Equal(t, "天平感宝", e.Name)
	})

	t.Run("romanized abbreviation collision picks most recent", func(t *testing.T) {
		table, err := era.NewTable([]era.Record{
			{NameJA: "嘉永", NameEN: "Kaei", StartDate: "1848-04-01"},
			{NameJA: "安政", NameEN: "Ansei", StartDate: "1855-01-15"},
			{NameJA: "慶応", NameEN: "Keio", StartDate: "1865-05-01"},
		})
		require.NoError(t, err)

		e, err := table.LookupByName("K", era.FormRomajiAbbr)
		require.NoError(t, err)
		assert.Equal(t, "慶応", e.Name)
		assert.Equal(t, []string{"K", "A"}, table.Designators(era.FormRomajiAbbr))
	})
}
