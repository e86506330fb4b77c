package era_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/eradate/pkg/era"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	src := `[
		{"name_ja": "明治", "name_en": "Meiji", "start_date": "1868-09-08"},
		{"name_ja": "大正", "name_en": "Taisho", "start_date": "1912-07-30", "abbr_ja": "Ｔ"}
	]`

	table, err := era.Load(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, 2, table.Len())
	assert.Equal(t, "大正", table.Latest().Name)
	assert.Equal(t, "Ｔ", table.Latest().Abbr)

	t.Run("malformed json", func(t *testing.T) {
		_, err := era.Load(strings.NewReader(`{"name_ja":`))
		assert.ErrorIs(t, err, era.ErrInvalidRecord)
	})
}

func TestTable_WriteJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, era.Default().WriteJSON(&buf))

	out := buf.String()
	assert.Contains(t, out, `"name_ja": "令和"`)
	assert.NotContains(t, out, "abbr_ja")
	assert.Less(t, strings.Index(out, "明治"), strings.Index(out, "令和"), "source format is oldest first")

	reloaded, err := era.Load(&buf)
	require.NoError(t, err)
	assert.Equal(t, era.Default().Eras(), reloaded.Eras())
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "eras.json")
	var buf bytes.Buffer
	require.NoError(t, era.Default().WriteJSON(&buf))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))

	table, err := era.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 5, table.Len())

	_, err = era.LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
