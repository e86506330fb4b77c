package era

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
)

//go:embed eras.json
var defaultTableJSON []byte

var defaultTable = sync.OnceValue(func() *Table {
	t, err := Load(bytes.NewReader(defaultTableJSON))
	if err != nil {
		panic(fmt.Sprintf("era: embedded table is invalid: %v", err))
	}
	return t
})

// Default returns the embedded table covering Meiji through Reiwa.
func Default() *Table {
	return defaultTable()
}

// Load reads a table in source format from r.
func Load(r io.Reader) (*Table, error) {
	var records []Record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: decode: %w", ErrInvalidRecord, err)
	}
	return NewTable(records)
}

// LoadFile reads a table in source format from the named file.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open era table: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// WriteJSON persists the table in source format, oldest first, indented by four
// spaces with non-ASCII characters left unescaped.
func (t *Table) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(t.Records()); err != nil {
		return fmt.Errorf("failed to encode era table: %w", err)
	}
	return nil
}
