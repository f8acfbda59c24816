package table

import (
	"strings"

	"github.com/matzehuels/barchart3d/pkg/errors"
)

// Table is a header plus rows of raw cells. Rows may be shorter than the
// header; missing cells read as empty.
type Table struct {
	Columns []string
	Rows    [][]string
}

// New builds a table from a header row and data rows. Header cells are
// trimmed.
func New(header []string, rows [][]string) *Table {
	cols := make([]string, len(header))
	for i, h := range header {
		cols[i] = strings.TrimSpace(h)
	}
	return &Table{Columns: cols, Rows: rows}
}

// Index returns the position of a column. Exact matches win over
// case-insensitive ones.
func (t *Table) Index(name string) (int, error) {
	for i, c := range t.Columns {
		if c == name {
			return i, nil
		}
	}
	want := strings.TrimSpace(name)
	for i, c := range t.Columns {
		if strings.EqualFold(c, want) {
			return i, nil
		}
	}
	return -1, errors.New(errors.ErrCodeColumnNotFound, "column %q not found (available: %s)", name, strings.Join(t.Columns, ", "))
}

// Column returns every cell of the named column, one per row.
func (t *Table) Column(name string) ([]string, error) {
	i, err := t.Index(name)
	if err != nil {
		return nil, err
	}
	return t.columnAt(i), nil
}

func (t *Table) columnAt(i int) []string {
	out := make([]string, len(t.Rows))
	for r, row := range t.Rows {
		if i < len(row) {
			out[r] = row[i]
		}
	}
	return out
}

// Len returns the number of data rows.
func (t *Table) Len() int { return len(t.Rows) }
