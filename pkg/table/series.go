package table

import (
	"math"
	"strconv"
	"strings"

	"github.com/matzehuels/barchart3d/pkg/chart"
	"github.com/matzehuels/barchart3d/pkg/errors"
)

// Series extracts the x, y and z sequences from a table. Empty column names
// select the first, second and third column.
//
// Trailing empty cells of each column are dropped, so a file may hold axis
// lists of different lengths side by side. The z column is never trimmed
// below the longer of x and y: an empty height on a row that still carries
// categories is missing, like NaN, null and None anywhere in the column.
func Series(t *Table, xCol, yCol, zCol string) ([]chart.Value, []chart.Value, []chart.Height, error) {
	cols := [3][]string{}
	for i, name := range []string{xCol, yCol, zCol} {
		cells, err := pick(t, name, i)
		if err != nil {
			return nil, nil, nil, err
		}
		cols[i] = cells
	}
	cols[0] = trimTrailing(cols[0], 0)
	cols[1] = trimTrailing(cols[1], 0)
	cols[2] = trimTrailing(cols[2], max(len(cols[0]), len(cols[1])))

	x, err := categories(cols[0], label(t, xCol, 0))
	if err != nil {
		return nil, nil, nil, err
	}
	y, err := categories(cols[1], label(t, yCol, 1))
	if err != nil {
		return nil, nil, nil, err
	}
	z, err := heights(cols[2], label(t, zCol, 2))
	if err != nil {
		return nil, nil, nil, err
	}
	return x, y, z, nil
}

func pick(t *Table, name string, pos int) ([]string, error) {
	if name != "" {
		if err := errors.ValidateColumnName(name); err != nil {
			return nil, err
		}
		return t.Column(name)
	}
	if pos >= len(t.Columns) {
		return nil, errors.New(errors.ErrCodeColumnNotFound, "need at least %d columns, found %d", pos+1, len(t.Columns))
	}
	return t.columnAt(pos), nil
}

func label(t *Table, name string, pos int) string {
	if name != "" {
		return name
	}
	if pos < len(t.Columns) {
		return t.Columns[pos]
	}
	return strconv.Itoa(pos)
}

// trimTrailing drops trailing empty cells but keeps at least keep of them.
func trimTrailing(cells []string, keep int) []string {
	n := len(cells)
	for n > keep && strings.TrimSpace(cells[n-1]) == "" {
		n--
	}
	return cells[:n]
}

func categories(cells []string, col string) ([]chart.Value, error) {
	out := make([]chart.Value, len(cells))
	for i, c := range cells {
		if strings.TrimSpace(c) == "" {
			return nil, errors.New(errors.ErrCodeInvalidInput, "column %q, row %d: empty category", col, i+1)
		}
		out[i] = chart.ParseValue(strings.TrimSpace(c))
	}
	return out, nil
}

func heights(cells []string, col string) ([]chart.Height, error) {
	out := make([]chart.Height, len(cells))
	for i, c := range cells {
		c = strings.TrimSpace(c)
		if missing(c) {
			out[i] = chart.None()
			continue
		}
		f, err := strconv.ParseFloat(c, 64)
		if err != nil || math.IsInf(f, 0) {
			return nil, errors.New(errors.ErrCodeInvalidInput, "column %q, row %d: height %q is not numeric", col, i+1, c)
		}
		if math.IsNaN(f) {
			out[i] = chart.None()
			continue
		}
		out[i] = chart.Some(f)
	}
	return out, nil
}

func missing(c string) bool {
	switch strings.ToLower(c) {
	case "", "nan", "null", "none", "na":
		return true
	}
	return false
}
