package table

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/matzehuels/barchart3d/pkg/errors"
)

// ReadJSON reads either an array of row objects
//
//	[{"x": 1, "y": 2, "z": 10}, ...]
//
// or an object of column arrays
//
//	{"x": [1, 10], "y": [2, 4], "z": [10, 30, 20, 45]}
//
// Column order follows the order keys first appear. Short columns are padded
// with empty cells.
func ReadJSON(r io.Reader) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read json")
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, errors.New(errors.ErrCodeNoData, "empty json document")
	}

	switch data[0] {
	case '[':
		return readJSONRows(data)
	case '{':
		return readJSONColumns(data)
	}
	return nil, errors.New(errors.ErrCodeInvalidInput, "json must be an array of rows or an object of columns")
}

func readJSONRows(data []byte) (*Table, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse json rows")
	}

	var header []string
	pos := map[string]int{}
	rows := make([][]string, 0, len(raw))
	for i, msg := range raw {
		keys, vals, err := orderedObject(msg)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "row %d", i+1)
		}
		row := make([]string, len(header))
		for k, key := range keys {
			p, ok := pos[key]
			if !ok {
				p = len(header)
				pos[key] = p
				header = append(header, key)
				row = append(row, "")
			}
			cell, err := cellText(vals[k])
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "row %d, column %q", i+1, key)
			}
			row[p] = cell
		}
		rows = append(rows, row)
	}
	return New(header, rows), nil
}

func readJSONColumns(data []byte) (*Table, error) {
	keys, vals, err := orderedObject(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse json columns")
	}

	cols := make([][]string, len(keys))
	n := 0
	for i, v := range vals {
		var cells []json.RawMessage
		if err := json.Unmarshal(v, &cells); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "column %q is not an array", keys[i])
		}
		cols[i] = make([]string, len(cells))
		for r, c := range cells {
			if cols[i][r], err = cellText(c); err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "column %q, row %d", keys[i], r+1)
			}
		}
		n = max(n, len(cells))
	}

	rows := make([][]string, n)
	for r := range rows {
		rows[r] = make([]string, len(cols))
		for c, col := range cols {
			if r < len(col) {
				rows[r][c] = col[r]
			}
		}
	}
	return New(keys, rows), nil
}

// orderedObject decodes a JSON object keeping its key order.
func orderedObject(data []byte) ([]string, []json.RawMessage, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, nil, fmt.Errorf("expected an object")
	}

	var keys []string
	var vals []json.RawMessage
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, nil, err
		}
		key, _ := tok.(string)
		var v json.RawMessage
		if err := dec.Decode(&v); err != nil {
			return nil, nil, err
		}
		keys = append(keys, key)
		vals = append(vals, v)
	}
	return keys, vals, nil
}

// cellText renders a JSON scalar as a raw cell. Numbers keep their source
// text; null becomes an empty cell.
func cellText(msg json.RawMessage) (string, error) {
	dec := json.NewDecoder(bytes.NewReader(msg))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return "", err
	}
	switch t := v.(type) {
	case nil:
		return "", nil
	case string:
		return t, nil
	case json.Number:
		return t.String(), nil
	case bool:
		return strconv.FormatBool(t), nil
	}
	return "", fmt.Errorf("nested values are not supported")
}
