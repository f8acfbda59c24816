package table

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/barchart3d/pkg/errors"
)

func TestReadJSON(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		wantCols []string
		wantRows [][]string
	}{
		{
			name:     "rows",
			in:       `[{"x": 1, "y": "a", "z": 1.5}, {"x": 2, "z": null, "y": "b"}, {"w": true}]`,
			wantCols: []string{"x", "y", "z", "w"},
			wantRows: [][]string{{"1", "a", "1.5"}, {"2", "b", ""}, {"", "", "", "true"}},
		},
		{
			name:     "columns",
			in:       `{"x": [1, 10], "y": [2, 4], "z": [10, 30, 20, 45]}`,
			wantCols: []string{"x", "y", "z"},
			wantRows: [][]string{{"1", "2", "10"}, {"10", "4", "30"}, {"", "", "20"}, {"", "", "45"}},
		},
		{
			name:     "number text kept",
			in:       `{"z": [1e3, 0.10]}`,
			wantCols: []string{"z"},
			wantRows: [][]string{{"1e3"}, {"0.10"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl, err := ReadJSON(strings.NewReader(tt.in))
			if err != nil {
				t.Fatalf("ReadJSON() error: %v", err)
			}
			if diff := cmp.Diff(tt.wantCols, tbl.Columns); diff != "" {
				t.Errorf("columns mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantRows, tbl.Rows); diff != "" {
				t.Errorf("rows mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReadJSONErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		code errors.Code
	}{
		{"empty", "  ", errors.ErrCodeNoData},
		{"scalar", "42", errors.ErrCodeInvalidInput},
		{"column not array", `{"x": 1}`, errors.ErrCodeInvalidInput},
		{"nested", `[{"x": {"a": 1}}]`, errors.ErrCodeInvalidInput},
		{"row not object", `[1, 2]`, errors.ErrCodeInvalidInput},
		{"malformed", `{"x": [1,`, errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadJSON(strings.NewReader(tt.in))
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want %s", err, tt.code)
			}
		})
	}
}
