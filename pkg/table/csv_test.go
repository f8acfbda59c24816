package table

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/barchart3d/pkg/errors"
)

func TestReadCSV(t *testing.T) {
	in := "\ufeffx, y,z\n1,2,10\n10,4,30\n,8,20\n,,45\n"
	tbl, err := ReadCSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadCSV() error: %v", err)
	}
	if diff := cmp.Diff([]string{"x", "y", "z"}, tbl.Columns); diff != "" {
		t.Errorf("columns mismatch (-want +got):\n%s", diff)
	}
	if tbl.Len() != 4 {
		t.Errorf("Len() = %d, want 4", tbl.Len())
	}
}

func TestReadDelimitedTabs(t *testing.T) {
	tbl, err := ReadDelimited(strings.NewReader("a\tb\n1\t2\n"), '\t')
	if err != nil {
		t.Fatalf("ReadDelimited() error: %v", err)
	}
	if diff := cmp.Diff([][]string{{"1", "2"}}, tbl.Rows); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestReadCSVErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		code errors.Code
	}{
		{"empty", "", errors.ErrCodeNoData},
		{"bad quote", "x,y\n\"1,2\n", errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadCSV(strings.NewReader(tt.in))
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want %s", err, tt.code)
			}
		})
	}
}
