package cli

import (
	"strings"
	"testing"

	"github.com/matzehuels/barchart3d/pkg/chart"
)

func TestInspectCommand(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "sparse",
			content: sparseCSV,
			want:    []string{"sparse", "2 x 3", "x 2 · y 3 · z 6", "placeholders"},
		},
		{
			name:    "dense",
			content: denseCSV,
			want:    []string{"dense", "2 x 2", "8"}, // baseline 0.8 * 10
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := writeFile(t, t.TempDir(), tt.name+".csv", tt.content)
			out, err := runCLI(t, "inspect", input, "--no-cache")
			if err != nil {
				t.Fatalf("inspect: %v", err)
			}
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("output does not contain %q:\n%s", w, out)
				}
			}
		})
	}
}

func TestCategories(t *testing.T) {
	short := axisOf("a", "b", "c")
	if got := categories(short, 3); got != "3: a, b, c" {
		t.Errorf("categories = %q", got)
	}

	long := axisOf("1", "2", "3", "4", "5", "6", "7", "8", "9", "10")
	if got := categories(long, 10); got != "10: 1, 2, 3, 4, …, 7, 8, 9, 10" {
		t.Errorf("categories = %q", got)
	}
}

func axisOf(labels ...string) chart.Axis {
	return chart.Axis{TickText: labels}
}
