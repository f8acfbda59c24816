package chart

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewCuboid(t *testing.T) {
	c := NewCuboid(0, 1, 2, 3, 8, 10)

	xs, ys, zs := c.Coords()
	if diff := cmp.Diff([]float64{0, 0, 1, 1, 0, 0, 1, 1}, xs); diff != "" {
		t.Errorf("x mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{2, 3, 3, 2, 2, 3, 3, 2}, ys); diff != "" {
		t.Errorf("y mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{8, 8, 8, 8, 10, 10, 10, 10}, zs); diff != "" {
		t.Errorf("z mismatch (-want +got):\n%s", diff)
	}
	if c.Opacity != 1 {
		t.Errorf("Opacity = %v, want 1", c.Opacity)
	}
	if got, want := c.Min(), (Vec3{0, 2, 8}); got != want {
		t.Errorf("Min() = %+v, want %+v", got, want)
	}
	if got, want := c.Max(), (Vec3{1, 3, 10}); got != want {
		t.Errorf("Max() = %+v, want %+v", got, want)
	}
}

func TestFaceIndices(t *testing.T) {
	i, j, k := FaceIndices()
	if diff := cmp.Diff([]int{7, 0, 0, 0, 4, 4, 6, 6, 4, 0, 3, 2}, i); diff != "" {
		t.Errorf("i mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{3, 4, 1, 2, 5, 6, 5, 2, 0, 1, 6, 3}, j); diff != "" {
		t.Errorf("j mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{0, 7, 2, 3, 6, 7, 1, 1, 5, 5, 7, 6}, k); diff != "" {
		t.Errorf("k mismatch (-want +got):\n%s", diff)
	}
}

func TestFacesCoverEveryVertex(t *testing.T) {
	var used [8]int
	for _, f := range Faces {
		for _, v := range f {
			if v < 0 || v > 7 {
				t.Fatalf("face %v indexes vertex %d", f, v)
			}
			used[v]++
		}
	}
	for v, n := range used {
		if n == 0 {
			t.Errorf("vertex %d is not part of any face", v)
		}
	}
}

func TestTicks(t *testing.T) {
	tests := []struct {
		name        string
		n           int
		start, step float64
		want        []float64
	}{
		{"defaults", 3, 0, 1, []float64{0, 2, 4}},
		{"offset", 2, 1.5, 0.5, []float64{1.5, 2.5}},
		{"none", 0, 0, 1, []float64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, Ticks(tt.n, tt.start, tt.step)); diff != "" {
				t.Errorf("Ticks mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestColorFor(t *testing.T) {
	tests := []struct {
		name                     string
		mode                     ColorMode
		xi, yi, yCount, pointIdx int
		grid                     bool
		want                     string
	}{
		{"x", ColorX, 3, 1, 2, 0, true, Palette[3]},
		{"y", ColorY, 3, 1, 2, 0, true, Palette[1]},
		{"x+y grid", ColorXY, 1, 1, 2, 0, true, Palette[3]},
		{"x+y paired", ColorXY, 1, 1, 2, 4, false, Palette[4]},
		{"wraps", ColorX, 12, 0, 1, 0, true, Palette[3]},
		{"wraps at nine", ColorXY, 0, 0, 1, 9, false, Palette[0]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ColorFor(tt.mode, tt.xi, tt.yi, tt.yCount, tt.pointIdx, tt.grid)
			if got != tt.want {
				t.Errorf("ColorFor() = %q, want %q", got, tt.want)
			}
		})
	}
}
