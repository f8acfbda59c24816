package chart

import (
	"fmt"
	"slices"

	"github.com/matzehuels/barchart3d/pkg/errors"
)

// ShapeMismatchError reports input lengths that fit neither the grid
// relationship (x*y = z) nor the paired relationship (x = y = z).
type ShapeMismatchError struct {
	X, Y, Z int
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("input arguments are not matching, received x:%d, y:%d, z:%d, expected x*y=z or x=y=z", e.X, e.Y, e.Z)
}

// ErrorCode implements [errors.Coder].
func (e *ShapeMismatchError) ErrorCode() errors.Code { return errors.ErrCodeShapeMismatch }

// Validate checks the lengths of the x, y and z sequences.
func Validate(nx, ny, nz int) error {
	if nx*ny == nz {
		return nil
	}
	if nx == ny && ny == nz {
		return nil
	}
	return &ShapeMismatchError{X: nx, Y: ny, Z: nz}
}

// Classify decides how x, y and z are read. See the package documentation
// for the three modes.
func Classify(x, y []Value, z []Height) (Mode, error) {
	if err := Validate(len(x), len(y), len(z)); err != nil {
		return 0, err
	}
	if len(x) != len(y) || len(y) != len(z) {
		return ModeSparse, nil
	}
	ux, uy := Uniques(x, false), Uniques(y, false)
	if len(z) == len(ux)*len(uy) && coversProduct(x, y, len(ux)*len(uy)) {
		return ModeDense, nil
	}
	return ModePaired, nil
}

// coversProduct reports whether the distinct (x, y) pairs number cells.
// Every pair is drawn from unique(x) x unique(y), so reaching the product
// size means set equality.
func coversProduct(x, y []Value, cells int) bool {
	seen := make(map[[2]string]struct{}, len(x))
	for i := range x {
		seen[[2]string{x[i].Key(), y[i].Key()}] = struct{}{}
	}
	return len(seen) == cells
}

// Uniques returns the distinct categories of vals in first appearance order,
// or in [Compare] order when sorted is set.
func Uniques(vals []Value, sorted bool) []Value {
	seen := make(map[string]struct{}, len(vals))
	out := make([]Value, 0, len(vals))
	for _, v := range vals {
		k := v.Key()
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, v)
	}
	if sorted {
		slices.SortStableFunc(out, Compare)
	}
	return out
}

// indexOf maps category keys to slot indices.
func indexOf(uniq []Value) map[string]int {
	idx := make(map[string]int, len(uniq))
	for i, v := range uniq {
		idx[v.Key()] = i
	}
	return idx
}

// SparseGrid lays z over an nx by ny grid in row-major order over y: cell
// (xi, yi) is at index yi*nx + xi and receives z[yi*nx + xi]. Cells past
// the end of z are missing. The second result counts values of z that did
// not fit.
func SparseGrid(nx, ny int, z []Height) ([]Height, int) {
	cells := nx * ny
	grid := make([]Height, cells)
	n := copy(grid, z)
	for i := n; i < cells; i++ {
		grid[i] = None()
	}
	return grid, len(z) - n
}
