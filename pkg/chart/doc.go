// Package chart builds 3D bar chart scenes from tabular (x, y, z) data.
//
// # Overview
//
// A bar chart is a grid of axis-aligned cuboids ("bars"). Each bar sits on a
// common baseline and rises to its data height. Bars are placed on category
// slots: every unique x value and every unique y value gets a zero-based slot
// index, and slot i starts at offset + i*2*step so that neighboring bars are
// separated by a gap as wide as a bar.
//
// # Input Shapes
//
// [Build] accepts three sequences and decides how to read them with
// [Classify]:
//
//   - [ModeDense]: x, y and z have equal length, and the (x, y) pairs cover the
//     full Cartesian product of unique x and unique y. One bar per cell.
//   - [ModePaired]: x, y and z have equal length but do not form a full grid.
//     One bar per index; duplicate (x, y) pairs each produce their own bar.
//   - [ModeSparse]: anything else that passes [Validate]. The grid has
//     unique(x) * unique(y) cells and z fills them in row-major order over y
//     (cell (xi, yi) receives z[yi*nx + xi]). Cells past the end of z become
//     near-invisible placeholders.
//
// Inputs that satisfy neither len(x)*len(y) == len(z) nor
// len(x) == len(y) == len(z) are rejected with a [*ShapeMismatchError] before
// any geometry is built.
//
// # Geometry
//
// Every bar is a [Cuboid]: eight vertices from [NewCuboid] and the shared
// twelve-triangle [Faces] topology. Present cells have opacity 1.
// Placeholders have [PlaceholderOpacity] and a top equal to the baseline.
//
// # Styling
//
// Colors come from [Palette] according to the [ColorMode]. Axis ticks come
// from [Ticks] and labels from [TickLabels] or from explicit [Legend] values.
//
// Basic usage:
//
//	x := chart.Nums(1, 10)
//	y := chart.Nums(2, 4)
//	z := chart.Heights(10, 30, 20, 45)
//
//	scene, err := chart.Build(x, y, z, chart.DefaultOptions())
//	if err != nil {
//	    return err
//	}
//	for _, bar := range scene.Visible() {
//	    fmt.Println(bar.XLabel, bar.YLabel, bar.Height.Value)
//	}
//
// The returned [Scene] is immutable by convention and is handed to a renderer
// in [github.com/matzehuels/barchart3d/pkg/chart/sink].
package chart
