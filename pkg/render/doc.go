// Package render converts SVG documents into raster and print formats.
//
// # Overview
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg). The chart sinks call them
// after drawing the isometric SVG:
//
//	svg := sink.RenderSVG(scene)
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0) // 2x scale
//
// When rsvg-convert is not installed both functions fail with an error
// carrying [errors.ErrCodeUnsupported] and installation hints.
//
// [errors.ErrCodeUnsupported]: https://pkg.go.dev/github.com/matzehuels/barchart3d/pkg/errors#ErrCodeUnsupported
package render
