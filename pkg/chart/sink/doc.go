// Package sink provides output format renderers for bar chart scenes.
//
// # Overview
//
// A "sink" transforms a built [chart.Scene] into a final output format.
// This package provides renderers for:
//
//   - Plotly JSON: a figure with one mesh3d trace per bar
//   - HTML: a standalone page drawing the plotly figure with plotly.js
//   - ECharts: a standalone page with a go-echarts bar3D chart
//   - SVG: a static isometric drawing
//   - PDF: Print-ready output (requires rsvg-convert)
//   - PNG: Raster image output (requires rsvg-convert)
//
// # Plotly Output
//
// [RenderPlotlyJSON] keeps the full cuboid geometry: eight vertices, the
// shared i/j/k triangle lists, color, opacity, flat shading and hover text
// for every bar. Trace uids are derived from the scene title and the bar
// index, so re-rendering the same data yields byte-identical output.
//
//	fig, err := sink.RenderPlotlyJSON(scene, sink.WithPlotlySize(1200, 800))
//	page, err := sink.RenderHTML(scene)
//
// # SVG Output
//
// [RenderSVG] projects the scene isometrically and paints bars back to front:
//
//	svg := sink.RenderSVG(scene,
//	    sink.WithSize(1200, 900),
//	    sink.WithoutPlaceholders(),
//	)
//
// # PDF and PNG Output
//
// [RenderPDF] and [RenderPNG] render the scene as PDF/PNG by first generating
// SVG, then converting via [render.ToPDF] and [render.ToPNG]:
//
//	pdf, err := sink.RenderPDF(ctx, scene, opts...)
//	png, err := sink.RenderPNG(ctx, scene, sink.WithScale(2))
//
// These require librsvg to be installed:
//   - macOS: brew install librsvg
//   - Linux: apt install librsvg2-bin
//
// [render.ToPDF]: https://pkg.go.dev/github.com/matzehuels/barchart3d/pkg/render#ToPDF
// [render.ToPNG]: https://pkg.go.dev/github.com/matzehuels/barchart3d/pkg/render#ToPNG
package sink
