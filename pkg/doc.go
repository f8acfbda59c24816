// Package pkg provides the core libraries for barchart3d, a 3D bar chart
// builder that draws every bar as a cuboid mesh.
//
// # Overview
//
// barchart3d reads three columns (x, y and z) from a tabular file, decides how
// they relate and lays out one cuboid per grid cell. The pkg directory is
// organized into three areas:
//
//  1. Domain logic: [chart] (classification, layout, geometry) and
//     [chart/sink] (plotly, ECharts, SVG, PNG and PDF output)
//  2. Input: [table] (CSV, TSV, XLSX and JSON readers)
//  3. Infrastructure: [pipeline], [cache], [config], [observability],
//     [errors] and [render]
//
// # Architecture
//
// The typical data flow:
//
//	CSV / TSV / XLSX / JSON file
//	         ↓
//	    [table] package (read columns, parse values)
//	         ↓
//	    [chart] package (classify dense / sparse / paired, build scene)
//	         ↓
//	    [chart/sink] package (plotly figure, ECharts page, SVG)
//	         ↓
//	    [render] package (SVG to PNG / PDF)
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/barchart3d/pkg/chart"
//	    "github.com/matzehuels/barchart3d/pkg/chart/sink"
//	)
//
//	x := chart.Nums(1, 10)
//	y := chart.Nums(2, 4)
//	z := chart.Heights(10, 30, 20, 45)
//
//	scene, _ := chart.Build(x, y, z, chart.DefaultOptions())
//	page, _ := sink.RenderHTML(scene)
//
// # Main Packages
//
// [chart] - Values, heights, the three interpretation modes, baseline and
// axis computation, and cuboid geometry (8 vertices, 12 triangles).
//
// [chart/sink] - Output formats. Plotly mesh3d figures as JSON or a
// standalone HTML page, ECharts bar3D pages, and an isometric SVG that the
// raster formats start from.
//
// [table] - Readers for delimited text, Excel workbooks and JSON documents
// plus extraction of the x, y and z series by column name or position.
//
// [pipeline] - Load, build and render with caching, shared by every entry
// point so defaults and validation stay consistent.
//
// [cache] - Key/value cache with file, Redis and no-op backends.
//
// [config] - TOML and YAML option files.
//
// # Testing
//
//	go test ./pkg/...                # All tests
//	go test ./pkg/chart/...          # Specific package
//	go test -run Example ./pkg/...   # Examples only
//
// Redis tests run when BARCHART3D_REDIS_ADDR points at a server.
//
// [chart]: https://pkg.go.dev/github.com/matzehuels/barchart3d/pkg/chart
// [chart/sink]: https://pkg.go.dev/github.com/matzehuels/barchart3d/pkg/chart/sink
// [table]: https://pkg.go.dev/github.com/matzehuels/barchart3d/pkg/table
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/barchart3d/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/barchart3d/pkg/cache
// [config]: https://pkg.go.dev/github.com/matzehuels/barchart3d/pkg/config
// [observability]: https://pkg.go.dev/github.com/matzehuels/barchart3d/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/barchart3d/pkg/errors
// [render]: https://pkg.go.dev/github.com/matzehuels/barchart3d/pkg/render
package pkg
