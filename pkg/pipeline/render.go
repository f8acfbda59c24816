package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/barchart3d/pkg/chart"
	"github.com/matzehuels/barchart3d/pkg/chart/sink"
)

// Render generates output artifacts in the requested formats.
func Render(ctx context.Context, s *chart.Scene, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}

	svgOpts := buildSVGOptions(opts)
	artifacts := make(map[string][]byte, len(opts.Formats))

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatJSON:
			data, err = sink.RenderPlotlyJSON(s, sink.WithPlotlySize(opts.Width, opts.Height))
		case FormatHTML:
			data, err = sink.RenderHTML(s, sink.WithHTMLSize(opts.Width, opts.Height))
		case FormatECharts:
			var echartsOpts []sink.EChartsOption
			if opts.Width > 0 && opts.Height > 0 {
				echartsOpts = append(echartsOpts, sink.WithEChartsSize(opts.Width, opts.Height))
			}
			data, err = sink.RenderECharts(s, echartsOpts...)
		case FormatSVG:
			data = sink.RenderSVG(s, svgOpts...)
		case FormatPNG:
			data, err = sink.RenderPNG(ctx, s, sink.WithPNGSVGOptions(svgOpts...), sink.WithScale(2))
		case FormatPDF:
			data, err = sink.RenderPDF(ctx, s, sink.WithPDFSVGOptions(svgOpts...))
		default:
			return nil, fmt.Errorf("unsupported format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

// buildSVGOptions maps render options onto the SVG renderer, which the
// raster formats share.
func buildSVGOptions(opts Options) []sink.SVGOption {
	var svgOpts []sink.SVGOption
	if opts.Width > 0 && opts.Height > 0 {
		svgOpts = append(svgOpts, sink.WithSize(float64(opts.Width), float64(opts.Height)))
	}
	return svgOpts
}
