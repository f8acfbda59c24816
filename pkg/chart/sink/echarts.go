package sink

import (
	"bytes"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/barchart3d/pkg/chart"
)

// EChartsOption configures ECharts page rendering.
type EChartsOption func(*echartsRenderer)

type echartsRenderer struct {
	width, height int
}

// WithEChartsSize sets the canvas size in pixels (default 900x600).
func WithEChartsSize(width, height int) EChartsOption {
	return func(r *echartsRenderer) { r.width, r.height = width, height }
}

// RenderECharts returns a standalone HTML page drawing the scene as an
// ECharts bar3D series. ECharts positions bars on category slots itself, so
// the cuboid geometry is reduced to (x slot, y slot, height) triples.
// Placeholders are drawn with their opacity folded into the color.
func RenderECharts(s *chart.Scene, options ...EChartsOption) ([]byte, error) {
	r := echartsRenderer{width: 900, height: 600}
	for _, opt := range options {
		opt(&r)
	}

	bar := BuildBar3D(s, r.width, r.height)
	var buf bytes.Buffer
	if err := bar.Render(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// BuildBar3D converts the scene into a configured go-echarts chart.
func BuildBar3D(s *chart.Scene, width, height int) *charts.Bar3D {
	title := s.Title
	if title == "" {
		title = "barchart3d"
	}

	bar := charts.NewBar3D()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Width:     strconv.Itoa(width) + "px",
			Height:    strconv.Itoa(height) + "px",
		}),
		charts.WithTitleOpts(opts.Title{Title: s.Title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxis3DOpts(opts.XAxis3D{Name: s.XAxis.Title, Type: "category", Data: s.XAxis.TickText}),
		charts.WithYAxis3DOpts(opts.YAxis3D{Name: s.YAxis.Title, Type: "category", Data: s.YAxis.TickText}),
		charts.WithZAxis3DOpts(opts.ZAxis3D{Name: s.ZAxis.Title}),
	)

	data := make([]opts.Chart3DData, len(s.Bars))
	for i, b := range s.Bars {
		top := s.Baseline
		if b.Present() {
			top = b.Height.Value
		}
		data[i] = opts.Chart3DData{
			Name:      b.Hover,
			Value:     []interface{}{b.XIndex, b.YIndex, top},
			ItemStyle: &opts.ItemStyle{Color: RGBA(b.Color, b.Opacity)},
		}
	}

	shading := "lambert"
	if !s.FlatShading {
		shading = "realistic"
	}
	bar.AddSeries(title, data, charts.WithBar3DChartOpts(opts.Bar3DChart{Shading: shading}))
	return bar
}

// RGBA folds an opacity into a hex color as a CSS rgba() string. Opaque
// colors are returned unchanged.
func RGBA(hex string, opacity float64) string {
	if opacity >= 1 {
		return hex
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	r, g, b := c.RGB255()
	return "rgba(" + strconv.Itoa(int(r)) + "," + strconv.Itoa(int(g)) + "," + strconv.Itoa(int(b)) + "," +
		strconv.FormatFloat(opacity, 'f', -1, 64) + ")"
}
