package sink

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/matzehuels/barchart3d/pkg/chart"
)

// traceNamespace seeds the deterministic trace uids.
var traceNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/matzehuels/barchart3d/trace"))

// PlotlyOption configures plotly figure rendering.
type PlotlyOption func(*plotlyRenderer)

type plotlyRenderer struct {
	width, height int
	inlineTheme   bool
}

// WithPlotlySize sets the figure size in pixels. Zero keeps plotly's
// responsive default.
func WithPlotlySize(width, height int) PlotlyOption {
	return func(r *plotlyRenderer) { r.width, r.height = width, height }
}

// withInlineTheme replaces the named template with explicit colors, for
// plotly.js which does not resolve template names.
func withInlineTheme() PlotlyOption {
	return func(r *plotlyRenderer) { r.inlineTheme = true }
}

type plotlyFigure struct {
	Data   []plotlyMesh `json:"data"`
	Layout plotlyLayout `json:"layout"`
}

type plotlyMesh struct {
	Type        string    `json:"type"`
	UID         string    `json:"uid"`
	X           []float64 `json:"x"`
	Y           []float64 `json:"y"`
	Z           []float64 `json:"z"`
	I           []int     `json:"i"`
	J           []int     `json:"j"`
	K           []int     `json:"k"`
	Color       string    `json:"color"`
	Opacity     float64   `json:"opacity"`
	FlatShading bool      `json:"flatshading"`
	HoverInfo   string    `json:"hoverinfo"`
	HoverText   string    `json:"hovertext"`
}

type plotlyText struct {
	Text string `json:"text"`
}

type plotlyAxis struct {
	Title           plotlyText `json:"title"`
	TickMode        string     `json:"tickmode,omitempty"`
	TickVals        []float64  `json:"tickvals,omitempty"`
	TickText        []string   `json:"ticktext,omitempty"`
	BackgroundColor string     `json:"backgroundcolor,omitempty"`
	GridColor       string     `json:"gridcolor,omitempty"`
	ShowBackground  bool       `json:"showbackground,omitempty"`
}

type plotlyScene struct {
	XAxis plotlyAxis `json:"xaxis"`
	YAxis plotlyAxis `json:"yaxis"`
	ZAxis plotlyAxis `json:"zaxis"`
}

type plotlyLayout struct {
	Title        plotlyText  `json:"title"`
	Template     string      `json:"template,omitempty"`
	PaperBGColor string      `json:"paper_bgcolor,omitempty"`
	Width        int         `json:"width,omitempty"`
	Height       int         `json:"height,omitempty"`
	ShowLegend   bool        `json:"showlegend"`
	Scene        plotlyScene `json:"scene"`
}

// RenderPlotlyJSON exports the scene as a plotly figure: one mesh3d trace per
// bar plus the scene layout. The document loads with plotly.py
// (plotly.io.from_json) and, through [RenderHTML], with plotly.js.
func RenderPlotlyJSON(s *chart.Scene, opts ...PlotlyOption) ([]byte, error) {
	return json.MarshalIndent(buildFigure(s, opts...), "", "  ")
}

func buildFigure(s *chart.Scene, opts ...PlotlyOption) plotlyFigure {
	r := plotlyRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	i, j, k := chart.FaceIndices()
	fig := plotlyFigure{Data: make([]plotlyMesh, len(s.Bars))}
	for n, b := range s.Bars {
		xs, ys, zs := b.Coords()
		fig.Data[n] = plotlyMesh{
			Type:        "mesh3d",
			UID:         TraceUID(s.Title, n),
			X:           xs,
			Y:           ys,
			Z:           zs,
			I:           i,
			J:           j,
			K:           k,
			Color:       b.Color,
			Opacity:     b.Opacity,
			FlatShading: s.FlatShading,
			HoverInfo:   s.HoverInfo,
			HoverText:   b.Hover,
		}
	}

	fig.Layout = plotlyLayout{
		Title:    plotlyText{Text: s.Title},
		Template: s.Template,
		Width:    r.width,
		Height:   r.height,
		Scene: plotlyScene{
			XAxis: toPlotlyAxis(s.XAxis),
			YAxis: toPlotlyAxis(s.YAxis),
			ZAxis: toPlotlyAxis(s.ZAxis),
		},
	}
	if r.inlineTheme && s.Template == chart.Template {
		fig.Layout.Template = ""
		fig.Layout.PaperBGColor = "white"
		for _, a := range []*plotlyAxis{&fig.Layout.Scene.XAxis, &fig.Layout.Scene.YAxis, &fig.Layout.Scene.ZAxis} {
			a.BackgroundColor = "white"
			a.GridColor = "#DFE8F3"
			a.ShowBackground = true
		}
	}
	return fig
}

func toPlotlyAxis(a chart.Axis) plotlyAxis {
	pa := plotlyAxis{Title: plotlyText{Text: a.Title}, TickVals: a.TickVals, TickText: a.TickText}
	if a.TickMode == chart.TickArray {
		pa.TickMode = chart.TickArray
	}
	return pa
}

// TraceUID returns the stable uid of bar n in a scene with the given title.
func TraceUID(title string, n int) string {
	return uuid.NewSHA1(traceNamespace, []byte(fmt.Sprintf("%s/%d", title, n))).String()
}
