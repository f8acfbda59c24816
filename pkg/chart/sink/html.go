package sink

import (
	"bytes"
	"encoding/json"
	"html/template"
	"strconv"

	"github.com/matzehuels/barchart3d/pkg/chart"
)

// DefaultPlotlyJS is the plotly.js bundle loaded by [RenderHTML].
const DefaultPlotlyJS = "https://cdn.plot.ly/plotly-2.35.2.min.js"

var htmlPage = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>{{.Title}}</title>
  <script src="{{.Script}}"></script>
  <style>
    html, body { margin: 0; height: 100%; background: white; }
    #chart { width: {{.Width}}; height: {{.Height}}; }
  </style>
</head>
<body>
  <div id="chart"></div>
  <script>
    const figure = {{.Figure}};
    Plotly.newPlot("chart", figure.data, figure.layout, {responsive: true});
  </script>
</body>
</html>
`))

// HTMLOption configures HTML rendering.
type HTMLOption func(*htmlRenderer)

type htmlRenderer struct {
	script        string
	width, height int
}

// WithPlotlyScript overrides the plotly.js URL, for offline mirrors.
func WithPlotlyScript(url string) HTMLOption {
	return func(r *htmlRenderer) { r.script = url }
}

// WithHTMLSize fixes the chart size in pixels. By default the chart fills
// the page.
func WithHTMLSize(width, height int) HTMLOption {
	return func(r *htmlRenderer) { r.width, r.height = width, height }
}

// RenderHTML returns a standalone page that draws the scene with plotly.js.
func RenderHTML(s *chart.Scene, opts ...HTMLOption) ([]byte, error) {
	r := htmlRenderer{script: DefaultPlotlyJS}
	for _, opt := range opts {
		opt(&r)
	}

	fig := buildFigure(s, WithPlotlySize(r.width, r.height), withInlineTheme())
	data, err := json.Marshal(fig)
	if err != nil {
		return nil, err
	}

	title := s.Title
	if title == "" {
		title = "barchart3d"
	}
	var buf bytes.Buffer
	err = htmlPage.Execute(&buf, map[string]any{
		"Title":  title,
		"Script": r.script,
		"Width":  cssSize(r.width, "100%"),
		"Height": cssSize(r.height, "100vh"),
		"Figure": template.JS(data),
	})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func cssSize(px int, fallback string) template.CSS {
	if px <= 0 {
		return template.CSS(fallback)
	}
	return template.CSS(strconv.Itoa(px) + "px")
}
