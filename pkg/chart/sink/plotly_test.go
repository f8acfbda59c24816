package sink

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/barchart3d/pkg/chart"
)

func testScene(t *testing.T, mod func(*chart.Options)) *chart.Scene {
	t.Helper()
	opts := chart.DefaultOptions()
	opts.Title = "Scores"
	opts.XTitle, opts.YTitle, opts.ZTitle = "Features", "Neighbours", "Accuracy"
	if mod != nil {
		mod(&opts)
	}
	z := append(chart.Heights(10, 30, 20, 45), chart.None(), chart.None())
	s, err := chart.Build(chart.Nums(1, 10), chart.Nums(2, 4, 8), z, opts)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return s
}

func TestRenderPlotlyJSON(t *testing.T) {
	s := testScene(t, nil)

	data, err := RenderPlotlyJSON(s, WithPlotlySize(1200, 800))
	if err != nil {
		t.Fatalf("RenderPlotlyJSON() error: %v", err)
	}

	var fig plotlyFigure
	if err := json.Unmarshal(data, &fig); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}

	if len(fig.Data) != len(s.Bars) {
		t.Fatalf("traces = %d, want %d", len(fig.Data), len(s.Bars))
	}
	first := fig.Data[0]
	if first.Type != "mesh3d" {
		t.Errorf("Type = %q, want mesh3d", first.Type)
	}
	if diff := cmp.Diff([]int{7, 0, 0, 0, 4, 4, 6, 6, 4, 0, 3, 2}, first.I); diff != "" {
		t.Errorf("i mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{0, 0, 1, 1, 0, 0, 1, 1}, first.X); diff != "" {
		t.Errorf("x mismatch (-want +got):\n%s", diff)
	}
	if first.Opacity != 1 || !first.FlatShading || first.HoverInfo != "z" {
		t.Errorf("trace style = opacity %v flat %v hover %q", first.Opacity, first.FlatShading, first.HoverInfo)
	}

	// 2x3 grid, 4 values: two trailing cells are placeholders.
	var placeholders int
	for _, tr := range fig.Data {
		if tr.Opacity == chart.PlaceholderOpacity {
			placeholders++
		}
	}
	if placeholders != 2 {
		t.Errorf("placeholder traces = %d, want 2", placeholders)
	}

	if fig.Layout.Title.Text != "Scores" {
		t.Errorf("title = %q", fig.Layout.Title.Text)
	}
	if fig.Layout.Template != chart.Template {
		t.Errorf("template = %q, want %q", fig.Layout.Template, chart.Template)
	}
	if fig.Layout.Width != 1200 || fig.Layout.Height != 800 {
		t.Errorf("size = %dx%d, want 1200x800", fig.Layout.Width, fig.Layout.Height)
	}
	x := fig.Layout.Scene.XAxis
	if x.Title.Text != "Features" || x.TickMode != "array" {
		t.Errorf("x axis = %+v", x)
	}
	if diff := cmp.Diff([]string{"2", "4", "8"}, fig.Layout.Scene.YAxis.TickText); diff != "" {
		t.Errorf("y ticks mismatch (-want +got):\n%s", diff)
	}
	if fig.Layout.Scene.ZAxis.TickMode != "" {
		t.Errorf("z tick mode = %q, want default", fig.Layout.Scene.ZAxis.TickMode)
	}
}

func TestRenderPlotlyJSONDeterministic(t *testing.T) {
	a, err := RenderPlotlyJSON(testScene(t, nil))
	if err != nil {
		t.Fatal(err)
	}
	b, err := RenderPlotlyJSON(testScene(t, nil))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Error("rendering the same scene twice produced different output")
	}
}

func TestTraceUID(t *testing.T) {
	if TraceUID("a", 0) != TraceUID("a", 0) {
		t.Error("TraceUID is not stable")
	}
	if TraceUID("a", 0) == TraceUID("a", 1) || TraceUID("a", 0) == TraceUID("b", 0) {
		t.Error("TraceUID collides")
	}
	if len(TraceUID("a", 0)) != 36 {
		t.Errorf("TraceUID = %q, want canonical UUID form", TraceUID("a", 0))
	}
}
