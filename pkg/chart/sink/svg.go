package sink

import (
	"bytes"
	"cmp"
	"encoding/xml"
	"fmt"
	"math"
	"slices"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/barchart3d/pkg/chart"
)

const (
	svgMarginTop    = 64.0
	svgMargin       = 72.0
	isoCos          = 0.8660254037844386 // cos 30°
	isoSin          = 0.5                // sin 30°
	heightShare     = 0.75               // tallest bar relative to the grid extent
	ambientLight    = 0.3
	diffuseLight    = 0.7
	labelGapInSteps = 0.6
)

// lightDir points towards the light, normalized in init.
var lightDir = chart.Vec3{X: 0.45, Y: 0.3, Z: 1}

func init() {
	n := math.Sqrt(lightDir.X*lightDir.X + lightDir.Y*lightDir.Y + lightDir.Z*lightDir.Z)
	lightDir = chart.Vec3{X: lightDir.X / n, Y: lightDir.Y / n, Z: lightDir.Z / n}
}

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	width, height float64
	background    string
	placeholders  bool
}

// WithSize sets the canvas size in pixels (default 900x700).
func WithSize(width, height float64) SVGOption {
	return func(r *svgRenderer) { r.width, r.height = width, height }
}

// WithBackground sets the canvas fill. An empty string leaves it transparent.
func WithBackground(color string) SVGOption {
	return func(r *svgRenderer) { r.background = color }
}

// WithoutPlaceholders omits the near-invisible bars of missing cells.
func WithoutPlaceholders() SVGOption {
	return func(r *svgRenderer) { r.placeholders = false }
}

// RenderSVG draws the scene as a static isometric SVG. Bars are painted back
// to front; each shows its top and its two viewer-facing sides, shaded with
// ambient plus diffuse light. Heights are rescaled so that the tallest bar
// rises to three quarters of the grid extent.
func RenderSVG(s *chart.Scene, opts ...SVGOption) []byte {
	r := svgRenderer{width: 900, height: 700, background: "white", placeholders: true}
	for _, opt := range opts {
		opt(&r)
	}

	p := newProjector(s, r.width, r.height)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.0f %.0f" width="%.0f" height="%.0f" font-family="sans-serif">`+"\n",
		r.width, r.height, r.width, r.height)
	if r.background != "" {
		fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", escapeXML(r.background))
	}
	if s.Title != "" {
		fmt.Fprintf(&buf, `  <text class="title" x="%.1f" y="%.1f" text-anchor="middle" font-size="20">%s</text>`+"\n",
			r.width/2, svgMarginTop/2, escapeXML(s.Title))
	}

	renderFloor(&buf, p)
	renderZAxis(&buf, s, p)

	for _, b := range paintOrder(s.Bars) {
		if !b.Present() && !r.placeholders {
			continue
		}
		renderBar(&buf, p, b, s.FlatShading)
	}

	renderCategoryAxes(&buf, s, p)
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// paintOrder sorts bars far to near. The viewer looks from +x +y, so bars with
// a smaller x+y are further away.
func paintOrder(bars []chart.Bar) []chart.Bar {
	out := slices.Clone(bars)
	slices.SortStableFunc(out, func(a, b chart.Bar) int {
		da := a.Min().X + a.Min().Y
		db := b.Min().X + b.Min().Y
		if c := cmp.Compare(da, db); c != 0 {
			return c
		}
		return cmp.Compare(a.Max().Z, b.Max().Z)
	})
	return out
}

// projector maps scene coordinates to canvas pixels.
type projector struct {
	base, zScale float64
	scale        float64
	offX, offY   float64

	xLo, xHi, yLo, yHi float64 // grid extent in scene units
	gap                float64 // distance of labels from the grid
}

func newProjector(s *chart.Scene, width, height float64) projector {
	p := projector{base: s.Baseline, zScale: 1}

	p.xLo, p.xHi = extent(s.XAxis.TickVals, s.Step)
	p.yLo, p.yHi = extent(s.YAxis.TickVals, s.Step)
	p.gap = s.Step * labelGapInSteps

	if span := s.Top() - s.Baseline; span > 0 {
		grid := max(p.xHi-p.xLo, p.yHi-p.yLo, s.Step)
		p.zScale = grid * heightShare / span
	}

	// Fit the grid, bar tops and label rows into the canvas.
	corners := []chart.Vec3{
		{X: p.xLo, Y: p.yLo - p.gap*3, Z: s.Baseline},
		{X: p.xHi + p.gap*3, Y: p.yLo, Z: s.Baseline},
		{X: p.xLo - p.gap*3, Y: p.yHi, Z: s.Baseline},
		{X: p.xHi, Y: p.yHi + p.gap*3, Z: s.Baseline},
		{X: p.xLo, Y: p.yHi, Z: s.Top()},
		{X: p.xHi, Y: p.yLo, Z: s.Top()},
		{X: p.xLo, Y: p.yLo, Z: s.Top()},
	}
	uLo, vLo := math.Inf(1), math.Inf(1)
	uHi, vHi := math.Inf(-1), math.Inf(-1)
	for _, c := range corners {
		u, v := p.raw(c)
		uLo, uHi = min(uLo, u), max(uHi, u)
		vLo, vHi = min(vLo, v), max(vHi, v)
	}
	availW := max(width-2*svgMargin, 1)
	availH := max(height-svgMarginTop-svgMargin, 1)
	p.scale = min(availW/max(uHi-uLo, 1e-9), availH/max(vHi-vLo, 1e-9))
	p.offX = svgMargin + (availW-(uHi-uLo)*p.scale)/2 - uLo*p.scale
	p.offY = svgMarginTop + (availH-(vHi-vLo)*p.scale)/2 - vLo*p.scale
	return p
}

// extent returns the span covered by bar slots starting at ticks.
func extent(ticks []float64, step float64) (lo, hi float64) {
	if len(ticks) == 0 {
		return 0, step
	}
	return ticks[0], ticks[len(ticks)-1] + step
}

func (p projector) raw(v chart.Vec3) (u, w float64) {
	z := (v.Z - p.base) * p.zScale
	return (v.X - v.Y) * isoCos, (v.X+v.Y)*isoSin - z
}

func (p projector) point(v chart.Vec3) (float64, float64) {
	u, w := p.raw(v)
	return u*p.scale + p.offX, w*p.scale + p.offY
}

func (p projector) polygon(vs ...chart.Vec3) string {
	var buf bytes.Buffer
	for i, v := range vs {
		x, y := p.point(v)
		if i > 0 {
			buf.WriteByte(' ')
		}
		fmt.Fprintf(&buf, "%.2f,%.2f", x, y)
	}
	return buf.String()
}

func renderFloor(buf *bytes.Buffer, p projector) {
	z := p.base
	fmt.Fprintf(buf, `  <polygon class="floor" points="%s" fill="#F4F6FA" stroke="#DFE8F3"/>`+"\n",
		p.polygon(
			chart.Vec3{X: p.xLo, Y: p.yLo, Z: z},
			chart.Vec3{X: p.xHi, Y: p.yLo, Z: z},
			chart.Vec3{X: p.xHi, Y: p.yHi, Z: z},
			chart.Vec3{X: p.xLo, Y: p.yHi, Z: z},
		))
}

// face is one visible side of a cuboid.
type face struct {
	vertices [4]int
	normal   chart.Vec3
}

// visibleFaces index the vertex order of chart.NewCuboid.
var visibleFaces = [3]face{
	{vertices: [4]int{2, 3, 7, 6}, normal: chart.Vec3{X: 1}}, // x = max
	{vertices: [4]int{1, 2, 6, 5}, normal: chart.Vec3{Y: 1}}, // y = max
	{vertices: [4]int{4, 5, 6, 7}, normal: chart.Vec3{Z: 1}}, // top
}

func renderBar(buf *bytes.Buffer, p projector, b chart.Bar, flat bool) {
	base, err := colorful.Hex(b.Color)
	if err != nil {
		base = colorful.Color{R: 0.5, G: 0.5, B: 0.5}
	}
	cls := "bar"
	if !b.Present() {
		cls = "bar placeholder"
	}
	fmt.Fprintf(buf, `  <g class="%s" opacity="%s">`+"\n", cls, strconv.FormatFloat(b.Opacity, 'f', -1, 64))
	fmt.Fprintf(buf, "    <title>%s</title>\n", escapeXML(b.Hover))
	for _, f := range visibleFaces {
		if f.normal.Z == 0 && b.Max().Z == b.Min().Z {
			continue
		}
		var vs [4]chart.Vec3
		for i, idx := range f.vertices {
			vs[i] = b.Vertices[idx]
		}
		fill := shade(base, f.normal, flat)
		edge := fill.BlendLab(colorful.Color{}, 0.25).Clamped()
		fmt.Fprintf(buf, `    <polygon points="%s" fill="%s" stroke="%s" stroke-width="0.5"/>`+"\n",
			p.polygon(vs[:]...), fill.Hex(), edge.Hex())
	}
	buf.WriteString("  </g>\n")
}

// shade applies ambient plus diffuse lighting. Smooth shading halves the
// contrast between faces.
func shade(c colorful.Color, normal chart.Vec3, flat bool) colorful.Color {
	diffuse := max(0, normal.X*lightDir.X+normal.Y*lightDir.Y+normal.Z*lightDir.Z)
	k := ambientLight + diffuseLight*diffuse
	if !flat {
		k = (1 + k) / 2
	}
	return colorful.Color{R: c.R * k, G: c.G * k, B: c.B * k}.Clamped()
}

func renderCategoryAxes(buf *bytes.Buffer, s *chart.Scene, p projector) {
	half := s.Step / 2
	// x labels run along the near y edge, y labels along the near x edge.
	for i, v := range s.XAxis.TickVals {
		x, y := p.point(chart.Vec3{X: v + half, Y: p.yHi + p.gap, Z: p.base})
		fmt.Fprintf(buf, `  <text class="tick x" x="%.1f" y="%.1f" font-size="12" text-anchor="end">%s</text>`+"\n",
			x, y+4, escapeXML(tickText(s.XAxis, i)))
	}
	for i, v := range s.YAxis.TickVals {
		x, y := p.point(chart.Vec3{X: p.xHi + p.gap, Y: v + half, Z: p.base})
		fmt.Fprintf(buf, `  <text class="tick y" x="%.1f" y="%.1f" font-size="12" text-anchor="start">%s</text>`+"\n",
			x, y+4, escapeXML(tickText(s.YAxis, i)))
	}
	if s.XAxis.Title != "" {
		x, y := p.point(chart.Vec3{X: (p.xLo + p.xHi) / 2, Y: p.yHi + p.gap*3, Z: p.base})
		fmt.Fprintf(buf, `  <text class="axis-title x" x="%.1f" y="%.1f" font-size="14" text-anchor="end">%s</text>`+"\n",
			x, y+4, escapeXML(s.XAxis.Title))
	}
	if s.YAxis.Title != "" {
		x, y := p.point(chart.Vec3{X: p.xHi + p.gap*3, Y: (p.yLo + p.yHi) / 2, Z: p.base})
		fmt.Fprintf(buf, `  <text class="axis-title y" x="%.1f" y="%.1f" font-size="14" text-anchor="start">%s</text>`+"\n",
			x, y+4, escapeXML(s.YAxis.Title))
	}
}

// renderZAxis draws a vertical axis at the far left corner of the grid.
func renderZAxis(buf *bytes.Buffer, s *chart.Scene, p projector) {
	vals, text := s.ZAxis.TickVals, s.ZAxis.TickText
	if s.ZAxis.TickMode != chart.TickArray {
		vals, text = NiceTicks(s.Baseline, s.Top(), 5)
	}
	corner := func(z float64) chart.Vec3 { return chart.Vec3{X: p.xLo, Y: p.yHi, Z: z} }

	x0, y0 := p.point(corner(s.Baseline))
	x1, y1 := p.point(corner(s.Top()))
	fmt.Fprintf(buf, `  <line class="axis z" x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#8A8F98"/>`+"\n", x0, y0, x1, y1)
	for i, v := range vals {
		x, y := p.point(corner(v))
		label := ""
		if i < len(text) {
			label = text[i]
		}
		fmt.Fprintf(buf, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#8A8F98"/>`+"\n", x-4, y, x, y)
		fmt.Fprintf(buf, `  <text class="tick z" x="%.1f" y="%.1f" font-size="12" text-anchor="end">%s</text>`+"\n",
			x-6, y+4, escapeXML(label))
	}
	if s.ZAxis.Title != "" {
		fmt.Fprintf(buf, `  <text class="axis-title z" x="%.1f" y="%.1f" font-size="14" text-anchor="middle">%s</text>`+"\n",
			x1, y1-12, escapeXML(s.ZAxis.Title))
	}
}

func tickText(a chart.Axis, i int) string {
	if i < len(a.TickText) {
		return a.TickText[i]
	}
	return ""
}

// NiceTicks returns about n round tick values covering [lo, hi] and their
// labels.
func NiceTicks(lo, hi float64, n int) ([]float64, []string) {
	if hi <= lo || n < 2 {
		return []float64{lo}, []string{chart.FormatNumber(lo)}
	}
	rough := (hi - lo) / float64(n-1)
	mag := math.Pow(10, math.Floor(math.Log10(rough)))
	step := 10 * mag
	for _, m := range []float64{1, 2, 5} {
		if rough <= m*mag {
			step = m * mag
			break
		}
	}
	decimals := max(0, int(-math.Floor(math.Log10(step))))

	var vals []float64
	var text []string
	for v := math.Ceil(lo/step) * step; v <= hi+step*1e-9; v += step {
		vals = append(vals, v)
		text = append(text, strconv.FormatFloat(v, 'f', decimals, 64))
	}
	return vals, text
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
