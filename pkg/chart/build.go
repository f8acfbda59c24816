package chart

import "fmt"

// Bar is one cuboid of a scene together with the data it represents.
type Bar struct {
	Cuboid

	XIndex int    // slot of the x category
	YIndex int    // slot of the y category
	XLabel string // tick label of the x category
	YLabel string // tick label of the y category
	Height Height // data height; invalid for placeholders
}

// Present reports whether the bar carries data.
func (b Bar) Present() bool { return b.Height.Valid }

// Stats summarizes a built scene.
type Stats struct {
	Bars         int `json:"bars"`
	Visible      int `json:"visible"`
	Placeholders int `json:"placeholders"`
	UniqueX      int `json:"unique_x"`
	UniqueY      int `json:"unique_y"`
	Dropped      int `json:"dropped"` // z values beyond the sparse grid
}

// Scene is the complete description of a bar chart, ready for rendering.
type Scene struct {
	Mode        Mode
	Bars        []Bar
	XAxis       Axis
	YAxis       Axis
	ZAxis       Axis
	Title       string
	Template    string // empty means the renderer default
	Baseline    float64
	Step        float64
	FlatShading bool
	HoverInfo   string
	Stats       Stats
}

// Visible returns the bars that carry data, in scene order.
func (s *Scene) Visible() []Bar {
	out := make([]Bar, 0, s.Stats.Visible)
	for _, b := range s.Bars {
		if b.Present() {
			out = append(out, b)
		}
	}
	return out
}

// Placeholders returns the bars of missing cells, in scene order.
func (s *Scene) Placeholders() []Bar {
	out := make([]Bar, 0, s.Stats.Placeholders)
	for _, b := range s.Bars {
		if !b.Present() {
			out = append(out, b)
		}
	}
	return out
}

// Top returns the height of the tallest bar, or the baseline when no bar
// carries data.
func (s *Scene) Top() float64 {
	top := s.Baseline
	for _, b := range s.Bars {
		if b.Present() && b.Height.Value > top {
			top = b.Height.Value
		}
	}
	return top
}

// cell is a bar before geometry is attached.
type cell struct {
	xi, yi int
	h      Height
}

// Build classifies the input, lays out one bar per cell or point and styles
// the scene. It either returns a complete scene or an error; nothing is built
// when the input is rejected.
func Build(x, y []Value, z []Height, opts Options) (*Scene, error) {
	opts.SetDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	mode, err := Classify(x, y, z)
	if err != nil {
		return nil, err
	}

	ux, uy := Uniques(x, opts.Sort), Uniques(y, opts.Sort)
	if err := checkLegend("x", opts.XLegend, len(ux)); err != nil {
		return nil, err
	}
	if err := checkLegend("y", opts.YLegend, len(uy)); err != nil {
		return nil, err
	}
	xIdx, yIdx := indexOf(ux), indexOf(uy)

	var (
		cells   []cell
		dropped int
	)
	switch mode {
	case ModeDense:
		cells = denseCells(x, y, z, ux, uy)
	case ModeSparse:
		cells, dropped = sparseCells(len(ux), len(uy), z)
	case ModePaired:
		cells = make([]cell, len(z))
		for i := range z {
			cells[i] = cell{xi: xIdx[x[i].Key()], yi: yIdx[y[i].Key()], h: z[i]}
		}
	}

	heights := make([]Height, len(cells))
	for i, c := range cells {
		heights[i] = c.h
	}
	base, err := Baseline(heights, opts.ZMin)
	if err != nil {
		return nil, err
	}

	xLabels, yLabels := TickLabels(ux), TickLabels(uy)
	s := &Scene{
		Mode:        mode,
		Bars:        make([]Bar, len(cells)),
		Title:       opts.Title,
		Baseline:    base,
		Step:        opts.Step,
		FlatShading: opts.FlatShading,
		HoverInfo:   opts.HoverInfo,
	}
	for n, c := range cells {
		x0 := opts.XMin + float64(c.xi)*2*opts.Step
		y0 := opts.YMin + float64(c.yi)*2*opts.Step
		top := base
		if c.h.Valid {
			top = c.h.Value
		}
		cub := NewCuboid(x0, x0+opts.Step, y0, y0+opts.Step, base, top)
		cub.Color = ColorFor(opts.Color, c.xi, c.yi, len(uy), n, mode != ModePaired)
		cub.Hover = fmt.Sprintf("x: %s, y: %s, z: %s", xLabels[c.xi], yLabels[c.yi], c.h)
		if c.h.Valid {
			s.Stats.Visible++
		} else {
			cub.Opacity = PlaceholderOpacity
			s.Stats.Placeholders++
		}
		s.Bars[n] = Bar{
			Cuboid: cub,
			XIndex: c.xi,
			YIndex: c.yi,
			XLabel: xLabels[c.xi],
			YLabel: yLabels[c.yi],
			Height: c.h,
		}
	}

	s.XAxis = categoryAxis(opts.XTitle, opts.XLegend, ux, opts.XMin, opts.Step)
	s.YAxis = categoryAxis(opts.YTitle, opts.YLegend, uy, opts.YMin, opts.Step)
	s.ZAxis = heightAxis(opts.ZTitle, opts.ZLegend, base, s.Top())
	if opts.ZLegend.IsAuto() {
		s.Template = Template
	}
	s.Stats.Bars = len(s.Bars)
	s.Stats.UniqueX = len(ux)
	s.Stats.UniqueY = len(uy)
	s.Stats.Dropped = dropped
	return s, nil
}

// denseCells looks up each grid cell by its (x, y) pair, so the caller's row
// order does not matter. Cells are emitted x outer, y inner.
func denseCells(x, y []Value, z []Height, ux, uy []Value) []cell {
	byPair := make(map[[2]string]Height, len(z))
	for i := range z {
		byPair[[2]string{x[i].Key(), y[i].Key()}] = z[i]
	}
	cells := make([]cell, 0, len(ux)*len(uy))
	for xi, xv := range ux {
		for yi, yv := range uy {
			cells = append(cells, cell{xi: xi, yi: yi, h: byPair[[2]string{xv.Key(), yv.Key()}]})
		}
	}
	return cells
}

// sparseCells fills the grid with [SparseGrid] and emits it x outer, y inner.
func sparseCells(nx, ny int, z []Height) ([]cell, int) {
	grid, dropped := SparseGrid(nx, ny, z)
	cells := make([]cell, 0, nx*ny)
	for xi := 0; xi < nx; xi++ {
		for yi := 0; yi < ny; yi++ {
			cells = append(cells, cell{xi: xi, yi: yi, h: grid[yi*nx+xi]})
		}
	}
	return cells, dropped
}
