package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/barchart3d/pkg/chart"
	"github.com/matzehuels/barchart3d/pkg/config"
	"github.com/matzehuels/barchart3d/pkg/pipeline"
)

// chartFlags holds the flags shared by render and inspect: column selection
// and chart options.
type chartFlags struct {
	sheet string
	xCol  string
	yCol  string
	zCol  string

	xMin    float64
	yMin    float64
	zMin    string // "auto" or a number
	step    float64
	color   string
	xLegend string // "auto" or comma separated labels
	yLegend string
	zLegend string

	flatShading bool
	hoverInfo   string
	xTitle      string
	yTitle      string
	zTitle      string
	title       string
	sort        bool

	noCache bool
	refresh bool
}

// register adds the shared flags to cmd. Defaults shown in help match
// chart.DefaultOptions; only flags the user sets override the option file.
func (fl *chartFlags) register(cmd *cobra.Command) {
	def := chart.DefaultOptions()
	f := cmd.Flags()

	f.StringVar(&fl.sheet, "sheet", "", "worksheet to read from an .xlsx file (default: first sheet)")
	f.StringVarP(&fl.xCol, "x-col", "x", "", "x column name (default: first column)")
	f.StringVarP(&fl.yCol, "y-col", "y", "", "y column name (default: second column)")
	f.StringVarP(&fl.zCol, "z-col", "z", "", "z column name (default: third column)")

	f.Float64Var(&fl.xMin, "x-min", def.XMin, "start of the first x slot")
	f.Float64Var(&fl.yMin, "y-min", def.YMin, "start of the first y slot")
	f.StringVar(&fl.zMin, "z-min", def.ZMin.String(), "bar baseline: auto (0.8 x smallest height) or a number")
	f.Float64Var(&fl.step, "step", def.Step, "bar width; categories are 2*step apart")
	f.StringVar(&fl.color, "color", string(def.Color), "color bars by x, y or x+y")
	f.StringVar(&fl.xLegend, "x-legend", "auto", "x tick labels: auto or comma separated")
	f.StringVar(&fl.yLegend, "y-legend", "auto", "y tick labels: auto or comma separated")
	f.StringVar(&fl.zLegend, "z-legend", "auto", "z tick labels: auto or comma separated")

	f.BoolVar(&fl.flatShading, "flat-shading", def.FlatShading, "shade cuboid faces flat")
	f.StringVar(&fl.hoverInfo, "hover-info", def.HoverInfo, "plotly hover info of each bar")
	f.StringVar(&fl.xTitle, "x-title", "", "x axis title")
	f.StringVar(&fl.yTitle, "y-title", "", "y axis title")
	f.StringVar(&fl.zTitle, "z-title", "", "z axis title")
	f.StringVar(&fl.title, "title", "", "chart title")
	f.BoolVar(&fl.sort, "sort", false, "sort categories instead of keeping first-appearance order")

	f.BoolVar(&fl.noCache, "no-cache", false, "disable caching")
	f.BoolVar(&fl.refresh, "refresh", false, "ignore cached results (fresh results are still stored)")
}

// options assembles pipeline options from defaults, the option file and the
// flags the user set, in that order.
func (fl *chartFlags) options(cmd *cobra.Command, input string, file *config.File) (pipeline.Options, error) {
	opts := pipeline.Options{
		Input: input,
		Chart: chart.DefaultOptions(),
	}
	file.Apply(&opts)

	changed := cmd.Flags().Changed
	c := &opts.Chart

	if changed("sheet") {
		opts.Sheet = fl.sheet
	}
	if changed("x-col") {
		opts.XCol = fl.xCol
	}
	if changed("y-col") {
		opts.YCol = fl.yCol
	}
	if changed("z-col") {
		opts.ZCol = fl.zCol
	}
	if changed("x-min") {
		c.XMin = fl.xMin
	}
	if changed("y-min") {
		c.YMin = fl.yMin
	}
	if changed("z-min") {
		b, err := chart.ParseBound(fl.zMin)
		if err != nil {
			return opts, err
		}
		c.ZMin = b
	}
	if changed("step") {
		c.Step = fl.step
	}
	if changed("color") {
		m, err := chart.ParseColorMode(fl.color)
		if err != nil {
			return opts, err
		}
		c.Color = m
	}
	if changed("x-legend") {
		c.XLegend = chart.ParseLegend(fl.xLegend)
	}
	if changed("y-legend") {
		c.YLegend = chart.ParseLegend(fl.yLegend)
	}
	if changed("z-legend") {
		c.ZLegend = chart.ParseLegend(fl.zLegend)
	}
	if changed("flat-shading") {
		c.FlatShading = fl.flatShading
	}
	if changed("hover-info") {
		c.HoverInfo = fl.hoverInfo
	}
	if changed("x-title") {
		c.XTitle = fl.xTitle
	}
	if changed("y-title") {
		c.YTitle = fl.yTitle
	}
	if changed("z-title") {
		c.ZTitle = fl.zTitle
	}
	if changed("title") {
		c.Title = fl.title
	}
	if changed("sort") {
		c.Sort = fl.sort
	}
	opts.Refresh = fl.refresh
	return opts, nil
}
