package config

import (
	"github.com/matzehuels/barchart3d/pkg/chart"
	"github.com/matzehuels/barchart3d/pkg/errors"
	"github.com/matzehuels/barchart3d/pkg/pipeline"
)

// Validate checks values that can be checked without data.
func (f *File) Validate() error {
	if f.Chart.Color != "" {
		if _, err := chart.ParseColorMode(f.Chart.Color); err != nil {
			return err
		}
	}
	if f.Chart.Step != nil && *f.Chart.Step <= 0 {
		return errors.New(errors.ErrCodeInvalidOption, "chart.step must be positive")
	}
	if err := pipeline.ValidateFormats(f.Render.Formats); err != nil {
		return err
	}
	if f.Render.Width < 0 || f.Render.Height < 0 {
		return errors.New(errors.ErrCodeInvalidOption, "render.width and render.height must not be negative")
	}
	return f.Cache.Validate()
}

// Apply copies every value set in the file onto opts. Callers apply
// command line flags afterwards so that flags win.
func (f *File) Apply(opts *pipeline.Options) {
	setString(&opts.Sheet, f.Sheet)
	setString(&opts.XCol, f.Columns.X)
	setString(&opts.YCol, f.Columns.Y)
	setString(&opts.ZCol, f.Columns.Z)

	c := &opts.Chart
	fc := f.Chart
	if fc.XMin != nil {
		c.XMin = *fc.XMin
	}
	if fc.YMin != nil {
		c.YMin = *fc.YMin
	}
	if fc.ZMin != nil {
		c.ZMin = fc.ZMin.Bound
	}
	if fc.Step != nil {
		c.Step = *fc.Step
	}
	if fc.Color != "" {
		c.Color = chart.ColorMode(fc.Color)
	}
	if fc.XLegend != nil {
		c.XLegend = chart.Labels(fc.XLegend...)
	}
	if fc.YLegend != nil {
		c.YLegend = chart.Labels(fc.YLegend...)
	}
	if fc.ZLegend != nil {
		c.ZLegend = chart.Labels(fc.ZLegend...)
	}
	if fc.FlatShading != nil {
		c.FlatShading = *fc.FlatShading
	}
	setString(&c.HoverInfo, fc.HoverInfo)
	setString(&c.XTitle, fc.XTitle)
	setString(&c.YTitle, fc.YTitle)
	setString(&c.ZTitle, fc.ZTitle)
	setString(&c.Title, fc.Title)
	if fc.Sort != nil {
		c.Sort = *fc.Sort
	}

	if len(f.Render.Formats) > 0 {
		opts.Formats = append([]string(nil), f.Render.Formats...)
	}
	if f.Render.Width > 0 {
		opts.Width = f.Render.Width
	}
	if f.Render.Height > 0 {
		opts.Height = f.Render.Height
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
