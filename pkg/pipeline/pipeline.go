// Package pipeline provides the load → build → render pipeline for barchart3d.
//
// The CLI and any other entry point drive charts through this package so
// that defaults, validation and caching behave the same everywhere.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: read a data file and extract the x, y and z series
//  2. Build: classify the series and lay out the cuboid scene
//  3. Render: generate output in various formats (HTML, JSON, SVG, PNG ...)
//
// Load and Render are cached; Build is cheap and always runs.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Input:   "scores.csv",
//	    Chart:   chart.DefaultOptions(),
//	    Formats: []string{"html"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	page := result.Artifacts["html"]
package pipeline

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/barchart3d/pkg/cache"
	"github.com/matzehuels/barchart3d/pkg/chart"
	"github.com/matzehuels/barchart3d/pkg/errors"
)

// Format constants for output formats.
const (
	FormatJSON    = "json"
	FormatHTML    = "html"
	FormatECharts = "echarts"
	FormatSVG     = "svg"
	FormatPNG     = "png"
	FormatPDF     = "pdf"
)

// DefaultFormat is rendered when no format is requested.
const DefaultFormat = FormatHTML

// Formats lists the supported output formats in documentation order.
var Formats = []string{FormatJSON, FormatHTML, FormatECharts, FormatSVG, FormatPNG, FormatPDF}

// Extension returns the file extension for a format. ECharts pages are HTML.
func Extension(format string) string {
	if format == FormatECharts {
		return ".echarts.html"
	}
	return "." + format
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the pipeline.
type Options struct {
	// Load options
	Input string `json:"input"`
	Sheet string `json:"sheet,omitempty"`
	XCol  string `json:"x_col,omitempty"`
	YCol  string `json:"y_col,omitempty"`
	ZCol  string `json:"z_col,omitempty"`

	// Build options
	Chart chart.Options `json:"-"`

	// Render options
	Formats []string `json:"formats,omitempty"`
	Width   int      `json:"width,omitempty"`
	Height  int      `json:"height,omitempty"`

	// Refresh ignores cached entries (fresh results are still stored).
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	validated bool
}

// Series holds the three input sequences of a chart.
type Series struct {
	X []chart.Value  `json:"x"`
	Y []chart.Value  `json:"y"`
	Z []chart.Height `json:"z"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	Series    *Series
	Scene     *chart.Scene
	SceneHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	Stats     Stats
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	chart.Stats
	Mode       chart.Mode
	Baseline   float64
	LoadTime   time.Duration
	BuildTime  time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LoadHit   bool // Whether the series came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !slices.Contains(Formats, format) {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: %s)", format, strings.Join(Formats, ", "))
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ParseFormats splits a comma separated format list, dropping blanks and
// duplicates.
func ParseFormats(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f != "" && !slices.Contains(out, f) {
			out = append(out, f)
		}
	}
	return out
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLoad(); err != nil {
		return err
	}
	if err := o.ValidateForBuild(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForLoad checks the input path and column selectors.
func (o *Options) ValidateForLoad() error {
	if err := errors.ValidatePath(o.Input); err != nil {
		return fmt.Errorf("input: %w", err)
	}
	for _, col := range []string{o.XCol, o.YCol, o.ZCol} {
		if col == "" {
			continue
		}
		if err := errors.ValidateColumnName(col); err != nil {
			return err
		}
	}
	o.setLogger()
	return nil
}

// ValidateForBuild applies chart defaults and validates chart options.
func (o *Options) ValidateForBuild() error {
	o.Chart.SetDefaults()
	o.setLogger()
	return o.Chart.Validate()
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	if len(o.Formats) == 0 {
		o.Formats = []string{DefaultFormat}
	}
	if o.Width < 0 || o.Height < 0 {
		return errors.New(errors.ErrCodeInvalidOption, "width and height must not be negative")
	}
	o.setLogger()
	return ValidateFormats(o.Formats)
}

func (o *Options) setLogger() {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// SeriesKeyOpts returns cache key options for series extraction.
func (o *Options) SeriesKeyOpts(format string) cache.SeriesKeyOpts {
	return cache.SeriesKeyOpts{
		Format: format,
		Sheet:  o.Sheet,
		XCol:   o.XCol,
		YCol:   o.YCol,
		ZCol:   o.ZCol,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format: format,
		Width:  o.Width,
		Height: o.Height,
	}
}
