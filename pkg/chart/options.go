package chart

import (
	"math"
	"strconv"
	"strings"

	"github.com/matzehuels/barchart3d/pkg/errors"
)

// Mode is the interpretation chosen for the input sequences.
type Mode int

const (
	ModeDense Mode = iota
	ModeSparse
	ModePaired
)

func (m Mode) String() string {
	switch m {
	case ModeDense:
		return "dense"
	case ModeSparse:
		return "sparse"
	case ModePaired:
		return "paired"
	}
	return "unknown"
}

// MarshalText lets modes appear by name in JSON output.
func (m Mode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// ColorMode selects which category drives bar colors.
type ColorMode string

const (
	ColorX  ColorMode = "x"   // one color per x category
	ColorY  ColorMode = "y"   // one color per y category
	ColorXY ColorMode = "x+y" // one color per bar
)

// ColorModes lists the accepted color modes.
var ColorModes = []ColorMode{ColorX, ColorY, ColorXY}

// ParseColorMode parses "x", "y" or "x+y". An empty string selects [ColorX].
func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(strings.TrimSpace(s)); m {
	case "":
		return ColorX, nil
	case ColorX, ColorY, ColorXY:
		return m, nil
	}
	return "", errors.New(errors.ErrCodeInvalidColorMode, "invalid color mode %q (want x, y or x+y)", s)
}

// Bound is a lower z bound that is either computed or fixed by the caller.
// The zero value is automatic.
type Bound struct {
	value float64
	fixed bool
}

// Auto returns a bound computed as 0.8 times the smallest present height.
func Auto() Bound { return Bound{} }

// Fixed returns a bound pinned to v.
func Fixed(v float64) Bound { return Bound{value: v, fixed: true} }

// ParseBound parses "auto" (or empty) and plain numbers.
func ParseBound(s string) (Bound, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "auto") {
		return Auto(), nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Bound{}, errors.New(errors.ErrCodeInvalidOption, "invalid bound %q (want auto or a number)", s)
	}
	return Fixed(v), nil
}

// IsAuto reports whether the bound is computed.
func (b Bound) IsAuto() bool { return !b.fixed }

// Value returns the fixed value. It is zero for automatic bounds.
func (b Bound) Value() float64 { return b.value }

func (b Bound) String() string {
	if !b.fixed {
		return "auto"
	}
	return FormatNumber(b.value)
}

// Legend is the tick text of one axis: automatic, or explicit labels.
// The zero value is automatic.
type Legend struct {
	labels []string
	set    bool
}

// AutoLegend returns a legend derived from the data.
func AutoLegend() Legend { return Legend{} }

// Labels returns a legend with explicit tick text.
func Labels(labels ...string) Legend {
	return Legend{labels: append([]string(nil), labels...), set: true}
}

// ParseLegend parses "auto" (or empty) and comma separated labels.
func ParseLegend(s string) Legend {
	if t := strings.TrimSpace(s); t == "" || strings.EqualFold(t, "auto") {
		return AutoLegend()
	}
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return Labels(parts...)
}

// IsAuto reports whether the legend is derived from the data.
func (l Legend) IsAuto() bool { return !l.set }

// Values returns a copy of the explicit labels.
func (l Legend) Values() []string { return append([]string(nil), l.labels...) }

func (l Legend) String() string {
	if !l.set {
		return "auto"
	}
	return strings.Join(l.labels, ",")
}

// Default option values.
const (
	DefaultStep      = 1.0
	DefaultHoverInfo = "z"
	DefaultColor     = ColorX
)

// Options configures [Build].
type Options struct {
	XMin float64 // start of the first x slot
	YMin float64 // start of the first y slot
	ZMin Bound   // baseline of every bar
	Step float64 // bar width; slots are 2*Step apart

	Color ColorMode

	XLegend Legend
	YLegend Legend
	ZLegend Legend

	FlatShading bool
	HoverInfo   string

	XTitle string
	YTitle string
	ZTitle string
	Title  string

	// Sort orders categories numerically then lexicographically instead of
	// by first appearance.
	Sort bool
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		ZMin:        Auto(),
		Step:        DefaultStep,
		Color:       DefaultColor,
		FlatShading: true,
		HoverInfo:   DefaultHoverInfo,
	}
}

// SetDefaults fills zero-valued fields that have a non-zero default.
// FlatShading is left alone since false is a valid choice.
func (o *Options) SetDefaults() {
	if o.Step == 0 {
		o.Step = DefaultStep
	}
	if o.Color == "" {
		o.Color = DefaultColor
	}
	if o.HoverInfo == "" {
		o.HoverInfo = DefaultHoverInfo
	}
}

// Validate checks option values that do not depend on the data.
func (o Options) Validate() error {
	if o.Step <= 0 || !finite(o.Step) {
		return errors.New(errors.ErrCodeInvalidOption, "step must be positive, got %s", FormatNumber(o.Step))
	}
	if !finite(o.XMin) || !finite(o.YMin) {
		return errors.New(errors.ErrCodeInvalidOption, "axis start must be finite, got x=%s y=%s", FormatNumber(o.XMin), FormatNumber(o.YMin))
	}
	if !o.ZMin.IsAuto() && !finite(o.ZMin.Value()) {
		return errors.New(errors.ErrCodeInvalidOption, "zmin must be finite, got %s", FormatNumber(o.ZMin.Value()))
	}
	if _, err := ParseColorMode(string(o.Color)); err != nil {
		return err
	}
	return nil
}

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }
