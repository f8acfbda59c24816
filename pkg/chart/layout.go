package chart

import (
	"github.com/matzehuels/barchart3d/pkg/errors"
)

// AutoBaselineFactor scales the smallest height into the automatic baseline.
const AutoBaselineFactor = 0.8

// Template names the plotly theme applied when the z legend is automatic.
const Template = "plotly_white"

// Tick modes understood by renderers.
const (
	TickArray = "array" // explicit TickVals and TickText
	TickAuto  = "auto"  // renderer picks numeric ticks
)

// Axis is the configuration of one scene axis.
type Axis struct {
	Title    string    `json:"title"`
	TickMode string    `json:"tickmode"`
	TickVals []float64 `json:"tickvals,omitempty"`
	TickText []string  `json:"ticktext,omitempty"`
}

// Baseline returns the common bottom of every bar.
func Baseline(z []Height, b Bound) (float64, error) {
	if !b.IsAuto() {
		return b.Value(), nil
	}
	lo, ok := minHeight(z)
	if !ok {
		return 0, errors.New(errors.ErrCodeNoData, "cannot compute an automatic z minimum without any z value")
	}
	return AutoBaselineFactor * lo, nil
}

func minHeight(z []Height) (float64, bool) {
	var lo float64
	found := false
	for _, h := range z {
		if !h.Valid {
			continue
		}
		if !found || h.Value < lo {
			lo = h.Value
			found = true
		}
	}
	return lo, found
}

func maxHeight(z []Height) (float64, bool) {
	var hi float64
	found := false
	for _, h := range z {
		if !h.Valid {
			continue
		}
		if !found || h.Value > hi {
			hi = h.Value
			found = true
		}
	}
	return hi, found
}

// Ticks returns n tick positions, one at the start of each bar slot.
func Ticks(n int, start, step float64) []float64 {
	ticks := make([]float64, n)
	for i := range ticks {
		ticks[i] = start + float64(i)*2*step
	}
	return ticks
}

// TickLabels returns the label of each category.
func TickLabels(vals []Value) []string {
	labels := make([]string, len(vals))
	for i, v := range vals {
		labels[i] = v.String()
	}
	return labels
}

// checkLegend rejects explicit labels that do not name every category once.
func checkLegend(axis string, legend Legend, categories int) error {
	if legend.IsAuto() || len(legend.labels) == categories {
		return nil
	}
	return errors.New(errors.ErrCodeInvalidOption, "%s legend has %d labels for %d categories",
		axis, len(legend.labels), categories)
}

// categoryAxis builds an x or y axis over uniq.
func categoryAxis(title string, legend Legend, uniq []Value, start, step float64) Axis {
	text := TickLabels(uniq)
	if !legend.IsAuto() {
		text = legend.Values()
	}
	return Axis{
		Title:    title,
		TickMode: TickArray,
		TickVals: Ticks(len(uniq), start, step),
		TickText: text,
	}
}

// heightAxis builds the z axis. Explicit labels are spread evenly from the
// baseline to top.
func heightAxis(title string, legend Legend, base, top float64) Axis {
	if legend.IsAuto() {
		return Axis{Title: title, TickMode: TickAuto}
	}
	text := legend.Values()
	vals := make([]float64, len(text))
	switch len(text) {
	case 0:
	case 1:
		vals[0] = base
	default:
		inc := (top - base) / float64(len(text)-1)
		for i := range vals {
			vals[i] = base + float64(i)*inc
		}
	}
	return Axis{Title: title, TickMode: TickArray, TickVals: vals, TickText: text}
}
