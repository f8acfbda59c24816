package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/barchart3d/pkg/chart"
)

// Bound is a chart bound written either as a number or as "auto".
type Bound struct {
	chart.Bound
}

// UnmarshalTOML implements toml.Unmarshaler.
func (b *Bound) UnmarshalTOML(v any) error {
	switch t := v.(type) {
	case int64:
		b.Bound = chart.Fixed(float64(t))
	case float64:
		b.Bound = chart.Fixed(t)
	case string:
		parsed, err := chart.ParseBound(t)
		if err != nil {
			return err
		}
		b.Bound = parsed
	default:
		return fmt.Errorf("bound must be a number or \"auto\", got %T", v)
	}
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (b *Bound) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: bound must be a number or \"auto\"", n.Line)
	}
	parsed, err := chart.ParseBound(n.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", n.Line, err)
	}
	b.Bound = parsed
	return nil
}
