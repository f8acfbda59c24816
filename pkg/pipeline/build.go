package pipeline

import (
	"github.com/matzehuels/barchart3d/pkg/chart"
)

// Build lays out the scene for a series.
func Build(s *Series, opts Options) (*chart.Scene, error) {
	if err := opts.ValidateForBuild(); err != nil {
		return nil, err
	}
	return chart.Build(s.X, s.Y, s.Z, opts.Chart)
}
