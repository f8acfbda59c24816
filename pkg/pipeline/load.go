package pipeline

import (
	"bytes"
	"os"

	"github.com/matzehuels/barchart3d/pkg/errors"
	"github.com/matzehuels/barchart3d/pkg/table"
)

// readInput returns the raw bytes of the input file and its table format.
func readInput(opts Options) ([]byte, string, error) {
	format, err := table.FormatOf(opts.Input)
	if err != nil {
		return nil, "", err
	}
	data, err := os.ReadFile(opts.Input)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", errors.Wrap(errors.ErrCodeFileNotFound, err, "read %s", opts.Input)
		}
		return nil, "", errors.Wrap(errors.ErrCodeInvalidInput, err, "read %s", opts.Input)
	}
	return data, format, nil
}

// parseSeries extracts the series from raw file content.
func parseSeries(data []byte, format string, opts Options) (*Series, error) {
	t, err := table.Read(bytes.NewReader(data), format, opts.Sheet)
	if err != nil {
		return nil, err
	}
	x, y, z, err := table.Series(t, opts.XCol, opts.YCol, opts.ZCol)
	if err != nil {
		return nil, err
	}
	return &Series{X: x, Y: y, Z: z}, nil
}

// Load reads the input file and extracts its series without caching.
func Load(opts Options) (*Series, error) {
	if err := opts.ValidateForLoad(); err != nil {
		return nil, err
	}
	data, format, err := readInput(opts)
	if err != nil {
		return nil, err
	}
	return parseSeries(data, format, opts)
}
