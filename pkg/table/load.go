package table

import (
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/matzehuels/barchart3d/pkg/errors"
)

// Formats lists the file extensions Load understands.
var Formats = []string{".csv", ".tsv", ".xlsx", ".json"}

// Load reads a data file, choosing the reader by extension. sheet selects
// the worksheet of .xlsx files and is ignored otherwise.
func Load(path, sheet string) (*Table, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open %s", path)
	}
	defer f.Close()

	return Read(f, format, sheet)
}

// FormatOf returns the lower-cased extension of path if Load can read it.
func FormatOf(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !slices.Contains(Formats, ext) {
		return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported data file %q (supported: %s)", path, strings.Join(Formats, ", "))
	}
	return ext, nil
}

// Read parses r in the given format, one of Formats.
func Read(r io.Reader, format, sheet string) (*Table, error) {
	switch format {
	case ".csv":
		return ReadCSV(r)
	case ".tsv":
		return ReadDelimited(r, '\t')
	case ".xlsx":
		return ReadXLSX(r, sheet)
	case ".json":
		return ReadJSON(r)
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q", format)
}
