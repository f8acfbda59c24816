package table

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/matzehuels/barchart3d/pkg/errors"
)

// ReadCSV reads comma separated values with a header record.
func ReadCSV(r io.Reader) (*Table, error) {
	return ReadDelimited(r, ',')
}

// ReadDelimited reads delimiter separated values with a header record.
// Records may have varying field counts.
func ReadDelimited(r io.Reader, comma rune) (*Table, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse delimited data")
	}
	if len(records) == 0 {
		return nil, errors.New(errors.ErrCodeNoData, "no header row")
	}
	header := records[0]
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	return New(header, records[1:]), nil
}
