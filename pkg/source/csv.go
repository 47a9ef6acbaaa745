package source

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/shelfmark/shelfmark/pkg/errors"
	"github.com/shelfmark/shelfmark/pkg/label"
)

// readCSV reads a comma-separated table with a header row.
func readCSV(path string) ([]label.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open %s", path)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // rows are validated per column below

	header, err := r.Read()
	if err == io.EOF {
		return nil, errors.New(errors.ErrCodeMissingField, "%s is empty (no header row)", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read header of %s", path)
	}

	index, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	var records []label.Record
	for rowNum := 2; ; rowNum++ {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read row %d of %s", rowNum, path)
		}

		rec, err := recordFromRow(row, index, rowNum)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, nil
}
