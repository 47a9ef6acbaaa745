package source

import (
	"github.com/xuri/excelize/v2"

	"github.com/shelfmark/shelfmark/pkg/errors"
	"github.com/shelfmark/shelfmark/pkg/label"
)

// readXLSX reads the first worksheet of an Excel workbook. The first row is
// the header.
func readXLSX(path string) ([]label.Record, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open %s", path)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New(errors.ErrCodeMissingField, "%s has no worksheets", path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read sheet %q of %s", sheets[0], path)
	}
	if len(rows) == 0 {
		return nil, errors.New(errors.ErrCodeMissingField, "%s is empty (no header row)", path)
	}

	index, err := columnIndex(rows[0])
	if err != nil {
		return nil, err
	}

	var records []label.Record
	for i, row := range rows[1:] {
		rec, err := recordFromRow(row, index, i+2)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, nil
}
