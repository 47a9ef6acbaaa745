// Package source reads warehouse-location tables from disk and turns them
// into label records. Input format is selected by file extension against a
// fixed whitelist; anything else fails before any rendering begins.
package source

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/shelfmark/shelfmark/pkg/errors"
	"github.com/shelfmark/shelfmark/pkg/label"
)

// Required column names in the input header row. Matching is exact: no
// synonyms, no case folding.
const (
	colAisle   = "aisle"
	colAmbient = "ambient"
	colColor   = "color"
	colQRValue = "qr_value"
)

var requiredColumns = []string{colAisle, colAmbient, colColor, colQRValue}

// Read loads the table at path and returns its rows as label records in
// input order.
//
// Recognized extensions are .csv and .xlsx. Any other extension returns an
// UNSUPPORTED_FORMAT error; a missing required column or a row too short to
// hold one returns MISSING_FIELD and fails the whole run.
func Read(path string) ([]label.Record, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, errors.New(errors.ErrCodeFileNotFound, "input table not found: %s", path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return readCSV(path)
	case ".xlsx":
		return readXLSX(path)
	case ".xls":
		return nil, errors.New(errors.ErrCodeUnsupportedFormat,
			"legacy .xls is not supported; convert %s to .xlsx or .csv", filepath.Base(path))
	default:
		return nil, errors.New(errors.ErrCodeUnsupportedFormat,
			"unsupported file format %q (use .csv or .xlsx)", filepath.Ext(path))
	}
}

// columnIndex maps the required column names to their positions in the
// header row. Every required column must be present.
func columnIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}

	for _, name := range requiredColumns {
		if _, ok := index[name]; !ok {
			return nil, errors.New(errors.ErrCodeMissingField, "required column %q not found in header", name)
		}
	}
	return index, nil
}

// recordFromRow builds a record from one data row. rowNum is 1-based and
// used only for error messages.
func recordFromRow(row []string, index map[string]int, rowNum int) (label.Record, error) {
	field := func(name string) (string, error) {
		i := index[name]
		if i >= len(row) {
			return "", errors.New(errors.ErrCodeMissingField, "row %d has no value for column %q", rowNum, name)
		}
		return row[i], nil
	}

	var rec label.Record
	var err error
	if rec.Aisle, err = field(colAisle); err != nil {
		return label.Record{}, err
	}
	if rec.Ambient, err = field(colAmbient); err != nil {
		return label.Record{}, err
	}
	if rec.BGColor, err = field(colColor); err != nil {
		return label.Record{}, err
	}
	if rec.CodeValue, err = field(colQRValue); err != nil {
		return label.Record{}, err
	}
	return rec, nil
}
