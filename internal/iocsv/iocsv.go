// Package iocsv reads producer-supplied CSV exports into raw tables.
package iocsv

import (
	"encoding/csv"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/crashwx/crashwx/pkg/rawtable"
)

const bom = "\ufeff"

// ReadFile reads the CSV file at path. The first record is the header.
// A missing, unreadable or empty file is an error; ragged rows are
// accepted.
func ReadFile(path string) (*rawtable.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, SourceOpenError(path, err)
	}
	defer f.Close()

	tbl, err := Read(f)
	if err != nil {
		return nil, wrapReadError(path, err)
	}

	slog.Info("Read CSV source",
		"path", path,
		"columns", len(tbl.Columns),
		"rows", tbl.Len(),
	)
	return tbl, nil
}

// Read parses CSV data from r.
func Read(r io.Reader) (*rawtable.Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, errEmpty
	}
	if err != nil {
		return nil, err
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], bom)
	}

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}

	return rawtable.New(header, rows), nil
}

var errEmpty = errors.New("no header line")

func wrapReadError(path string, err error) error {
	if errors.Is(err, errEmpty) {
		return SourceEmptyError(path)
	}
	return SourceReadError(path, err)
}
