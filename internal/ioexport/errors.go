package ioexport

import (
	"fmt"

	"github.com/crashwx/crashwx/pkg/errcode"
	"github.com/gnames/gn"
)

// NotConnectedError creates an error for when export
// is attempted without database connection.
func NotConnectedError() error {
	msg := "Export attempted without database connection"

	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("not connected to database"),
	}
}

// QueryError creates an error for a failed dataset read.
func QueryError(dataset string, err error) error {
	msg := "Cannot read <em>%s</em> from the database"

	return &gn.Error{
		Code: errcode.ExportQueryError,
		Msg:  msg,
		Vars: []any{dataset},
		Err:  fmt.Errorf("failed to query %s: %w", dataset, err),
	}
}

// SQLiteError creates an error for a failed write of the export file.
func SQLiteError(path string, err error) error {
	msg := `Cannot write export file <em>%s</em>

<em>How to fix:</em>
  1. Check that the directory exists and is writable
  2. Close other programs that hold the file open`

	return &gn.Error{
		Code: errcode.ExportSQLiteError,
		Msg:  msg,
		Vars: []any{path},
		Err:  fmt.Errorf("failed to write %s: %w", path, err),
	}
}
