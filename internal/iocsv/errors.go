package iocsv

import (
	"fmt"

	"github.com/crashwx/crashwx/pkg/errcode"
	"github.com/gnames/gn"
)

// SourceOpenError is returned when a source file cannot be opened.
func SourceOpenError(path string, err error) error {
	msg := `Cannot open source file

<em>Path:</em> %s

<em>How to fix:</em>
  1. Check the path in config.yaml (sources section)
  2. Or pass it with --accidents / --weather`

	return &gn.Error{
		Code: errcode.SourceOpenError,
		Msg:  msg,
		Vars: []any{path},
		Err:  fmt.Errorf("cannot open %s: %w", path, err),
	}
}

// SourceReadError is returned when a source file is not valid CSV.
func SourceReadError(path string, err error) error {
	msg := "Cannot read CSV source <em>%s</em>"

	return &gn.Error{
		Code: errcode.SourceReadError,
		Msg:  msg,
		Vars: []any{path},
		Err:  fmt.Errorf("cannot read %s: %w", path, err),
	}
}

// SourceEmptyError is returned when a source file has no header line.
func SourceEmptyError(path string) error {
	msg := "Source file <em>%s</em> is empty"

	return &gn.Error{
		Code: errcode.SourceEmptyError,
		Msg:  msg,
		Vars: []any{path},
		Err:  fmt.Errorf("empty source %s", path),
	}
}
