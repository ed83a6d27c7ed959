package iometrics

import (
	"fmt"

	"github.com/crashwx/crashwx/pkg/errcode"
	"github.com/gnames/gn"
)

// WriteError is returned when the metrics file cannot be written.
func WriteError(path string, err error) error {
	return &gn.Error{
		Code: errcode.MetricsWriteError,
		Msg:  "Cannot write metrics to <em>%s</em>",
		Vars: []any{path},
		Err:  fmt.Errorf("cannot write metrics %s: %w", path, err),
	}
}
