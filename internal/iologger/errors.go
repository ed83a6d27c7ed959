package iologger

import (
	"fmt"
	"runtime"

	"github.com/crashwx/crashwx/pkg/errcode"
	"github.com/gnames/gn"
)

// CreateLogFileError is returned when crashwx.log cannot be opened for
// the "file" log destination.
func CreateLogFileError(path string, err error) error {
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc).Name()
	return &gn.Error{
		Code: errcode.CreateLogFileError,
		Msg:  "Cannot open crashwx log <em>%s</em>",
		Vars: []any{path},
		Err:  fmt.Errorf("from %s: open log %s: %w", fn, path, err),
	}
}
