package iofs

import (
	"fmt"
	"runtime"

	"github.com/crashwx/crashwx/pkg/errcode"
	"github.com/gnames/gn"
)

// CreateDirError is returned when a crashwx config or log directory
// cannot be created.
func CreateDirError(dir string, err error) error {
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc).Name()
	return &gn.Error{
		Code: errcode.CreateDirError,
		Msg:  "Cannot create crashwx directory <em>%s</em>",
		Vars: []any{dir},
		Err:  fmt.Errorf("from %s: mkdir %s: %w", fn, dir, err),
	}
}

// WriteConfigError is returned when the default config.yaml cannot be
// rendered or saved.
func WriteConfigError(path string, err error) error {
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc).Name()
	return &gn.Error{
		Code: errcode.WriteConfigError,
		Msg:  "Cannot write config file to %s",
		Vars: []any{path},
		Err:  fmt.Errorf("from %s: write default config %s: %w", fn, path, err),
	}
}

// ReadFileError is returned when config.yaml exists but cannot be read
// or parsed.
func ReadFileError(path string, err error) error {
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc).Name()
	return &gn.Error{
		Code: errcode.ReadFileError,
		Msg:  "Cannot read <em>%s</em>",
		Vars: []any{path},
		Err:  fmt.Errorf("from %s: read config %s: %w", fn, path, err),
	}
}
