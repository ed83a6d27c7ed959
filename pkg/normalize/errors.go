package normalize

import (
	"errors"
	"fmt"
	"strings"

	"github.com/crashwx/crashwx/pkg/errcode"
	"github.com/crashwx/crashwx/pkg/resolve"
	"github.com/gnames/gn"
)

// MissingColumnsError creates an error for an accident source that lacks
// required columns.
func MissingColumnsError(err error) error {
	var missing []string
	var mErr *resolve.MissingColumnsError
	if errors.As(err, &mErr) {
		missing = mErr.Missing
	}

	msg := `Accidents source is missing required columns

<em>Missing:</em> %s

<em>How to fix:</em>
  1. Check the header line of the accidents file
  2. Column names are matched after upper-casing and replacing spaces
     with underscores`

	return &gn.Error{
		Code: errcode.SourceMissingColumnsError,
		Msg:  msg,
		Vars: []any{strings.Join(missing, ", ")},
		Err:  fmt.Errorf("accidents: %w", err),
	}
}
