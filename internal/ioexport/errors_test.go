package ioexport

import (
	"errors"
	"testing"

	"github.com/crashwx/crashwx/pkg/errcode"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrors(t *testing.T) {
	originalErr := errors.New("root cause")

	tests := []struct {
		name string
		err  error
		code gn.ErrorCode
		vars []any
	}{
		{"query", QueryError(plotTable, originalErr), errcode.ExportQueryError, []any{plotTable}},
		{"sqlite", SQLiteError("/tmp/x.sqlite", originalErr), errcode.ExportSQLiteError, []any{"/tmp/x.sqlite"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gnErr, ok := tt.err.(*gn.Error)
			require.True(t, ok, "Error should be of type *gn.Error")
			assert.Equal(t, tt.code, gnErr.Code)
			assert.Equal(t, tt.vars, gnErr.Vars)
			assert.ErrorIs(t, gnErr.Err, originalErr)
		})
	}

	gnErr := NotConnectedError().(*gn.Error)
	assert.Equal(t, errcode.DBNotConnectedError, gnErr.Code)
}
