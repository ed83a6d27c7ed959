package iofs

import (
	"errors"
	"testing"

	"github.com/crashwx/crashwx/pkg/errcode"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrors(t *testing.T) {
	cause := errors.New("permission denied")

	tests := []struct {
		msg     string
		err     error
		code    gn.ErrorCode
		userMsg string
		path    string
	}{
		{
			"create dir", CreateDirError("/home/u/.config/crashwx", cause),
			errcode.CreateDirError, "Cannot create crashwx directory",
			"/home/u/.config/crashwx",
		},
		{
			"write config", WriteConfigError("/home/u/.config/crashwx/config.yaml", cause),
			errcode.WriteConfigError, "Cannot write config file",
			"/home/u/.config/crashwx/config.yaml",
		},
		{
			"read config", ReadFileError("/etc/crashwx.yaml", cause),
			errcode.ReadFileError, "Cannot read <em>",
			"/etc/crashwx.yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			var gnErr *gn.Error
			require.ErrorAs(t, tt.err, &gnErr)
			assert.Equal(t, tt.code, gnErr.Code)
			assert.Contains(t, gnErr.Msg, tt.userMsg)
			assert.Equal(t, []any{tt.path}, gnErr.Vars)
			assert.ErrorIs(t, gnErr.Err, cause)
			assert.Contains(t, gnErr.Err.Error(), tt.path)
			assert.Contains(t, gnErr.Err.Error(), "from ")
		})
	}
}

func TestEnsureConfigFile_WriteError(t *testing.T) {
	home := t.TempDir()
	// config dir is never created, so the write fails.
	err := EnsureConfigFile(home)
	require.Error(t, err)

	var gnErr *gn.Error
	require.ErrorAs(t, err, &gnErr)
	assert.Equal(t, errcode.WriteConfigError, gnErr.Code)
	assert.Contains(t, gnErr.Msg, "Cannot write config file")
}
