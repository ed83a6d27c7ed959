package iopopulate

import (
	"context"
	"errors"
	"testing"

	"github.com/crashwx/crashwx/pkg/errcode"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNotConnectedError verifies error structure.
func TestNotConnectedError(t *testing.T) {
	err := NotConnectedError()

	require.NotNil(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok, "Error should be of type *gn.Error")

	assert.Equal(t, errcode.DBNotConnectedError, gnErr.Code)
	assert.NotEmpty(t, gnErr.Msg)
	assert.Contains(t, gnErr.Err.Error(), "not connected")
}

// TestSourceErrors verifies errors that carry the source path.
func TestSourceErrors(t *testing.T) {
	path := "/data/raw/source.csv"
	originalErr := errors.New("batch failed")

	tests := []struct {
		name string
		err  error
		code gn.ErrorCode
	}{
		{"weather", WeatherError(path, originalErr), errcode.PopulateWeatherError},
		{"accidents", AccidentsError(path, originalErr), errcode.PopulateAccidentsError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gnErr, ok := tt.err.(*gn.Error)
			require.True(t, ok, "Error should be of type *gn.Error")

			assert.Equal(t, tt.code, gnErr.Code)
			assert.Equal(t, []any{path}, gnErr.Vars)
			assert.ErrorIs(t, gnErr.Err, originalErr)
		})
	}
}

// TestAllErrors_ErrorWrapping verifies proper error wrapping.
func TestAllErrors_ErrorWrapping(t *testing.T) {
	originalErr := errors.New("root cause")

	tests := []struct {
		name string
		err  error
		code gn.ErrorCode
	}{
		{"WeatherLookupError", WeatherLookupError(originalErr), errcode.PopulateWeatherLookupError},
		{"IngestRunError", IngestRunError(originalErr), errcode.PopulateIngestRunError},
		{"CancelledError", CancelledError(originalErr), errcode.PopulateCancelledError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gnErr := tt.err.(*gn.Error)
			assert.Equal(t, tt.code, gnErr.Code)
			assert.NotEmpty(t, gnErr.Msg)
			assert.ErrorIs(t, gnErr.Err, originalErr,
				"Should wrap original error")
		})
	}
}

func TestCheckCancel(t *testing.T) {
	assert.NoError(t, checkCancel(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := checkCancel(ctx)
	require.Error(t, err)
	gnErr := err.(*gn.Error)
	assert.Equal(t, errcode.PopulateCancelledError, gnErr.Code)
	assert.ErrorIs(t, gnErr.Err, context.Canceled)
}
