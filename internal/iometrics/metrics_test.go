package iometrics_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/crashwx/crashwx/internal/iometrics"
	"github.com/crashwx/crashwx/pkg/errcode"
	"github.com/gnames/gn"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	m := iometrics.New()
	m.Read("accidents", 10)
	m.Read("accidents", 5)
	m.Dropped("accidents", map[string]int{"bad_date": 2, "duplicate": 1})
	m.Written("accidents", 12)
	m.Phase("accidents", 1500*time.Millisecond)
	m.Success(time.Unix(1700000000, 0))

	assert.Equal(t, 15.0, testutil.ToFloat64(m.RowsRead.WithLabelValues("accidents")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.RowsDropped.WithLabelValues("accidents", "bad_date")))
	assert.Equal(t, 12.0, testutil.ToFloat64(m.RowsWritten.WithLabelValues("accidents")))
	assert.Equal(t, 1.5, testutil.ToFloat64(m.PhaseDuration.WithLabelValues("accidents")))
	assert.Equal(t, 1.7e9, testutil.ToFloat64(m.LastSuccess))

	// a second instance does not clash with the first
	m2 := iometrics.New()
	assert.Equal(t, 0.0, testutil.ToFloat64(m2.RowsRead.WithLabelValues("accidents")))
}

func TestWriteFile(t *testing.T) {
	m := iometrics.New()
	m.Written("weather", 3)

	path := filepath.Join(t.TempDir(), "crashwx.prom")
	require.NoError(t, m.WriteFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `crashwx_rows_written_total{table="weather"} 3`)
}

func TestWriteFile_Error(t *testing.T) {
	m := iometrics.New()
	err := m.WriteFile(filepath.Join(t.TempDir(), "missing", "x.prom"))
	require.Error(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.MetricsWriteError, gnErr.Code)
}
