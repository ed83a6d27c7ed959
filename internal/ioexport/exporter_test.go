package ioexport_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/crashwx/crashwx/internal/iodb"
	"github.com/crashwx/crashwx/internal/ioexport"
	"github.com/crashwx/crashwx/internal/ioschema"
	"github.com/crashwx/crashwx/internal/iotesting"
	"github.com/crashwx/crashwx/pkg/config"
	"github.com/crashwx/crashwx/pkg/errcode"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func TestExport_NotConnected(t *testing.T) {
	e := ioexport.New(config.New(), iodb.NewPgxOperator())
	err := e.Export(context.Background(), filepath.Join(t.TempDir(), "x.sqlite"))
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.DBNotConnectedError, gnErr.Code)
}

func TestExport(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	cfg := iotesting.GetTestConfig()

	op := iodb.NewPgxOperator()
	if err := op.Connect(ctx, &cfg.Database); err != nil {
		t.Skipf("PostgreSQL not available: %v", err)
	}
	defer op.Close()

	require.NoError(t, op.DropAllTables(ctx))
	require.NoError(t, ioschema.NewManager(cfg, op).Create(ctx))

	pool := op.Pool()
	_, err := pool.Exec(ctx, `INSERT INTO weather (date) VALUES ('2024-01-06')`)
	require.NoError(t, err)
	_, err = pool.Exec(ctx, `
INSERT INTO accidents (accident_id, crash_datetime, crash_date, borough,
  zip_code, latitude, longitude, street_name, street_type,
  num_injuries, num_deaths, severity, weather_id)
SELECT v.id, v.at::timestamp, '2024-01-06', v.borough, NULL, 40.7, -73.9,
  'BROADWAY', 'ON_STREET', v.inj, 0, v.sev, w.weather_id
  FROM weather w,
  (VALUES (1, '2024-01-06 08:15', 'BROOKLYN', 3, 1),
          (2, '2024-01-06 09:00', NULL, 0, 0)) AS v(id, at, borough, inj, sev)`)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "crashwx.sqlite")

	cfg.Training.MinRows = 1
	require.NoError(t, ioexport.New(cfg, op).Export(ctx, path))

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	var plotNum, trainNum int
	require.NoError(t, db.QueryRow(`SELECT count(*) FROM plot_rows`).Scan(&plotNum))
	require.NoError(t, db.QueryRow(`SELECT count(*) FROM training_rows`).Scan(&trainNum))
	assert.Equal(t, 1, plotNum, "accident without borough is not plotted")
	assert.Equal(t, 2, trainNum)

	var borough string
	require.NoError(t, db.QueryRow(
		`SELECT borough FROM training_rows WHERE accident_id = 2`).Scan(&borough))
	assert.Equal(t, "Unknown", borough)

	// below the floor the training table is not exported
	cfg.Training.MinRows = 3
	require.NoError(t, ioexport.New(cfg, op).Export(ctx, path))
	err = db.QueryRow(`SELECT count(*) FROM training_rows`).Scan(&trainNum)
	assert.Error(t, err)
}
