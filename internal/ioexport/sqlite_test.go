package ioexport

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/crashwx/crashwx/pkg/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteSQLite(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "export.sqlite")
	at := time.Date(2024, 1, 6, 8, 15, 0, 0, time.UTC)
	borough := "BROOKLYN"

	plot := []dataset.PlotRow{
		{CrashDatetime: at, Borough: borough, Severity: 1},
		{CrashDatetime: at.Add(time.Hour), Borough: "QUEENS", Severity: 0},
	}
	training := []dataset.TrainingRow{
		dataset.NewTrainingRow(1, at, &borough, nil, 40.69, -73.99, 3, 0, 1),
	}

	require.NoError(t, writeSQLite(ctx, path, plot, training))

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	assert.Equal(t, 2, count(t, db, plotTable))
	assert.Equal(t, 1, count(t, db, trainingTable))

	var crashAt, zip string
	var dow, weekend int
	err = db.QueryRow(`SELECT crash_datetime, zip_code, day_of_week, is_weekend
	  FROM training_rows WHERE accident_id = 1`).
		Scan(&crashAt, &zip, &dow, &weekend)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-06 08:15:00", crashAt)
	assert.Equal(t, dataset.Unknown, zip)
	assert.Equal(t, 5, dow)
	assert.Equal(t, 1, weekend)

	// a second export replaces the tables; nil training drops the old one
	require.NoError(t, writeSQLite(ctx, path, plot[:1], nil))
	assert.Equal(t, 1, count(t, db, plotTable))

	var n int
	err = db.QueryRow(`SELECT count(*) FROM sqlite_master
	  WHERE type = 'table' AND name = ?`, trainingTable).Scan(&n)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestWriteSQLite_BadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "export.sqlite")
	err := writeSQLite(context.Background(), path, nil, nil)
	assert.Error(t, err)
}

func count(t *testing.T, db *sql.DB, table string) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow("SELECT count(*) FROM "+table).Scan(&n))
	return n
}
