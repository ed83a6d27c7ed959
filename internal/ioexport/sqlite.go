package ioexport

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/crashwx/crashwx/pkg/dataset"
	_ "modernc.org/sqlite"
)

const (
	plotTable     = "plot_rows"
	trainingTable = "training_rows"

	// sqliteTime is a datetime form understood by SQLite date functions.
	sqliteTime = "2006-01-02 15:04:05"
)

const plotDDL = `
CREATE TABLE plot_rows (
  crash_datetime TEXT NOT NULL,
  borough        TEXT NOT NULL,
  severity       INTEGER NOT NULL
)`

const trainingDDL = `
CREATE TABLE training_rows (
  accident_id    INTEGER PRIMARY KEY,
  crash_datetime TEXT NOT NULL,
  borough        TEXT NOT NULL,
  zip_code       TEXT NOT NULL,
  latitude       REAL NOT NULL,
  longitude      REAL NOT NULL,
  num_injuries   INTEGER NOT NULL,
  num_deaths     INTEGER NOT NULL,
  severity       INTEGER NOT NULL,
  hour           INTEGER NOT NULL,
  day_of_week    INTEGER NOT NULL,
  month          INTEGER NOT NULL,
  is_weekend     INTEGER NOT NULL
)`

// writeSQLite replaces the export tables of the SQLite file at path in
// one transaction. A nil training slice leaves training_rows absent.
func writeSQLite(
	ctx context.Context,
	path string,
	plot []dataset.PlotRow,
	training []dataset.TrainingRow,
) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, t := range []string{plotTable, trainingTable} {
		if _, err = tx.ExecContext(ctx, "DROP TABLE IF EXISTS "+t); err != nil {
			return fmt.Errorf("drop %s: %w", t, err)
		}
	}

	if err = writePlot(ctx, tx, plot); err != nil {
		return err
	}
	if training != nil {
		if err = writeTraining(ctx, tx, training); err != nil {
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func writePlot(ctx context.Context, tx *sql.Tx, rows []dataset.PlotRow) error {
	if _, err := tx.ExecContext(ctx, plotDDL); err != nil {
		return fmt.Errorf("create %s: %w", plotTable, err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO plot_rows (crash_datetime, borough, severity)
		 VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare %s: %w", plotTable, err)
	}
	defer stmt.Close()

	for _, r := range rows {
		_, err = stmt.ExecContext(ctx,
			r.CrashDatetime.Format(sqliteTime), r.Borough, r.Severity)
		if err != nil {
			return fmt.Errorf("insert %s: %w", plotTable, err)
		}
	}
	return nil
}

func writeTraining(
	ctx context.Context,
	tx *sql.Tx,
	rows []dataset.TrainingRow,
) error {
	if _, err := tx.ExecContext(ctx, trainingDDL); err != nil {
		return fmt.Errorf("create %s: %w", trainingTable, err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO training_rows (
		   accident_id, crash_datetime, borough, zip_code,
		   latitude, longitude, num_injuries, num_deaths, severity,
		   hour, day_of_week, month, is_weekend)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare %s: %w", trainingTable, err)
	}
	defer stmt.Close()

	for _, r := range rows {
		var weekend int
		if r.IsWeekend {
			weekend = 1
		}
		_, err = stmt.ExecContext(ctx,
			r.AccidentID,
			r.CrashDatetime.Format(sqliteTime),
			r.Borough,
			r.ZipCode,
			r.Latitude,
			r.Longitude,
			r.NumInjuries,
			r.NumDeaths,
			r.Severity,
			r.Hour,
			r.DayOfWeek,
			r.Month,
			weekend,
		)
		if err != nil {
			return fmt.Errorf("insert %s: %w", trainingTable, err)
		}
	}
	return nil
}
