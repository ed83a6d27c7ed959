package ioexport

import (
	"context"
	"time"

	"github.com/crashwx/crashwx/pkg/dataset"
	"github.com/jackc/pgx/v5"
)

const plotQuery = `
SELECT crash_datetime, borough, severity
  FROM accidents
  WHERE crash_datetime IS NOT NULL AND borough IS NOT NULL
  ORDER BY crash_datetime, accident_id`

const trainingQuery = `
SELECT accident_id, crash_datetime, borough, zip_code, latitude, longitude,
       num_injuries, num_deaths, severity
  FROM accidents
  WHERE severity IS NOT NULL
  ORDER BY accident_id`

func (e *exporter) plotRows(ctx context.Context) ([]dataset.PlotRow, error) {
	rows, err := e.operator.Pool().Query(ctx, plotQuery)
	if err != nil {
		return nil, QueryError(plotTable, err)
	}

	res, err := pgx.CollectRows(rows,
		func(row pgx.CollectableRow) (dataset.PlotRow, error) {
			var r dataset.PlotRow
			err := row.Scan(&r.CrashDatetime, &r.Borough, &r.Severity)
			return r, err
		})
	if err != nil {
		return nil, QueryError(plotTable, err)
	}
	return res, nil
}

func (e *exporter) trainingRows(
	ctx context.Context,
) ([]dataset.TrainingRow, error) {
	rows, err := e.operator.Pool().Query(ctx, trainingQuery)
	if err != nil {
		return nil, QueryError(trainingTable, err)
	}

	res, err := pgx.CollectRows(rows,
		func(row pgx.CollectableRow) (dataset.TrainingRow, error) {
			var (
				id                         int64
				at                         time.Time
				borough, zip               *string
				lat, lon                   float64
				injuries, deaths, severity int
			)
			err := row.Scan(&id, &at, &borough, &zip, &lat, &lon,
				&injuries, &deaths, &severity)
			if err != nil {
				return dataset.TrainingRow{}, err
			}
			return dataset.NewTrainingRow(id, at, borough, zip, lat, lon,
				injuries, deaths, severity), nil
		})
	if err != nil {
		return nil, QueryError(trainingTable, err)
	}
	return res, nil
}
