package iopopulate

import (
	"context"

	"github.com/crashwx/crashwx/pkg/schema"
)

func (p *populator) insertRun(ctx context.Context, run schema.IngestRun) error {
	q := `INSERT INTO ingest_runs
  (id, started_at, finished_at, weather_path, accidents_path,
   weather_read, weather_inserted, accidents_read, accidents_inserted)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := p.operator.Pool().Exec(ctx, q,
		run.ID,
		run.StartedAt,
		run.FinishedAt,
		run.WeatherPath,
		run.AccidentsPath,
		run.WeatherRead,
		run.WeatherInserted,
		run.AccidentsRead,
		run.AccidentsInserted,
	)
	return err
}
