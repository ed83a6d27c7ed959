// Package iopopulate implements Populator interface for loading the
// weather and collision exports into PostgreSQL.
// This is an impure I/O package that reads CSV sources and performs
// bulk inserts.
package iopopulate

import (
	"context"
	"log/slog"

	"github.com/crashwx/crashwx/internal/iocsv"
	"github.com/crashwx/crashwx/internal/iometrics"
	"github.com/crashwx/crashwx/pkg/config"
	"github.com/crashwx/crashwx/pkg/db"
	"github.com/crashwx/crashwx/pkg/lifecycle"
	"github.com/crashwx/crashwx/pkg/normalize"
	"github.com/crashwx/crashwx/pkg/schema"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

// populator implements the Populator interface.
type populator struct {
	cfg      *config.Config
	operator db.Operator
	clock    clockwork.Clock
	metrics  *iometrics.Metrics
}

// Option configures a populator.
type Option func(*populator)

// OptClock sets the clock used for run timestamps.
func OptClock(c clockwork.Clock) Option {
	return func(p *populator) {
		p.clock = c
	}
}

// OptMetrics sets the collector of row counts and durations.
func OptMetrics(m *iometrics.Metrics) Option {
	return func(p *populator) {
		p.metrics = m
	}
}

// New creates a new Populator.
func New(
	cfg *config.Config,
	op db.Operator,
	opts ...Option,
) lifecycle.Populator {
	p := &populator{
		cfg:      cfg,
		operator: op,
		clock:    clockwork.NewRealClock(),
		metrics:  iometrics.New(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Populate loads weather first and commits it. Accidents are then
// normalized, joined against the committed weather rows and inserted.
// The run is recorded in ingest_runs.
func (p *populator) Populate(ctx context.Context) error {
	pool := p.operator.Pool()
	if pool == nil {
		return NotConnectedError()
	}

	run := schema.IngestRun{
		ID:            uuid.New(),
		StartedAt:     p.clock.Now(),
		WeatherPath:   p.cfg.Sources.WeatherPath,
		AccidentsPath: p.cfg.Sources.AccidentsPath,
	}
	slog.Info("Starting database population", "run_id", run.ID)

	gn.Info("(1/4) Importing weather from <em>%s</em>...", run.WeatherPath)
	wStats, wInserted, err := p.populateWeather(ctx)
	if err != nil {
		return err
	}
	run.WeatherRead = wStats.Read
	run.WeatherInserted = wInserted

	if err = checkCancel(ctx); err != nil {
		return err
	}

	gn.Info("(2/4) Normalizing accidents from <em>%s</em>...", run.AccidentsPath)
	rows, aStats, err := p.normalizeAccidents()
	if err != nil {
		return err
	}
	run.AccidentsRead = aStats.Read

	if err = checkCancel(ctx); err != nil {
		return err
	}

	gn.Info("(3/4) Joining accidents with weather...")
	aInserted, err := p.populateAccidents(ctx, rows, &aStats)
	if err != nil {
		return err
	}
	run.AccidentsInserted = aInserted

	gn.Info("(4/4) Recording ingest run...")
	run.FinishedAt = p.clock.Now()
	if err = p.insertRun(ctx, run); err != nil {
		return IngestRunError(err)
	}
	p.metrics.Success(run.FinishedAt)

	dur := run.FinishedAt.Sub(run.StartedAt)
	slog.Info("Population complete",
		"run_id", run.ID,
		"weather_inserted", wInserted,
		"accidents_inserted", aInserted,
		"duration", gnfmt.TimeString(dur.Seconds()),
	)
	gn.Info(`Population complete
Weather days: <em>%s</em>, accidents: <em>%s</em>.
		Elapsed time: <em>%s</em>
`,
		humanize.Comma(int64(wInserted)),
		humanize.Comma(int64(aInserted)),
		gnfmt.TimeString(dur.Seconds()),
	)
	return nil
}

func (p *populator) populateWeather(
	ctx context.Context,
) (normalize.WeatherStats, int, error) {
	start := p.clock.Now()
	path := p.cfg.Sources.WeatherPath

	tbl, err := iocsv.ReadFile(path)
	if err != nil {
		return normalize.WeatherStats{}, 0, err
	}

	rows, stats := normalize.Weather(tbl)
	if stats.DateFallback {
		gn.Warn(
			"No date column found in <em>%s</em>, using <em>%s</em>",
			path, stats.DateColumn,
		)
	}
	p.metrics.Read("weather", stats.Read)
	p.metrics.Dropped("weather", map[string]int{
		normalize.DropBadDate:   stats.BadDate,
		normalize.DropDuplicate: stats.Duplicates,
	})

	inserted, err := p.insertWeather(ctx, rows)
	if err != nil {
		return stats, 0, WeatherError(path, err)
	}
	p.metrics.Written(schema.Weather{}.TableName(), inserted)
	p.metrics.Phase("weather", p.clock.Since(start))

	gn.Message(
		"<em>Imported %s weather days</em> (%s read, %s kept)",
		humanize.Comma(int64(inserted)),
		humanize.Comma(int64(stats.Read)),
		humanize.Comma(int64(stats.Kept)),
	)
	return stats, inserted, nil
}

func (p *populator) normalizeAccidents() (
	[]normalize.AccidentRow,
	normalize.AccidentStats,
	error,
) {
	tbl, err := iocsv.ReadFile(p.cfg.Sources.AccidentsPath)
	if err != nil {
		return nil, normalize.AccidentStats{}, err
	}

	opts := normalize.AccidentOptions{
		YearMin: p.cfg.Populate.YearMin,
		YearMax: p.cfg.Populate.YearMax,
		MaxRows: p.cfg.Populate.MaxRows,
		Seed:    p.cfg.RandomSeed,
	}
	rows, stats, err := normalize.Accidents(tbl, opts)
	if err != nil {
		return nil, stats, err
	}
	p.metrics.Read("accidents", stats.Read)

	gn.Message(
		"<em>Normalized %s accidents</em> (%s read, %s dropped)",
		humanize.Comma(int64(stats.Kept)),
		humanize.Comma(int64(stats.Read)),
		humanize.Comma(int64(stats.DroppedTotal())),
	)
	return rows, stats, nil
}

func (p *populator) populateAccidents(
	ctx context.Context,
	rows []normalize.AccidentRow,
	stats *normalize.AccidentStats,
) (int, error) {
	start := p.clock.Now()

	lookup, err := p.weatherLookup(ctx)
	if err != nil {
		return 0, WeatherLookupError(err)
	}

	joined, unmatched := normalize.JoinWeather(rows, lookup)
	stats.Dropped[normalize.DropUnjoined] += unmatched
	stats.Kept = len(joined)
	p.metrics.Dropped("accidents", stats.Dropped)
	slog.Info("Joined accidents with weather",
		"joined", len(joined),
		"unmatched", unmatched,
	)

	inserted, err := p.insertAccidents(ctx, joined)
	if err != nil {
		return 0, AccidentsError(p.cfg.Sources.AccidentsPath, err)
	}
	p.metrics.Written(schema.Accident{}.TableName(), inserted)
	p.metrics.Phase("accidents", p.clock.Since(start))

	gn.Message(
		"<em>Imported %s accidents</em> (%s without weather)",
		humanize.Comma(int64(inserted)),
		humanize.Comma(int64(unmatched)),
	)
	return inserted, nil
}

func checkCancel(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return CancelledError(ctx.Err())
	default:
		return nil
	}
}
