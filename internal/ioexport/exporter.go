// Package ioexport implements Exporter interface. It reads the plotting
// and training datasets from PostgreSQL and writes them into a SQLite
// file for the downstream tools.
package ioexport

import (
	"context"
	"log/slog"

	"github.com/crashwx/crashwx/internal/iometrics"
	"github.com/crashwx/crashwx/pkg/config"
	"github.com/crashwx/crashwx/pkg/dataset"
	"github.com/crashwx/crashwx/pkg/db"
	"github.com/crashwx/crashwx/pkg/lifecycle"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"
)

type exporter struct {
	cfg      *config.Config
	operator db.Operator
	clock    clockwork.Clock
	metrics  *iometrics.Metrics
}

// Option configures an exporter.
type Option func(*exporter)

// OptClock sets the clock used to time the export.
func OptClock(c clockwork.Clock) Option {
	return func(e *exporter) {
		e.clock = c
	}
}

// OptMetrics sets the collector of written row counts.
func OptMetrics(m *iometrics.Metrics) Option {
	return func(e *exporter) {
		e.metrics = m
	}
}

// New creates a new Exporter.
func New(
	cfg *config.Config,
	op db.Operator,
	opts ...Option,
) lifecycle.Exporter {
	e := &exporter{
		cfg:      cfg,
		operator: op,
		clock:    clockwork.NewRealClock(),
		metrics:  iometrics.New(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Export reads both datasets concurrently and writes them to path.
// When there are fewer training rows than training.min_rows, the
// training table is left out.
func (e *exporter) Export(ctx context.Context, path string) error {
	if e.operator.Pool() == nil {
		return NotConnectedError()
	}
	start := e.clock.Now()

	var plot []dataset.PlotRow
	var training []dataset.TrainingRow

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		plot, err = e.plotRows(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		training, err = e.trainingRows(gCtx)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	if len(training) < e.cfg.Training.MinRows {
		slog.Warn("Too few training rows, skipping training table",
			"rows", len(training),
			"min_rows", e.cfg.Training.MinRows,
		)
		gn.Warn(
			"Only <em>%s</em> training rows, at least <em>%s</em> needed. "+
				"Training table is not exported",
			humanize.Comma(int64(len(training))),
			humanize.Comma(int64(e.cfg.Training.MinRows)),
		)
		training = nil
	}

	if err := writeSQLite(ctx, path, plot, training); err != nil {
		return SQLiteError(path, err)
	}

	e.metrics.Written(plotTable, len(plot))
	e.metrics.Written(trainingTable, len(training))
	dur := e.clock.Since(start)
	e.metrics.Phase("export", dur)

	slog.Info("Export complete",
		"path", path,
		"plot_rows", len(plot),
		"training_rows", len(training),
		"duration", gnfmt.TimeString(dur.Seconds()),
	)
	gn.Info(`Exported to <em>%s</em>
Plot rows: <em>%s</em>, training rows: <em>%s</em>.
		Elapsed time: <em>%s</em>
`,
		path,
		humanize.Comma(int64(len(plot))),
		humanize.Comma(int64(len(training))),
		gnfmt.TimeString(dur.Seconds()),
	)
	return nil
}
