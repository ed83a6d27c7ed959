// Package iometrics collects row counts and phase durations of crashwx
// runs and writes them in the Prometheus text format, ready for the
// node-exporter textfile collector.
package iometrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "crashwx"

// Metrics holds the Prometheus collectors of one run. Every Metrics value
// has its own registry, so several can coexist in tests.
type Metrics struct {
	registry *prometheus.Registry

	// labels: source={weather,accidents}
	RowsRead *prometheus.CounterVec
	// labels: source={weather,accidents}, reason
	RowsDropped *prometheus.CounterVec
	// labels: table={weather,accidents,plot_rows,training_rows}
	RowsWritten *prometheus.CounterVec
	// labels: phase={weather,accidents,export}
	PhaseDuration *prometheus.GaugeVec

	LastSuccess prometheus.Gauge
}

// New creates Metrics with a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		RowsRead: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rows_read_total",
			Help:      "Rows read from a source file.",
		}, []string{"source"}),
		RowsDropped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rows_dropped_total",
			Help:      "Source rows discarded during normalization, by reason.",
		}, []string{"source", "reason"}),
		RowsWritten: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rows_written_total",
			Help:      "Rows written to a table.",
		}, []string{"table"}),
		PhaseDuration: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "phase_duration_seconds",
			Help:      "Wall time of the last run of a phase.",
		}, []string{"phase"}),
		LastSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_success_timestamp_seconds",
			Help:      "Unix time of the last successful run.",
		}),
	}

	m.registry.MustRegister(
		m.RowsRead,
		m.RowsDropped,
		m.RowsWritten,
		m.PhaseDuration,
		m.LastSuccess,
	)

	return m
}

// Read adds n rows read from source.
func (m *Metrics) Read(source string, n int) {
	m.RowsRead.WithLabelValues(source).Add(float64(n))
}

// Dropped adds dropped row counts of source by reason.
func (m *Metrics) Dropped(source string, byReason map[string]int) {
	for reason, n := range byReason {
		m.RowsDropped.WithLabelValues(source, reason).Add(float64(n))
	}
}

// Written adds n rows written to table.
func (m *Metrics) Written(table string, n int) {
	m.RowsWritten.WithLabelValues(table).Add(float64(n))
}

// Phase records how long a phase took.
func (m *Metrics) Phase(phase string, d time.Duration) {
	m.PhaseDuration.WithLabelValues(phase).Set(d.Seconds())
}

// Success marks the run as finished at t.
func (m *Metrics) Success(t time.Time) {
	m.LastSuccess.Set(float64(t.Unix()))
}

// Registry exposes the registry for gathering.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// WriteFile writes all metrics to path in the text exposition format.
// The file is replaced atomically.
func (m *Metrics) WriteFile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return WriteError(path, err)
	}
	return nil
}
