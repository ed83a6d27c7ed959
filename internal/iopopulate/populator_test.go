package iopopulate_test

import (
	"context"
	"testing"
	"time"

	"github.com/crashwx/crashwx/internal/iodb"
	"github.com/crashwx/crashwx/internal/iometrics"
	"github.com/crashwx/crashwx/internal/iopopulate"
	"github.com/crashwx/crashwx/internal/ioschema"
	"github.com/crashwx/crashwx/internal/iotesting"
	"github.com/crashwx/crashwx/pkg/config"
	"github.com/crashwx/crashwx/pkg/db"
	"github.com/crashwx/crashwx/pkg/errcode"
	"github.com/gnames/gn"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const weatherCSV = `DATE,TMAX,TMIN,PRCP,conditions,preciptype
2024-01-01,40,30,0.1,Rain,rain
2024-01-01,99,88,0,Clear,
2024-01-02,41,31,,,
`

const accidentsCSV = `CRASH DATE,CRASH TIME,BOROUGH,ZIP CODE,LATITUDE,LONGITUDE,ON STREET NAME,OFF STREET NAME,NUMBER OF PERSONS INJURED,NUMBER OF PERSONS KILLED,COLLISION_ID
01/01/2024,8:15,BROOKLYN,11201,40.69,-73.99,BROADWAY,,3,0,1
01/01/2024,9:00,,,40.70,-73.98,,5th Ave,2,0,2
01/05/2024,10:00,QUEENS,11101,40.74,-73.92,MAIN ST,,0,1,3
01/02/2024,11:30,BRONX,10451,abc,-73.92,GRAND CONCOURSE,,0,0,4
01/02/2024,12:00,BRONX,10451,40.82,-73.92,GRAND CONCOURSE,,0,0,1
`

func TestPopulate_NotConnected(t *testing.T) {
	p := iopopulate.New(config.New(), iodb.NewPgxOperator())
	err := p.Populate(context.Background())
	require.Error(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.DBNotConnectedError, gnErr.Code)
}

// TestPopulate runs both phases against the test database.
func TestPopulate(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	cfg := iotesting.GetTestConfig()
	op := connect(t, cfg)

	dir := t.TempDir()
	var err error
	cfg.Sources.WeatherPath, err = iotesting.WriteCSV(dir, "weather.csv", weatherCSV)
	require.NoError(t, err)
	cfg.Sources.AccidentsPath, err = iotesting.WriteCSV(dir, "accidents.csv", accidentsCSV)
	require.NoError(t, err)

	started := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := clockwork.NewFakeClockAt(started)
	m := iometrics.New()

	p := iopopulate.New(cfg, op,
		iopopulate.OptClock(clock),
		iopopulate.OptMetrics(m),
	)
	require.NoError(t, p.Populate(ctx))

	pool := op.Pool()

	// first weather row of a date wins
	var weatherNum int
	var tmax float64
	require.NoError(t, pool.QueryRow(ctx,
		`SELECT count(*) FROM weather`).Scan(&weatherNum))
	assert.Equal(t, 2, weatherNum)
	require.NoError(t, pool.QueryRow(ctx,
		`SELECT temp_max FROM weather WHERE date = '2024-01-01'`).Scan(&tmax))
	assert.Equal(t, 40.0, tmax)

	var desc, ptype string
	require.NoError(t, pool.QueryRow(ctx,
		`SELECT weather_description, precipitation_type
		   FROM weather WHERE date = '2024-01-02'`).Scan(&desc, &ptype))
	assert.Equal(t, "Unknown", desc)
	assert.Equal(t, "Unknown", ptype)

	// accident 3 has no weather, accident 4 has bad coordinates and the
	// second accident 1 is a duplicate
	ids := queryIDs(t, op)
	assert.Equal(t, []int64{1, 2}, ids)

	var crashAt time.Time
	var severity int16
	require.NoError(t, pool.QueryRow(ctx,
		`SELECT crash_datetime, severity FROM accidents WHERE accident_id = 1`,
	).Scan(&crashAt, &severity))
	assert.True(t, time.Date(2024, 1, 1, 8, 15, 0, 0, time.UTC).Equal(crashAt))
	assert.Equal(t, int16(1), severity)

	var street string
	var borough *string
	require.NoError(t, pool.QueryRow(ctx,
		`SELECT street_name, borough, severity FROM accidents
		  WHERE accident_id = 2`,
	).Scan(&street, &borough, &severity))
	assert.Equal(t, "5th Ave", street)
	assert.Nil(t, borough)
	assert.Equal(t, int16(0), severity)

	var mismatched int
	require.NoError(t, pool.QueryRow(ctx,
		`SELECT count(*) FROM accidents a
		   JOIN weather w ON w.weather_id = a.weather_id
		  WHERE w.date <> a.crash_date`).Scan(&mismatched))
	assert.Equal(t, 0, mismatched)

	var runStarted time.Time
	var accInserted int
	require.NoError(t, pool.QueryRow(ctx,
		`SELECT started_at, accidents_inserted FROM ingest_runs`,
	).Scan(&runStarted, &accInserted))
	assert.True(t, started.Equal(runStarted))
	assert.Equal(t, 2, accInserted)

	assert.Equal(t, 2.0, testutil.ToFloat64(
		m.RowsWritten.WithLabelValues("accidents")))
	assert.Equal(t, 1.0, testutil.ToFloat64(
		m.RowsDropped.WithLabelValues("accidents", "no_weather")))

	// a second run stores nothing new
	require.NoError(t, iopopulate.New(cfg, op).Populate(ctx))
	assert.Equal(t, ids, queryIDs(t, op))

	runs, err := op.Count(ctx, "ingest_runs")
	require.NoError(t, err)
	assert.Equal(t, int64(2), runs)

	var lastInserted int
	require.NoError(t, pool.QueryRow(ctx,
		`SELECT accidents_inserted FROM ingest_runs
		  ORDER BY finished_at DESC LIMIT 1`).Scan(&lastInserted))
	assert.Equal(t, 0, lastInserted)
}

// TestPopulate_MissingColumns verifies that an accident source without
// required columns stores no accidents.
func TestPopulate_MissingColumns(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	cfg := iotesting.GetTestConfig()
	op := connect(t, cfg)

	dir := t.TempDir()
	var err error
	cfg.Sources.WeatherPath, err = iotesting.WriteCSV(dir, "weather.csv", weatherCSV)
	require.NoError(t, err)
	cfg.Sources.AccidentsPath, err = iotesting.WriteCSV(dir, "accidents.csv",
		"CRASH DATE,CRASH TIME\n01/01/2024,8:15\n")
	require.NoError(t, err)

	err = iopopulate.New(cfg, op).Populate(ctx)
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.SourceMissingColumnsError, gnErr.Code)

	n, err := op.Count(ctx, "accidents")
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func connect(t *testing.T, cfg *config.Config) db.Operator {
	t.Helper()
	ctx := context.Background()

	op := iodb.NewPgxOperator()
	if err := op.Connect(ctx, &cfg.Database); err != nil {
		t.Skipf("PostgreSQL not available: %v", err)
	}
	t.Cleanup(func() { op.Close() })

	require.NoError(t, op.DropAllTables(ctx))
	require.NoError(t, ioschema.NewManager(cfg, op).Create(ctx))
	return op
}

func queryIDs(t *testing.T, op db.Operator) []int64 {
	t.Helper()
	rows, err := op.Pool().Query(context.Background(),
		`SELECT accident_id FROM accidents ORDER BY accident_id`)
	require.NoError(t, err)
	defer rows.Close()

	var res []int64
	for rows.Next() {
		var id int64
		require.NoError(t, rows.Scan(&id))
		res = append(res, id)
	}
	require.NoError(t, rows.Err())
	return res
}
