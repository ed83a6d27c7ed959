package iopopulate

import (
	"strings"
	"testing"
	"time"

	"github.com/crashwx/crashwx/pkg/normalize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValuesClause(t *testing.T) {
	tests := []struct {
		msg        string
		rows, cols int
		want       string
	}{
		{"one row", 1, 3, "($1, $2, $3)"},
		{"two rows", 2, 2, "($1, $2), ($3, $4)"},
		{"no rows", 0, 2, ""},
	}

	for _, v := range tests {
		assert.Equal(t, v.want, valuesClause(v.rows, v.cols), v.msg)
	}
}

func TestBatchSize(t *testing.T) {
	tests := []struct {
		msg              string
		configured, cols int
		want             int
	}{
		{"configured fits", 5000, 13, 5000},
		{"capped by parameter limit", 10000, 13, 5041},
		{"weather cap", 100000, 6, 10922},
		{"zero means limit", 0, 13, 5041},
	}

	for _, v := range tests {
		got := batchSize(v.configured, v.cols)
		assert.Equal(t, v.want, got, v.msg)
		assert.LessOrEqual(t, got*v.cols, maxParams, v.msg)
	}
}

func TestInsertSQL(t *testing.T) {
	q := weatherTable.insertSQL(2)

	assert.True(t, strings.HasPrefix(q,
		`INSERT INTO "weather" (date, weather_description, precipitation, `+
			`precipitation_type, temp_max, temp_min) VALUES ($1,`))
	assert.Contains(t, q, "($7, $8, $9, $10, $11, $12)")
	assert.True(t, strings.HasSuffix(q, "ON CONFLICT (date) DO NOTHING"))

	q = accidentsTable.insertSQL(1)
	assert.True(t, strings.HasSuffix(q, "ON CONFLICT (accident_id) DO NOTHING"))
	assert.Contains(t, q, "$13)")
}

func TestRowValues(t *testing.T) {
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	prcp := 0.3
	borough := "BROOKLYN"

	w := weatherValues(normalize.WeatherRow{
		Date:              day,
		Description:       "Rain",
		Precipitation:     &prcp,
		PrecipitationType: normalize.Unknown,
	})
	require.Len(t, w, len(weatherTable.columns))
	assert.Equal(t, day, w[0])
	assert.Equal(t, &prcp, w[2])
	assert.Nil(t, w[4].(*float64))

	a := accidentValues(normalize.AccidentRow{
		ID:            7,
		CrashDatetime: day.Add(8*time.Hour + 15*time.Minute),
		CrashDate:     day,
		Borough:       &borough,
		StreetName:    "BROADWAY",
		StreetType:    normalize.StreetTypeOn,
		NumDeaths:     1,
		Severity:      1,
		WeatherID:     3,
	})
	require.Len(t, a, len(accidentsTable.columns))
	assert.Equal(t, int64(7), a[0])
	assert.Equal(t, int16(1), a[11])
	assert.Equal(t, int64(3), a[12])
	assert.Nil(t, a[4].(*string))
}
