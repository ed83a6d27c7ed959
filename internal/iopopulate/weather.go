package iopopulate

import (
	"context"
	"fmt"
	"time"

	"github.com/crashwx/crashwx/pkg/normalize"
	"github.com/crashwx/crashwx/pkg/schema"
)

var weatherTable = table{
	name: schema.Weather{}.TableName(),
	columns: []string{
		"date",
		"weather_description",
		"precipitation",
		"precipitation_type",
		"temp_max",
		"temp_min",
	},
	conflict: "date",
}

func weatherValues(r normalize.WeatherRow) []any {
	return []any{
		r.Date,
		r.Description,
		r.Precipitation,
		r.PrecipitationType,
		r.TempMax,
		r.TempMin,
	}
}

// insertWeather appends weather days. Dates that are already stored keep
// their original row.
func (p *populator) insertWeather(
	ctx context.Context,
	rows []normalize.WeatherRow,
) (int, error) {
	values := make([][]any, len(rows))
	for i := range rows {
		values[i] = weatherValues(rows[i])
	}
	return p.writeTable(ctx, weatherTable, values)
}

// weatherLookup reads the committed date to weather_id mapping.
func (p *populator) weatherLookup(
	ctx context.Context,
) (normalize.WeatherLookup, error) {
	q := `SELECT weather_id, date FROM weather`
	rows, err := p.operator.Pool().Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to query weather: %w", err)
	}
	defer rows.Close()

	res := make(normalize.WeatherLookup)
	for rows.Next() {
		var id int64
		var date time.Time
		if err = rows.Scan(&id, &date); err != nil {
			return nil, fmt.Errorf("failed to scan weather row: %w", err)
		}
		res[normalize.DateKey(date)] = id
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating weather rows: %w", err)
	}
	return res, nil
}
