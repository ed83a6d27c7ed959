package iopopulate

import (
	"context"

	"github.com/crashwx/crashwx/pkg/normalize"
	"github.com/crashwx/crashwx/pkg/schema"
)

var accidentsTable = table{
	name: schema.Accident{}.TableName(),
	columns: []string{
		"accident_id",
		"crash_datetime",
		"crash_date",
		"borough",
		"zip_code",
		"latitude",
		"longitude",
		"street_name",
		"street_type",
		"num_injuries",
		"num_deaths",
		"severity",
		"weather_id",
	},
	conflict: "accident_id",
}

func accidentValues(r normalize.AccidentRow) []any {
	return []any{
		r.ID,
		r.CrashDatetime,
		r.CrashDate,
		r.Borough,
		r.ZipCode,
		r.Latitude,
		r.Longitude,
		r.StreetName,
		r.StreetType,
		r.NumInjuries,
		r.NumDeaths,
		int16(r.Severity),
		r.WeatherID,
	}
}

// insertAccidents appends joined accidents. Every row must carry a
// weather id.
func (p *populator) insertAccidents(
	ctx context.Context,
	rows []normalize.AccidentRow,
) (int, error) {
	values := make([][]any, len(rows))
	for i := range rows {
		values[i] = accidentValues(rows[i])
	}
	return p.writeTable(ctx, accidentsTable, values)
}
