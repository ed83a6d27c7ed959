package normalize

import (
	"log/slog"
	"time"

	"github.com/crashwx/crashwx/pkg/rawtable"
	"github.com/crashwx/crashwx/pkg/resolve"
)

// Unknown replaces missing text values.
const Unknown = "Unknown"

// Candidate column names of the weather source, in priority order.
var (
	WeatherDateColumns       = []string{"DATE", "date", "datetime"}
	WeatherTempMaxColumns    = []string{"TMAX", "tmax", "temp_max", "MAX_TEMPERATURE", "max_temp"}
	WeatherTempMinColumns    = []string{"TMIN", "tmin", "temp_min", "MIN_TEMPERATURE", "min_temp"}
	WeatherPrecipColumns     = []string{"PRCP", "prcp", "precip", "precipitation", "RAIN", "rain"}
	WeatherDescColumns       = []string{"conditions", "weather_description", "description"}
	WeatherPrecipTypeColumns = []string{"preciptype", "precipitation_type", "precip_type"}
)

// WeatherRow is the canonical form of one day of weather.
type WeatherRow struct {
	Date              time.Time
	Description       string
	Precipitation     *float64
	PrecipitationType string
	TempMax           *float64
	TempMin           *float64
}

// WeatherStats summarizes one weather normalization.
type WeatherStats struct {
	// Read is the number of source rows.
	Read int
	// BadDate counts rows dropped for an unparseable date.
	BadDate int
	// Duplicates counts rows dropped because their date was already seen.
	Duplicates int
	// Kept is the number of rows returned.
	Kept int

	// DateColumn is the source column used for dates.
	DateColumn string
	// DateFallback is true when no known date column existed and the first
	// column was used instead.
	DateFallback bool
	// Absent lists optional logical fields with no source column.
	Absent []string
}

var weatherFields = []resolve.Field{
	{Name: "temp_max", Candidates: WeatherTempMaxColumns},
	{Name: "temp_min", Candidates: WeatherTempMinColumns},
	{Name: "precipitation", Candidates: WeatherPrecipColumns},
	{Name: "weather_description", Candidates: WeatherDescColumns, Default: Unknown},
	{Name: "precipitation_type", Candidates: WeatherPrecipTypeColumns, Default: Unknown},
}

// Weather converts a raw weather table into one row per calendar date.
//
// Malformed input never fails: rows with bad dates are dropped, missing
// numeric columns become nulls and missing text columns become "Unknown".
// A table without any recognized date column uses its first column for
// dates and logs a warning.
func Weather(tbl *rawtable.Table) ([]WeatherRow, WeatherStats) {
	stats := WeatherStats{Read: tbl.Len()}
	if len(tbl.Columns) == 0 {
		return nil, stats
	}

	dateCol, ok := resolve.Resolve(tbl.Columns, WeatherDateColumns)
	if !ok {
		dateCol = tbl.Columns[0]
		stats.DateFallback = true
		slog.Warn("No known date column in weather source, using first column",
			"column", dateCol, "candidates", WeatherDateColumns)
	}
	stats.DateColumn = dateCol

	// all fields are optional, so there is no error
	res, _ := resolve.ResolveFields(tbl.Columns, weatherFields)
	stats.Absent = res.Absent

	idx := func(field string) int {
		col, ok := res.Column(field)
		if !ok {
			return -1
		}
		return tbl.Index(col)
	}
	dateIdx := tbl.Index(dateCol)
	tmaxIdx := idx("temp_max")
	tminIdx := idx("temp_min")
	prcpIdx := idx("precipitation")
	descIdx := idx("weather_description")
	typeIdx := idx("precipitation_type")

	seen := make(map[string]struct{}, tbl.Len())
	rows := make([]WeatherRow, 0, tbl.Len())
	for i := range tbl.Rows {
		date, ok := ParseDate(tbl.Cell(i, dateIdx))
		if !ok {
			stats.BadDate++
			continue
		}
		key := DateKey(date)
		if _, dup := seen[key]; dup {
			stats.Duplicates++
			continue
		}
		seen[key] = struct{}{}

		rows = append(rows, WeatherRow{
			Date:              date,
			Description:       textOr(tbl.Cell(i, descIdx), Unknown),
			Precipitation:     parseNullableFloat(tbl.Cell(i, prcpIdx)),
			PrecipitationType: textOr(tbl.Cell(i, typeIdx), Unknown),
			TempMax:           parseNullableFloat(tbl.Cell(i, tmaxIdx)),
			TempMin:           parseNullableFloat(tbl.Cell(i, tminIdx)),
		})
	}
	stats.Kept = len(rows)
	return rows, stats
}
