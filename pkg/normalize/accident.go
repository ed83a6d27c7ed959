package normalize

import (
	"strings"
	"time"

	"github.com/crashwx/crashwx/pkg/rawtable"
	"github.com/crashwx/crashwx/pkg/resolve"
)

// StreetTypeOn is the street type of every accident. It stays ON_STREET
// even when the street name came from the off-street column.
const StreetTypeOn = "ON_STREET"

// Canonical names of the required accident columns.
const (
	ColCollisionID = "COLLISION_ID"
	ColCrashDate   = "CRASH_DATE"
	ColCrashTime   = "CRASH_TIME"
	ColBorough     = "BOROUGH"
	ColZipCode     = "ZIP_CODE"
	ColLatitude    = "LATITUDE"
	ColLongitude   = "LONGITUDE"
	ColOnStreet    = "ON_STREET_NAME"
	ColOffStreet   = "OFF_STREET_NAME"
	ColInjured     = "NUMBER_OF_PERSONS_INJURED"
	ColKilled      = "NUMBER_OF_PERSONS_KILLED"
)

// AccidentColumns is the required column set of the accident source, after
// column name canonicalization.
var AccidentColumns = []string{
	ColCollisionID, ColCrashDate, ColCrashTime, ColBorough, ColZipCode,
	ColLatitude, ColLongitude, ColOnStreet, ColOffStreet,
	ColInjured, ColKilled,
}

// Reasons for dropping an accident row.
const (
	DropBadDate     = "bad_date"
	DropOutOfRange  = "out_of_range"
	DropBadDatetime = "bad_datetime"
	DropBadCoords   = "bad_coordinates"
	DropBadID       = "bad_id"
	DropDuplicate   = "duplicate"
	DropSampled     = "sampled"
	DropUnjoined    = "no_weather"
)

// AccidentRow is the canonical form of one collision.
type AccidentRow struct {
	ID            int64
	CrashDatetime time.Time
	CrashDate     time.Time
	Borough       *string
	ZipCode       *string
	Latitude      float64
	Longitude     float64
	StreetName    string
	StreetType    string
	NumInjuries   int
	NumDeaths     int
	Severity      int

	// WeatherID is zero until JoinWeather attaches it.
	WeatherID int64
}

// AccidentOptions restrict which accidents are kept. Zero values mean
// "no restriction".
type AccidentOptions struct {
	// YearMin and YearMax are inclusive bounds on the crash year.
	YearMin int
	YearMax int

	// MaxRows caps the result with a seeded uniform sample.
	MaxRows int

	// Seed drives the sampling.
	Seed int64
}

// AccidentStats summarizes one accident normalization.
type AccidentStats struct {
	// Read is the number of source rows.
	Read int
	// Dropped counts discarded rows by reason.
	Dropped map[string]int
	// Kept is the number of rows returned.
	Kept int
}

// DroppedTotal returns the number of discarded rows.
func (s AccidentStats) DroppedTotal() int {
	var res int
	for _, v := range s.Dropped {
		res += v
	}
	return res
}

// Severity returns 1 for a serious collision (a death or at least three
// injuries) and 0 otherwise.
func Severity(injuries, deaths int) int {
	if deaths > 0 || injuries >= 3 {
		return 1
	}
	return 0
}

// StreetName picks the on-street name, then the off-street name, then
// "Unknown".
func StreetName(on, off string) string {
	if s := cleanText(on); s != "" {
		return s
	}
	if s := cleanText(off); s != "" {
		return s
	}
	return Unknown
}

// CanonicalColumn upper-cases a column name and replaces spaces with
// underscores.
func CanonicalColumn(name string) string {
	return strings.ReplaceAll(strings.ToUpper(name), " ", "_")
}

// Accidents converts a raw accident table into canonical rows, ready to be
// joined with weather.
//
// A missing required column is fatal and nothing is processed. Any other
// malformation drops the row and is counted in the stats.
func Accidents(
	tbl *rawtable.Table,
	opts AccidentOptions,
) ([]AccidentRow, AccidentStats, error) {
	stats := AccidentStats{Read: tbl.Len(), Dropped: make(map[string]int)}

	tbl = tbl.Rename(CanonicalColumn)
	fields := make([]resolve.Field, len(AccidentColumns))
	for i, c := range AccidentColumns {
		fields[i] = resolve.Field{Name: c, Required: true}
	}
	if _, err := resolve.ResolveFields(tbl.Columns, fields); err != nil {
		return nil, stats, MissingColumnsError(err)
	}

	p := newAccidentPipeline(tbl, opts)
	rows := make([]AccidentRow, 0, tbl.Len())
	for i := range tbl.Rows {
		row, reason := p.run(i)
		if reason != "" {
			stats.Dropped[reason]++
			continue
		}
		rows = append(rows, row)
	}

	rows, dups := dedupAccidents(rows)
	stats.Dropped[DropDuplicate] += dups

	var sampled int
	rows, sampled = Sample(rows, opts.MaxRows, opts.Seed)
	stats.Dropped[DropSampled] += sampled

	stats.Kept = len(rows)
	return rows, stats, nil
}

func dedupAccidents(rows []AccidentRow) ([]AccidentRow, int) {
	seen := make(map[int64]struct{}, len(rows))
	res := rows[:0]
	var dups int
	for _, r := range rows {
		if _, ok := seen[r.ID]; ok {
			dups++
			continue
		}
		seen[r.ID] = struct{}{}
		res = append(res, r)
	}
	return res, dups
}
