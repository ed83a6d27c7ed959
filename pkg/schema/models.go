// Package schema provides the database models of crashwx.
//
// Models carry GORM tags and are used only for schema creation and
// migration. Bulk reads and writes go through pgx with plain SQL, using
// the column names declared here.
package schema

import (
	"time"

	"github.com/google/uuid"
)

// Weather is one day of weather. There is at most one row per date.
type Weather struct {
	// WeatherID is the surrogate key referenced by accidents.
	WeatherID int64 `gorm:"column:weather_id;primaryKey;autoIncrement"`

	// Date is the calendar date of the observation.
	Date time.Time `gorm:"column:date;type:date;not null;uniqueIndex"`

	// WeatherDescription is a free-text summary ("Rain, Overcast").
	WeatherDescription string `gorm:"column:weather_description;type:text;not null;default:Unknown"`

	// Precipitation is the daily precipitation amount.
	Precipitation *float64 `gorm:"column:precipitation"`

	// PrecipitationType is the kind of precipitation ("rain", "snow").
	PrecipitationType string `gorm:"column:precipitation_type;type:text;not null;default:Unknown"`

	// TempMax and TempMin are the daily temperature extremes.
	TempMax *float64 `gorm:"column:temp_max"`
	TempMin *float64 `gorm:"column:temp_min"`
}

// TableName returns the table name of Weather.
func (Weather) TableName() string {
	return "weather"
}

// Accident is one collision joined to the weather of its day.
type Accident struct {
	// AccidentID is the collision identifier given by the source.
	AccidentID int64 `gorm:"column:accident_id;primaryKey;autoIncrement:false"`

	CrashDatetime time.Time `gorm:"column:crash_datetime;type:timestamp;not null"`

	// CrashDate is the join key to Weather.Date.
	CrashDate time.Time `gorm:"column:crash_date;type:date;not null;index"`

	Borough *string `gorm:"column:borough;type:text;index"`
	ZipCode *string `gorm:"column:zip_code;type:text"`

	Latitude  float64 `gorm:"column:latitude;not null"`
	Longitude float64 `gorm:"column:longitude;not null"`

	StreetName string `gorm:"column:street_name;type:text;not null"`
	StreetType string `gorm:"column:street_type;type:text;not null"`

	NumInjuries int `gorm:"column:num_injuries;not null;default:0;check:chk_accidents_num_injuries,num_injuries >= 0"`
	NumDeaths   int `gorm:"column:num_deaths;not null;default:0;check:chk_accidents_num_deaths,num_deaths >= 0"`

	// Severity is 1 for a death or three and more injuries, otherwise 0.
	Severity int16 `gorm:"column:severity;type:smallint;not null;check:chk_accidents_severity,severity IN (0,1)"`

	WeatherID int64   `gorm:"column:weather_id;not null;index"`
	Weather   Weather `gorm:"foreignKey:WeatherID;references:WeatherID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT"`
}

// TableName returns the table name of Accident.
func (Accident) TableName() string {
	return "accidents"
}

// IngestRun records one populate run and its row counts.
type IngestRun struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	StartedAt  time.Time `gorm:"column:started_at;not null"`
	FinishedAt time.Time `gorm:"column:finished_at;not null"`

	WeatherPath   string `gorm:"column:weather_path;type:text;not null"`
	AccidentsPath string `gorm:"column:accidents_path;type:text;not null"`

	WeatherRead       int `gorm:"column:weather_read;not null;default:0"`
	WeatherInserted   int `gorm:"column:weather_inserted;not null;default:0"`
	AccidentsRead     int `gorm:"column:accidents_read;not null;default:0"`
	AccidentsInserted int `gorm:"column:accidents_inserted;not null;default:0"`
}

// TableName returns the table name of IngestRun.
func (IngestRun) TableName() string {
	return "ingest_runs"
}
