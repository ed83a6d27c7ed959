// Package dataset defines the two row shapes read by the downstream
// plotting and training tools and the time features derived for
// training.
package dataset

import (
	"time"
)

// Unknown replaces missing borough and zip code values in training rows.
const Unknown = "Unknown"

// PlotRow is one accident as read by the plotting tool. Only accidents
// with a borough are plotted.
type PlotRow struct {
	CrashDatetime time.Time
	Borough       string
	Severity      int
}

// TrainingRow is one labeled accident with its derived features.
type TrainingRow struct {
	AccidentID    int64
	CrashDatetime time.Time
	Borough       string
	ZipCode       string
	Latitude      float64
	Longitude     float64
	NumInjuries   int
	NumDeaths     int
	Severity      int

	Features
}

// Features are derived from the crash datetime.
type Features struct {
	Hour int
	// DayOfWeek runs from Monday=0 to Sunday=6.
	DayOfWeek int
	Month     int
	IsWeekend bool
}

// TimeFeatures derives training features from t.
func TimeFeatures(t time.Time) Features {
	wd := t.Weekday()
	return Features{
		Hour:      t.Hour(),
		DayOfWeek: (int(wd) + 6) % 7,
		Month:     int(t.Month()),
		IsWeekend: wd == time.Saturday || wd == time.Sunday,
	}
}

// NewTrainingRow builds a training row, replacing missing borough and zip
// code with Unknown.
func NewTrainingRow(
	id int64,
	crashAt time.Time,
	borough, zip *string,
	lat, lon float64,
	injuries, deaths, severity int,
) TrainingRow {
	return TrainingRow{
		AccidentID:    id,
		CrashDatetime: crashAt,
		Borough:       orUnknown(borough),
		ZipCode:       orUnknown(zip),
		Latitude:      lat,
		Longitude:     lon,
		NumInjuries:   injuries,
		NumDeaths:     deaths,
		Severity:      severity,
		Features:      TimeFeatures(crashAt),
	}
}

func orUnknown(s *string) string {
	if s == nil || *s == "" {
		return Unknown
	}
	return *s
}
