package iopopulate

import (
	"fmt"

	"github.com/crashwx/crashwx/pkg/errcode"
	"github.com/gnames/gn"
)

// NotConnectedError creates an error for when populate
// operation is attempted without database connection.
func NotConnectedError() error {
	msg := "Populate operation attempted without database connection"

	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("not connected to database"),
	}
}

// WeatherError creates an error for a failed weather insert.
// Nothing from the weather source is stored.
func WeatherError(path string, err error) error {
	msg := `Failed to import weather from <em>%s</em>

<em>Possible causes:</em>
  - Schema does not exist
  - Database connection lost

<em>How to fix:</em>
  1. Run <em>crashwx create</em> or <em>crashwx migrate</em>
  2. Check database logs for details`

	vars := []any{path}

	return &gn.Error{
		Code: errcode.PopulateWeatherError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to import weather: %w", err),
	}
}

// WeatherLookupError creates an error for when stored weather
// dates cannot be read for the join.
func WeatherLookupError(err error) error {
	msg := "Cannot read stored weather dates"

	return &gn.Error{
		Code: errcode.PopulateWeatherLookupError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("failed to read weather lookup: %w", err),
	}
}

// AccidentsError creates an error for a failed accidents insert.
// Nothing from the accidents source is stored.
func AccidentsError(path string, err error) error {
	msg := `Failed to import accidents from <em>%s</em>

<em>How to fix:</em>
  1. Check database logs for details
  2. Rerun <em>crashwx populate</em>, stored rows are skipped`

	vars := []any{path}

	return &gn.Error{
		Code: errcode.PopulateAccidentsError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to import accidents: %w", err),
	}
}

// IngestRunError creates an error for when the run record
// cannot be stored.
func IngestRunError(err error) error {
	msg := "Data is imported, but the ingest run was not recorded"

	return &gn.Error{
		Code: errcode.PopulateIngestRunError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("failed to record ingest run: %w", err),
	}
}

// CancelledError creates an error for when populate
// operation is cancelled.
func CancelledError(err error) error {
	msg := "Population operation was cancelled"

	return &gn.Error{
		Code: errcode.PopulateCancelledError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("population cancelled: %w", err),
	}
}
