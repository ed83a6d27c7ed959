// Package crashwx loads traffic collisions and daily weather into
// PostgreSQL, joined by calendar date.
package crashwx

var (
	// Version of crashwx, set by ldflags during release builds.
	Version = "v0.1.0"

	// Build timestamp, set by ldflags during release builds.
	Build = "n/a"
)
