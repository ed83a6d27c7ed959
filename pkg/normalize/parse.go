package normalize

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/gnames/gnlib"
)

// dateLayouts are tried in order. Layouts with a time part are accepted and
// truncated to the calendar date.
var dateLayouts = []string{
	time.DateOnly,
	"01/02/2006",
	"1/2/2006",
	"2006/01/02",
	"20060102",
	"2006-01-02T15:04:05.000",
	"2006-01-02T15:04:05",
	time.DateTime,
	"01/02/2006 15:04:05",
	"01/02/2006 03:04:05 PM",
	"1/2/2006 3:04:05 PM",
	time.RFC3339,
}

// timestampLayouts parse "<YYYY-MM-DD> <time>" built from a crash date and
// the trimmed crash time.
var timestampLayouts = []string{
	"2006-01-02 15:04",
	time.DateTime,
	"2006-01-02 15:04:05.000",
	"2006-01-02 3:04 PM",
	"2006-01-02 3:04:05 PM",
	"2006-01-02 3:04PM",
}

// ParseDate parses a calendar date in any of the accepted layouts. The
// result is midnight UTC.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, l := range dateLayouts {
		t, err := time.Parse(l, s)
		if err == nil {
			return truncateDate(t), true
		}
	}
	return time.Time{}, false
}

// DateKey is the canonical text form of a calendar date, used as the join
// key between accidents and weather.
func DateKey(t time.Time) string {
	return t.Format(time.DateOnly)
}

func truncateDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// parseTimestamp reparses a date and a wall-clock string as one timestamp.
func parseTimestamp(date time.Time, clock string) (time.Time, bool) {
	clock = strings.TrimSpace(clock)
	if clock == "" {
		return time.Time{}, false
	}
	s := DateKey(date) + " " + clock
	for _, l := range timestampLayouts {
		t, err := time.Parse(l, s)
		if err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// parseFloat returns false for blanks, non-numeric text, NaN and infinities.
func parseFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// parseNullableFloat is parseFloat with failures mapped to nil.
func parseNullableFloat(s string) *float64 {
	v, ok := parseFloat(s)
	if !ok {
		return nil
	}
	return &v
}

// maxCount bounds person counts; larger values are treated as corrupt.
const maxCount = math.MaxInt32

// parseCount converts a person count to a non-negative integer. Missing,
// invalid, negative and out-of-range values count as 0.
func parseCount(s string) int {
	v, ok := parseFloat(s)
	if !ok || v < 0 || v > maxCount {
		return 0
	}
	return int(v)
}

// parseID accepts integers and integral floats ("123.0").
func parseID(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if id, err := strconv.ParseInt(s, 10, 64); err == nil {
		return id, true
	}
	v, ok := parseFloat(s)
	if !ok || v != math.Trunc(v) || math.Abs(v) > 1<<53 {
		return 0, false
	}
	return int64(v), true
}

// cleanText trims s and repairs invalid UTF-8.
func cleanText(s string) string {
	return gnlib.FixUtf8(strings.TrimSpace(s))
}

// textOr returns the cleaned value or def when it is blank.
func textOr(s, def string) string {
	s = cleanText(s)
	if s == "" {
		return def
	}
	return s
}

// nullableText returns nil for blank values.
func nullableText(s string) *string {
	s = cleanText(s)
	if s == "" {
		return nil
	}
	return &s
}
