// Package normalize turns raw collision and weather tables into canonical
// rows.
//
// Normalization is pure: it never touches storage. Row-level problems drop
// the row and are counted in the returned stats. The only fatal condition
// is an accident source without the required columns.
//
// The accident join is split out into JoinWeather because it must run
// against weather rows that are already persisted.
package normalize
