package iodb

import (
	"fmt"

	"github.com/crashwx/crashwx/pkg/config"
	"github.com/crashwx/crashwx/pkg/errcode"
	"github.com/gnames/gn"
)

// ConnectionError is returned when database connection fails.
func ConnectionError(target string, err error) error {
	msg := `Could not connect to PostgreSQL database

<em>Target:</em> %s

<em>Possible causes:</em>
  - PostgreSQL is not running
  - Database does not exist yet
  - Database configuration is incorrect

<em>How to fix:</em>
  1. Check if PostgreSQL is running: <em>pg_isready</em>
  2. Create the database: <em>createdb traffic_db</em>
  3. Check your configuration file: <em>%s</em>`

	return &gn.Error{
		Code: errcode.DBConnectionError,
		Msg:  msg,
		Vars: []any{target, config.ConfigFilePath("~")},
		Err:  fmt.Errorf("failed to connect to %s: %w", target, err),
	}
}

// NotConnectedError is returned when an operation runs before Connect.
func NotConnectedError() error {
	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  "Database operation attempted without connection",
		Err:  fmt.Errorf("not connected to database"),
	}
}

// TableCheckError is returned when checking for tables fails.
func TableCheckError(err error) error {
	return &gn.Error{
		Code: errcode.DBTableCheckError,
		Msg:  "Could not verify database state",
		Err:  fmt.Errorf("failed to check tables: %w", err),
	}
}

// TableExistsCheckError is returned when a table existence check fails.
func TableExistsCheckError(table string, err error) error {
	return &gn.Error{
		Code: errcode.DBTableExistsCheckError,
		Msg:  "Could not check if table <em>%s</em> exists",
		Vars: []any{table},
		Err:  fmt.Errorf("failed to check table %s: %w", table, err),
	}
}

// QueryTablesError is returned when the table list cannot be read.
func QueryTablesError(err error) error {
	return &gn.Error{
		Code: errcode.DBQueryTablesError,
		Msg:  "Could not list database tables",
		Err:  fmt.Errorf("failed to query tables: %w", err),
	}
}

// ScanTableError is returned when a table name cannot be scanned.
func ScanTableError(err error) error {
	return &gn.Error{
		Code: errcode.DBScanTableError,
		Msg:  "Could not read database table names",
		Err:  fmt.Errorf("failed to scan table name: %w", err),
	}
}

// DropTableError is returned when a table cannot be dropped.
func DropTableError(table string, err error) error {
	return &gn.Error{
		Code: errcode.DBDropTableError,
		Msg:  "Could not drop table <em>%s</em>",
		Vars: []any{table},
		Err:  fmt.Errorf("failed to drop table %s: %w", table, err),
	}
}

// CountError is returned when rows of a table cannot be counted.
func CountError(table string, err error) error {
	return &gn.Error{
		Code: errcode.DBCountError,
		Msg:  "Could not count rows of table <em>%s</em>",
		Vars: []any{table},
		Err:  fmt.Errorf("failed to count %s: %w", table, err),
	}
}
