package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	WriteConfigError
	ReadFileError

	// Logging errors
	CreateLogFileError

	// Source errors
	SourceOpenError
	SourceReadError
	SourceEmptyError
	SourceMissingColumnsError

	// Database errors
	DBConnectionError
	DBTableCheckError
	DBEmptyDatabaseError
	DBNotConnectedError
	DBTableExistsCheckError
	DBQueryTablesError
	DBScanTableError
	DBDropTableError
	DBCountError

	// Schema errors
	SchemaGORMConnectionError
	SchemaCreateError
	SchemaMigrateError
	SchemaVerifyError

	// Populate errors
	PopulateWeatherError
	PopulateWeatherLookupError
	PopulateAccidentsError
	PopulateIngestRunError
	PopulateCancelledError

	// Export errors
	ExportQueryError
	ExportSQLiteError

	// Metrics errors
	MetricsWriteError
)
