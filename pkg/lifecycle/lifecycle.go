// Package lifecycle declares the stages of the crashwx database lifecycle:
// schema management, population and export. Configuration is given to the
// implementations when they are constructed.
package lifecycle

import (
	"context"
)

// SchemaManager manages the database schema with GORM AutoMigrate.
// Both operations are idempotent.
type SchemaManager interface {
	// Create creates the weather, accidents and ingest_runs tables
	// with their keys, indices and constraints.
	Create(ctx context.Context) error

	// Migrate updates the schema to the latest version, keeping data.
	Migrate(ctx context.Context) error
}

// Populator loads the source files into the database.
//
// Population has two phases. Weather rows are normalized and committed
// first. Accidents are normalized next and joined against the committed
// weather rows. Each table is written in a single transaction.
type Populator interface {
	Populate(ctx context.Context) error
}

// Exporter materializes the datasets read by the downstream plotting and
// training tools.
type Exporter interface {
	// Export writes the datasets into a SQLite file at path.
	Export(ctx context.Context, path string) error
}
