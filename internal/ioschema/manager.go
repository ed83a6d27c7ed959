// Package ioschema implements SchemaManager interface for
// database schema management. This is an impure I/O package
// that wraps GORM AutoMigrate functionality.
package ioschema

import (
	"context"
	"log/slog"

	"github.com/crashwx/crashwx/pkg/config"
	"github.com/crashwx/crashwx/pkg/db"
	"github.com/crashwx/crashwx/pkg/lifecycle"
	"github.com/crashwx/crashwx/pkg/schema"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// manager implements the lifecycle.SchemaManager interface
// using GORM AutoMigrate.
type manager struct {
	cfg      *config.Config
	operator db.Operator
}

// NewManager creates a new SchemaManager.
func NewManager(
	cfg *config.Config,
	op db.Operator,
) lifecycle.SchemaManager {
	return &manager{cfg: cfg, operator: op}
}

// Create creates the initial database schema using
// GORM AutoMigrate and checks that every table is in place.
func (m *manager) Create(ctx context.Context) error {
	gormDB, err := m.open(ctx)
	if err != nil {
		return err
	}

	if err := schema.Migrate(gormDB); err != nil {
		return CreateSchemaError(err)
	}

	return m.verifyTables(ctx)
}

// Migrate updates the database schema to the latest version
// using GORM AutoMigrate.
func (m *manager) Migrate(ctx context.Context) error {
	gormDB, err := m.open(ctx)
	if err != nil {
		return err
	}

	if err := schema.Migrate(gormDB); err != nil {
		return MigrateSchemaError(err)
	}

	return nil
}

// open wraps the operator's pool into a GORM session.
func (m *manager) open(ctx context.Context) (*gorm.DB, error) {
	pool := m.operator.Pool()
	if pool == nil {
		return nil, NotConnectedError()
	}

	db := stdlib.OpenDBFromPool(pool)

	gormDB, err := gorm.Open(
		postgres.New(postgres.Config{Conn: db}),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)},
	)
	if err != nil {
		return nil, GORMConnectionError(err)
	}

	return gormDB.WithContext(ctx), nil
}

func (m *manager) verifyTables(ctx context.Context) error {
	for _, table := range schema.TableNames() {
		exists, err := m.operator.TableExists(ctx, table)
		if err != nil {
			return err
		}
		if !exists {
			return MissingTableError(table)
		}
	}
	slog.Info("Schema is in place",
		"target", m.cfg.Database.Redacted(),
		"tables", schema.TableNames(),
	)
	return nil
}
