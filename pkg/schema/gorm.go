package schema

import (
	"gorm.io/gorm"
)

// AllModels returns all schema models for GORM AutoMigrate.
// Weather goes first because accidents reference it.
func AllModels() []any {
	return []any{
		&Weather{},
		&Accident{},
		&IngestRun{},
	}
}

// TableNames returns table names in creation order.
func TableNames() []string {
	return []string{
		Weather{}.TableName(),
		Accident{}.TableName(),
		IngestRun{}.TableName(),
	}
}

// Migrate runs GORM AutoMigrate to create or update schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(AllModels()...)
}
