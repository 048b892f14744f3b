package database

import (
	"fmt"

	"gorm.io/gorm"
)

// EnsureTable creates the table for model when it does not exist yet.
// Existing tables are left untouched.
func EnsureTable(db *gorm.DB, model interface{}) error {
	migrator := db.Migrator()

	if migrator.HasTable(model) {
		return nil
	}

	if err := migrator.CreateTable(model); err != nil {
		return fmt.Errorf("create table for %T: %w", model, err)
	}
	return nil
}

// EnsureColumn adds a column introduced after the table's first definition.
// A column that already exists, including one added concurrently by another
// process, is not an error.
func EnsureColumn(db *gorm.DB, model interface{}, field string) error {
	migrator := db.Migrator()

	if migrator.HasColumn(model, field) {
		return nil
	}

	if err := migrator.AddColumn(model, field); err != nil && !IsDuplicateColumn(err) {
		return fmt.Errorf("add column %s to %T: %w", field, model, err)
	}
	return nil
}
