package order

import (
	"gorm.io/gorm"

	"github.com/infinitivesi/lab-8/pkg/database"
)

func RunSchemaMigration(db *gorm.DB) error {
	if err := database.EnsureTable(db, &Order{}); err != nil {
		return err
	}

	if err := database.EnsureColumn(db, &Order{}, "Phone"); err != nil {
		return err
	}

	return database.EnsureTable(db, &OrderItem{})
}
