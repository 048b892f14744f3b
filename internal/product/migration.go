package product

import (
	"gorm.io/gorm"

	"github.com/infinitivesi/lab-8/pkg/database"
)

func RunSchemaMigration(db *gorm.DB) error {
	if err := database.EnsureTable(db, &Product{}); err != nil {
		return err
	}

	return database.EnsureColumn(db, &Product{}, "Description")
}
