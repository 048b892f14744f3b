package client

import (
	"gorm.io/gorm"

	"github.com/infinitivesi/lab-8/pkg/database"
)

func RunSchemaMigration(db *gorm.DB) error {
	if err := database.EnsureTable(db, &Client{}); err != nil {
		return err
	}

	return database.EnsureColumn(db, &Client{}, "HasCourses")
}
