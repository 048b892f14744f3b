// Package schema brings a possibly pre-existing database up to the current
// table layout. It is safe to run on every start.
package schema

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/infinitivesi/lab-8/internal/client"
	"github.com/infinitivesi/lab-8/internal/feedback"
	"github.com/infinitivesi/lab-8/internal/order"
	"github.com/infinitivesi/lab-8/internal/product"
)

type migration struct {
	name string
	run  func(*gorm.DB) error
}

// order_items references orders, so orders come first.
var migrations = []migration{
	{"products", product.RunSchemaMigration},
	{"clients", client.RunSchemaMigration},
	{"orders", order.RunSchemaMigration},
	{"feedback", feedback.RunSchemaMigration},
}

// Ensure creates missing tables and adds columns introduced after a table's
// first definition. Existing rows are preserved.
func Ensure(db *gorm.DB) error {
	for _, m := range migrations {
		if err := m.run(db); err != nil {
			return fmt.Errorf("migrate %s: %w", m.name, err)
		}
	}
	return nil
}
