package order

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/infinitivesi/lab-8/pkg/database"
	"github.com/infinitivesi/lab-8/pkg/database/testutil"
)

func TestOrderStorage_ItemInsertFailureRollsBack(t *testing.T) {
	db, mock := testutil.SetupMockPostgres(t)
	storage := NewStorage(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "orders"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectQuery(`INSERT INTO "order_items"`).
		WillReturnError(&pgconn.PgError{Code: "55P03", Message: "could not obtain lock"})
	mock.ExpectRollback()

	id, err := storage.PlaceOrder("x@example.com", "addr", Cart{"a": item(1, 2, 3)}, "555")
	require.Error(t, err)
	assert.Zero(t, id)

	assert.True(t, database.IsStorageError(err))
	assert.True(t, database.IsRetryable(err))
	assert.False(t, errors.Is(err, ErrInvalidCart))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderStorage_DeleteFailureRollsBack(t *testing.T) {
	db, mock := testutil.SetupMockPostgres(t)
	storage := NewStorage(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "order_items"`).WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM "orders"`).WillReturnError(errors.New("connection reset by peer"))
	mock.ExpectRollback()

	_, err := storage.Delete(3)
	require.Error(t, err)
	assert.True(t, database.IsStorageError(err))
	assert.False(t, database.IsRetryable(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderStorage_DetailsReadInOneStatement(t *testing.T) {
	db, mock := testutil.SetupMockPostgres(t)
	storage := NewStorage(db)

	columns := []string{"id", "email", "address", "phone", "total_price", "status", "date",
		"item_id", "product_id", "quantity", "product_name", "product_price"}
	mock.ExpectQuery(`FROM orders o LEFT JOIN order_items oi ON oi.order_id = o.id LEFT JOIN products p ON p.id = oi.product_id WHERE o.id = \$1`).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(7, "x@example.com", "addr", "555", 16.0, "new", "2024-03-01 12:00:00", 1, 3, 1, "Lamp", 4.0).
			AddRow(7, "x@example.com", "addr", "555", 16.0, "new", "2024-03-01 12:00:00", 2, 4, 2, nil, nil))

	details, err := storage.GetDetails(7)
	require.NoError(t, err)
	require.NotNil(t, details)
	assert.Equal(t, uint(7), details.Order.ID)
	assert.Equal(t, 16.0, details.Order.TotalPrice)
	require.Len(t, details.Items, 2)
	require.NotNil(t, details.Items[0].Name)
	assert.Equal(t, "Lamp", *details.Items[0].Name)
	assert.Equal(t, uint(4), details.Items[1].ProductID)
	assert.Equal(t, 2, details.Items[1].Quantity)
	assert.Nil(t, details.Items[1].Name)

	assert.NoError(t, mock.ExpectationsWereMet(), "order and items come from a single query")
}
