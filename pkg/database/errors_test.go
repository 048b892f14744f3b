package database

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	assert.NoError(t, Wrap("op", nil))

	base := errors.New("disk I/O error")
	err := Wrap("order.create", base)
	assert.True(t, IsStorageError(err))
	assert.ErrorIs(t, err, base)
	assert.Equal(t, "storage: order.create: disk I/O error", err.Error())

	// already wrapped errors keep their original op
	again := Wrap("order.place", err)
	var dbErr *Error
	assert.True(t, errors.As(again, &dbErr))
	assert.Equal(t, "order.create", dbErr.Op)

	assert.False(t, IsStorageError(base))
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil", nil, false},
		{"plain error", errors.New("boom"), false},
		{"bad conn", fmt.Errorf("exec: %w", driver.ErrBadConn), true},
		{"sqlite busy", sqlite3.Error{Code: sqlite3.ErrBusy}, true},
		{"sqlite locked", sqlite3.Error{Code: sqlite3.ErrLocked}, true},
		{"sqlite constraint", sqlite3.Error{Code: sqlite3.ErrConstraint}, false},
		{"postgres serialization", &pgconn.PgError{Code: "40001"}, true},
		{"postgres deadlock", &pgconn.PgError{Code: "40P01"}, true},
		{"postgres lock not available", &pgconn.PgError{Code: "55P03"}, true},
		{"postgres connection failure", &pgconn.PgError{Code: "08006"}, true},
		{"postgres unique violation", &pgconn.PgError{Code: "23505"}, false},
		{"wrapped busy", Wrap("order.create", sqlite3.Error{Code: sqlite3.ErrBusy}), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsRetryable(tt.err))
		})
	}
}

func TestIsDuplicateColumn(t *testing.T) {
	assert.False(t, IsDuplicateColumn(nil))
	assert.True(t, IsDuplicateColumn(errors.New("duplicate column name: description")))
	assert.True(t, IsDuplicateColumn(&pgconn.PgError{Code: "42701"}))
	assert.True(t, IsDuplicateColumn(errors.New(`column "phone" of relation "orders" already exists`)))
	assert.False(t, IsDuplicateColumn(&pgconn.PgError{Code: "42P01"}))
	assert.False(t, IsDuplicateColumn(errors.New("no such table: products")))
}
