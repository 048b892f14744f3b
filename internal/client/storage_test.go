package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/infinitivesi/lab-8/pkg/database/testutil"
)

func TestClientStorage_CRUD(t *testing.T) {
	db := testutil.OpenSQLite(t)
	require.NoError(t, RunSchemaMigration(db))
	storage := NewStorage(db)

	first, err := storage.Create(&Client{Name: "Ann", Email: "ann@example.com", Phone: "123", Address: "Main st"})
	require.NoError(t, err)
	second, err := storage.Create(&Client{Name: "Bob", Email: "ann@example.com", HasCourses: true})
	require.NoError(t, err, "emails are not unique")

	got, err := storage.GetByID(first)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.False(t, got.HasCourses)
	assert.Equal(t, "Main st", got.Address)

	clients, err := storage.List()
	require.NoError(t, err)
	require.Len(t, clients, 2)
	assert.Equal(t, first, clients[0].ID)
	assert.True(t, clients[1].HasCourses)

	var flag int
	require.NoError(t, db.Raw("SELECT has_courses FROM clients WHERE id = ?", second).Scan(&flag).Error)
	assert.Equal(t, 1, flag)

	affected, err := storage.Update(second, &Client{Name: "Bob", Email: "bob@example.com"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	got, err = storage.GetByID(second)
	require.NoError(t, err)
	assert.Equal(t, Client{ID: second, Name: "Bob", Email: "bob@example.com"}, *got)

	affected, err = storage.Delete(first)
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	got, err = storage.GetByID(first)
	require.NoError(t, err)
	assert.Nil(t, got)

	affected, err = storage.Delete(first)
	require.NoError(t, err)
	assert.Zero(t, affected)
}
