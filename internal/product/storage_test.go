package product

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/infinitivesi/lab-8/pkg/database"
	"github.com/infinitivesi/lab-8/pkg/database/testutil"
)

func setupStorage(t *testing.T) (Storage, *gorm.DB) {
	t.Helper()

	db := testutil.OpenSQLite(t)
	require.NoError(t, RunSchemaMigration(db))
	return NewStorage(db), db
}

func names(products []Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.Name)
	}
	return out
}

func TestProductStorage_WidgetScenario(t *testing.T) {
	storage, _ := setupStorage(t)

	_, err := storage.Create(&Product{Name: "Widget A", Price: 10.0})
	require.NoError(t, err)
	_, err = storage.Create(&Product{Name: "Widget B", Price: 25.5, Image: "http://img"})
	require.NoError(t, err)

	products, err := storage.List(Filter{RequireImage: true})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Widget B", products[0].Name)
	assert.Equal(t, 25.5, products[0].Price)
}

func TestProductStorage_List(t *testing.T) {
	storage, _ := setupStorage(t)

	seed := []Product{
		{Name: "Red Lamp", Price: 5},
		{Name: "Blue Lamp", Price: 15, Image: "lamp.png"},
		{Name: "Desk", Price: 120, Image: "desk.png"},
		{Name: "Red Lamp", Price: 7.5},
	}
	for i := range seed {
		id, err := storage.Create(&seed[i])
		require.NoError(t, err)
		seed[i].ID = id
	}

	tests := []struct {
		name     string
		filter   Filter
		expected []string
	}{
		{"everything in id order", Filter{}, []string{"Red Lamp", "Blue Lamp", "Desk", "Red Lamp"}},
		{"substring", Filter{Query: "Lamp"}, []string{"Red Lamp", "Blue Lamp", "Red Lamp"}},
		{"inclusive bounds", Filter{MinPrice: "7.5", MaxPrice: "15"}, []string{"Blue Lamp", "Red Lamp"}},
		{"invalid min ignored", Filter{MinPrice: "cheap", MaxPrice: "10"}, []string{"Red Lamp", "Red Lamp"}},
		{"combined", Filter{Query: "Lamp", MinPrice: "6", RequireImage: true}, []string{"Blue Lamp"}},
		{"no match", Filter{Query: "Chair"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			products, err := storage.List(tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, names(products))
		})
	}
}

func TestProductStorage_ListProperties(t *testing.T) {
	storage, _ := setupStorage(t)

	var all []Product
	for i := 0; i < 20; i++ {
		p := Product{Name: fmt.Sprintf("item-%02d-x", i), Price: float64(i) * 2.5}
		if i%3 == 0 {
			p.Image = fmt.Sprintf("img-%d.png", i)
		}
		id, err := storage.Create(&p)
		require.NoError(t, err)
		p.ID = id
		all = append(all, p)
	}

	t.Run("every substring of a name finds it", func(t *testing.T) {
		p := all[7]
		for start := 0; start < len(p.Name); start++ {
			for end := start + 1; end <= len(p.Name); end++ {
				products, err := storage.List(Filter{Query: p.Name[start:end]})
				require.NoError(t, err)
				assert.Contains(t, ids(products), p.ID, "query %q", p.Name[start:end])
			}
		}
	})

	t.Run("price range is exact", func(t *testing.T) {
		lower, upper := 10.0, 30.0
		products, err := storage.List(Filter{MinPrice: "10", MaxPrice: "30"})
		require.NoError(t, err)

		got := ids(products)
		for _, p := range all {
			if p.Price >= lower && p.Price <= upper {
				assert.Contains(t, got, p.ID)
			} else {
				assert.NotContains(t, got, p.ID)
			}
		}
	})

	t.Run("require image", func(t *testing.T) {
		products, err := storage.List(Filter{RequireImage: true})
		require.NoError(t, err)

		got := ids(products)
		for _, p := range all {
			if p.Image != "" {
				assert.Contains(t, got, p.ID)
			} else {
				assert.NotContains(t, got, p.ID)
			}
		}
	})
}

func ids(products []Product) []uint {
	out := make([]uint, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestProductStorage_RequireImageSkipsNull(t *testing.T) {
	storage, db := setupStorage(t)

	require.NoError(t, db.Exec("INSERT INTO products (name, price, image) VALUES (?, ?, NULL)", "Legacy", 1.0).Error)
	_, err := storage.Create(&Product{Name: "Pictured", Price: 2, Image: "x.png"})
	require.NoError(t, err)

	products, err := storage.List(Filter{RequireImage: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"Pictured"}, names(products))
}

func TestProductStorage_CRUD(t *testing.T) {
	storage, _ := setupStorage(t)

	id, err := storage.Create(&Product{Name: "Mug", Price: 3.2, Description: "ceramic"})
	require.NoError(t, err)
	require.NotZero(t, id)

	got, err := storage.GetByID(id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, Product{ID: id, Name: "Mug", Price: 3.2, Description: "ceramic"}, *got)

	affected, err := storage.Update(id, &Product{Name: "Big Mug", Price: 4, Image: "mug.png"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	got, err = storage.GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, Product{ID: id, Name: "Big Mug", Price: 4, Image: "mug.png"}, *got)

	affected, err = storage.Update(id+100, &Product{Name: "ghost"})
	require.NoError(t, err)
	assert.Zero(t, affected)

	affected, err = storage.Delete(id)
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	got, err = storage.GetByID(id)
	require.NoError(t, err)
	assert.Nil(t, got)

	next, err := storage.Create(&Product{Name: "After", Price: 1})
	require.NoError(t, err)
	assert.Greater(t, next, id, "ids are never reused")
}

func TestProductStorage_StorageFailure(t *testing.T) {
	db, mock := testutil.SetupMockPostgres(t)
	storage := NewStorage(db)

	mock.ExpectQuery(`SELECT id, name, price, image, description FROM products`).
		WillReturnError(fmt.Errorf("connection reset"))

	_, err := storage.List(Filter{})
	require.Error(t, err)
	assert.True(t, database.IsStorageError(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}
