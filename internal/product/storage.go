package product

import (
	"errors"

	sq "github.com/Masterminds/squirrel"
	"gorm.io/gorm"

	"github.com/infinitivesi/lab-8/pkg/database"
)

type Storage interface {
	List(filter Filter) ([]Product, error)
	GetByID(id uint) (*Product, error)
	Create(product *Product) (uint, error)
	Update(id uint, product *Product) (int64, error)
	Delete(id uint) (int64, error)
}

type ProductStorage struct {
	db *gorm.DB
}

func NewStorage(db *gorm.DB) Storage {
	return &ProductStorage{
		db: db,
	}
}

func (s *ProductStorage) List(filter Filter) ([]Product, error) {
	builder := sq.Select("id", "name", "price", "image", "description").From(Product{}.TableName())

	for _, opt := range filter.Options() {
		builder = opt(builder)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	products := []Product{}
	if err := s.db.Raw(query, args...).Scan(&products).Error; err != nil {
		return nil, database.Wrap("list products", err)
	}
	return products, nil
}

func (s *ProductStorage) GetByID(id uint) (*Product, error) {
	var product Product
	err := s.db.First(&product, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, database.Wrap("get product", err)
	}
	return &product, nil
}

func (s *ProductStorage) Create(product *Product) (uint, error) {
	newProduct := Product{
		Name:        product.Name,
		Price:       product.Price,
		Image:       product.Image,
		Description: product.Description,
	}

	if err := s.db.Create(&newProduct).Error; err != nil {
		return 0, database.Wrap("create product", err)
	}
	return newProduct.ID, nil
}

// Update replaces every mutable field. A missing id affects zero rows.
func (s *ProductStorage) Update(id uint, product *Product) (int64, error) {
	result := s.db.Model(&Product{}).Where("id = ?", id).Updates(map[string]interface{}{
		"name":        product.Name,
		"price":       product.Price,
		"image":       product.Image,
		"description": product.Description,
	})
	if result.Error != nil {
		return 0, database.Wrap("update product", result.Error)
	}
	return result.RowsAffected, nil
}

// Delete leaves order items that reference the product in place.
func (s *ProductStorage) Delete(id uint) (int64, error) {
	result := s.db.Delete(&Product{}, id)
	if result.Error != nil {
		return 0, database.Wrap("delete product", result.Error)
	}
	return result.RowsAffected, nil
}
