package order

import (
	"errors"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"gorm.io/gorm"

	"github.com/infinitivesi/lab-8/pkg/database"
)

type Storage interface {
	PlaceOrder(email, address string, cart Cart, phone string) (uint, error)
	GetByID(id uint) (*Order, error)
	GetByEmail(email string) ([]Order, error)
	SearchByEmail(partial string) ([]Order, error)
	List() ([]Order, error)
	GetDetails(id uint) (*OrderDetails, error)
	UpdateContact(id uint, address, phone string) (int64, error)
	UpdateStatus(id uint, status Status) (int64, error)
	Delete(id uint) (int64, error)
}

type OrderStorage struct {
	db  *gorm.DB
	now func() time.Time
}

type StorageOption func(*OrderStorage)

// WithClock replaces the wall clock used to stamp new orders.
func WithClock(now func() time.Time) StorageOption {
	return func(s *OrderStorage) {
		s.now = now
	}
}

func NewStorage(db *gorm.DB, opts ...StorageOption) Storage {
	s := &OrderStorage{
		db:  db,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PlaceOrder writes the order and one item per cart entry in a single
// transaction. Malformed carts fail with ErrInvalidCart before anything is
// written; storage failures come back as *database.Error.
func (s *OrderStorage) PlaceOrder(email, address string, cart Cart, phone string) (uint, error) {
	if err := cart.Validate(); err != nil {
		return 0, err
	}

	order := Order{
		Email:      email,
		Address:    address,
		Phone:      phone,
		TotalPrice: cart.Total(),
		Status:     StatusNew,
		Date:       s.now().Format(DateLayout),
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		items := cart.items(order.ID)
		if len(items) == 0 {
			return nil
		}
		return tx.Create(&items).Error
	})
	if err != nil {
		return 0, database.Wrap("place order", err)
	}

	return order.ID, nil
}

func (s *OrderStorage) GetByID(id uint) (*Order, error) {
	var order Order
	if err := s.db.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, database.Wrap("get order", err)
	}
	return &order, nil
}

func (s *OrderStorage) GetByEmail(email string) ([]Order, error) {
	orders := []Order{}
	err := s.db.Where("email = ?", email).Order("date DESC, id DESC").Find(&orders).Error
	if err != nil {
		return nil, database.Wrap("get orders by email", err)
	}
	return orders, nil
}

// SearchByEmail matches a case-insensitive substring of the email. A blank
// term matches nothing.
func (s *OrderStorage) SearchByEmail(partial string) ([]Order, error) {
	term := strings.ToLower(strings.TrimSpace(partial))
	if term == "" {
		return []Order{}, nil
	}

	orders := []Order{}
	err := s.db.Where("LOWER(email) LIKE ?", "%"+term+"%").Order("date DESC, id DESC").Find(&orders).Error
	if err != nil {
		return nil, database.Wrap("search orders", err)
	}
	return orders, nil
}

func (s *OrderStorage) List() ([]Order, error) {
	orders := []Order{}
	if err := s.db.Order("date DESC, id DESC").Find(&orders).Error; err != nil {
		return nil, database.Wrap("list orders", err)
	}
	return orders, nil
}

// detailRow is one row of the order/item/product join. Item columns are nil
// for an order without items; product columns are nil once the product is
// deleted.
type detailRow struct {
	ID           uint
	Email        string
	Address      string
	Phone        string
	TotalPrice   float64
	Status       Status
	Date         string
	ItemID       *uint
	ProductID    *uint
	Quantity     *int
	ProductName  *string
	ProductPrice *float64
}

// GetDetails reads the order, its items and the current products in one
// statement, so a concurrent Delete is seen either entirely or not at all.
func (s *OrderStorage) GetDetails(id uint) (*OrderDetails, error) {
	query, args, err := sq.Select(
		"o.id", "o.email", "o.address", "o.phone", "o.total_price", "o.status", "o.date",
		"oi.id AS item_id", "oi.product_id", "oi.quantity",
		"p.name AS product_name", "p.price AS product_price",
	).From("orders o").
		LeftJoin("order_items oi ON oi.order_id = o.id").
		LeftJoin("products p ON p.id = oi.product_id").
		Where(sq.Eq{"o.id": id}).
		OrderBy("oi.id").
		ToSql()
	if err != nil {
		return nil, err
	}

	var rows []detailRow
	if err := s.db.Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, database.Wrap("get order details", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	first := rows[0]
	details := &OrderDetails{
		Order: Order{
			ID:         first.ID,
			Email:      first.Email,
			Address:    first.Address,
			Phone:      first.Phone,
			TotalPrice: first.TotalPrice,
			Status:     first.Status,
			Date:       first.Date,
		},
		Items: make([]ItemDetail, 0, len(rows)),
	}

	for _, row := range rows {
		if row.ItemID == nil {
			continue
		}

		item := ItemDetail{
			ID:    *row.ItemID,
			Name:  row.ProductName,
			Price: row.ProductPrice,
		}
		if row.ProductID != nil {
			item.ProductID = *row.ProductID
		}
		if row.Quantity != nil {
			item.Quantity = *row.Quantity
		}
		details.Items = append(details.Items, item)
	}

	return details, nil
}

func (s *OrderStorage) UpdateContact(id uint, address, phone string) (int64, error) {
	result := s.db.Model(&Order{}).Where("id = ?", id).Updates(map[string]interface{}{
		"address": address,
		"phone":   phone,
	})
	if result.Error != nil {
		return 0, database.Wrap("update order contact", result.Error)
	}
	return result.RowsAffected, nil
}

func (s *OrderStorage) UpdateStatus(id uint, status Status) (int64, error) {
	result := s.db.Model(&Order{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return 0, database.Wrap("update order status", result.Error)
	}
	return result.RowsAffected, nil
}

// Delete removes the items before the order in one transaction.
func (s *OrderStorage) Delete(id uint) (int64, error) {
	var affected int64
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&OrderItem{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&Order{}, id)
		affected = result.RowsAffected
		return result.Error
	})
	if err != nil {
		return 0, database.Wrap("delete order", err)
	}
	return affected, nil
}
