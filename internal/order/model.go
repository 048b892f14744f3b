package order

import (
	"fmt"
	"math"
	"sort"
)

// DateLayout keeps order dates lexically sortable.
const DateLayout = "2006-01-02 15:04:05"

// Status is a free-text order label. The constants are the labels the
// storefront uses; stores accept any non-blank value.
type Status string

const (
	StatusNew        Status = "new"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

func (s Status) Known() bool {
	switch s {
	case StatusNew, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Order is immutable apart from Status, Address and Phone. TotalPrice is
// the cart total at placement and is never recomputed.
type Order struct {
	ID         uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Email      string  `json:"email"`
	Address    string  `json:"address"`
	Phone      string  `gorm:"not null;default:''" json:"phone"`
	TotalPrice float64 `json:"total_price"`
	Status     Status  `json:"status"`
	Date       string  `json:"date"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderItem is written only by placement and removed only with its order.
// ProductID carries no constraint so products can be deleted freely.
type OrderItem struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   uint   `gorm:"not null;index" json:"order_id"`
	Order     *Order `gorm:"constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT;" json:"-"`
	ProductID uint   `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

func (OrderItem) TableName() string {
	return "order_items"
}

// CartItem fields are pointers so a missing key can be told apart from a
// zero value.
type CartItem struct {
	ProductID *uint    `json:"id"`
	Price     *float64 `json:"price"`
	Quantity  *int     `json:"quantity"`
}

type Cart map[string]CartItem

func (c Cart) keys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (c Cart) Validate() error {
	for _, key := range c.keys() {
		item := c[key]
		switch {
		case item.ProductID == nil:
			return fmt.Errorf("%w: entry %q has no product id", ErrInvalidCart, key)
		case item.Price == nil:
			return fmt.Errorf("%w: entry %q has no price", ErrInvalidCart, key)
		case item.Quantity == nil:
			return fmt.Errorf("%w: entry %q has no quantity", ErrInvalidCart, key)
		case *item.Price < 0 || math.IsNaN(*item.Price) || math.IsInf(*item.Price, 0):
			return fmt.Errorf("%w: entry %q has invalid price %v", ErrInvalidCart, key, *item.Price)
		case *item.Quantity < 1:
			return fmt.Errorf("%w: entry %q has quantity %d", ErrInvalidCart, key, *item.Quantity)
		}
	}
	return nil
}

// Total sums price*quantity in key order. The cart must be valid.
func (c Cart) Total() float64 {
	var total float64
	for _, key := range c.keys() {
		item := c[key]
		total += *item.Price * float64(*item.Quantity)
	}
	return total
}

func (c Cart) items(orderID uint) []OrderItem {
	items := make([]OrderItem, 0, len(c))
	for _, key := range c.keys() {
		item := c[key]
		items = append(items, OrderItem{
			OrderID:   orderID,
			ProductID: *item.ProductID,
			Quantity:  *item.Quantity,
		})
	}
	return items
}

// ItemDetail is a line item joined with the product as it is now. Name and
// Price are nil when the product has since been deleted.
type ItemDetail struct {
	ID        uint     `json:"id"`
	ProductID uint     `json:"product_id"`
	Quantity  int      `json:"quantity"`
	Name      *string  `json:"name"`
	Price     *float64 `json:"price"`
}

type OrderDetails struct {
	Order Order        `json:"order"`
	Items []ItemDetail `json:"items"`
}
