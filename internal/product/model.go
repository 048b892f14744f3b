package product

type Product struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Description string  `gorm:"not null;default:''" json:"description"`
}

func (Product) TableName() string {
	return "products"
}
