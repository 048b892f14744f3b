package client

// Client is a registry entry. Email is not unique.
type Client struct {
	ID         uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	HasCourses bool   `gorm:"not null;default:false" json:"has_courses"`
}

func (Client) TableName() string {
	return "clients"
}
