package feedback

// Type labels a feedback entry. The set is open; General and Developer are
// the labels the storefront itself submits.
type Type string

const (
	General   Type = "general"
	Developer Type = "developer"
)

func (t Type) OrDefault() Type {
	if t == "" {
		return General
	}
	return t
}

type Feedback struct {
	ID      uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
	Type    Type   `gorm:"column:feedback_type;not null;default:'general'" json:"feedback_type"`
}

func (Feedback) TableName() string {
	return "feedback"
}
