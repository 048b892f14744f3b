package feedback

import (
	"gorm.io/gorm"

	"github.com/infinitivesi/lab-8/pkg/database"
)

// Storage is append-only apart from removal by id.
type Storage interface {
	Add(name, email, message string, t Type) (uint, error)
	ListByType(t Type) ([]Feedback, error)
	Delete(id uint) (int64, error)
}

type FeedbackStorage struct {
	db *gorm.DB
}

func NewStorage(db *gorm.DB) Storage {
	return &FeedbackStorage{
		db: db,
	}
}

func (s *FeedbackStorage) Add(name, email, message string, t Type) (uint, error) {
	entry := Feedback{
		Name:    name,
		Email:   email,
		Message: message,
		Type:    t.OrDefault(),
	}

	if err := s.db.Create(&entry).Error; err != nil {
		return 0, database.Wrap("add feedback", err)
	}
	return entry.ID, nil
}

func (s *FeedbackStorage) ListByType(t Type) ([]Feedback, error) {
	entries := []Feedback{}
	err := s.db.Where("feedback_type = ?", t.OrDefault()).Order("id DESC").Find(&entries).Error
	if err != nil {
		return nil, database.Wrap("list feedback", err)
	}
	return entries, nil
}

func (s *FeedbackStorage) Delete(id uint) (int64, error) {
	result := s.db.Delete(&Feedback{}, id)
	if result.Error != nil {
		return 0, database.Wrap("delete feedback", result.Error)
	}
	return result.RowsAffected, nil
}
