package client

import (
	"errors"

	"gorm.io/gorm"

	"github.com/infinitivesi/lab-8/pkg/database"
)

type Storage interface {
	Create(client *Client) (uint, error)
	GetByID(id uint) (*Client, error)
	List() ([]Client, error)
	Update(id uint, client *Client) (int64, error)
	Delete(id uint) (int64, error)
}

type ClientStorage struct {
	db *gorm.DB
}

func NewStorage(db *gorm.DB) Storage {
	return &ClientStorage{
		db: db,
	}
}

func (s *ClientStorage) Create(client *Client) (uint, error) {
	newClient := Client{
		Name:       client.Name,
		Email:      client.Email,
		Phone:      client.Phone,
		Address:    client.Address,
		HasCourses: client.HasCourses,
	}

	if err := s.db.Create(&newClient).Error; err != nil {
		return 0, database.Wrap("create client", err)
	}
	return newClient.ID, nil
}

func (s *ClientStorage) GetByID(id uint) (*Client, error) {
	var client Client
	if err := s.db.First(&client, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, database.Wrap("get client", err)
	}
	return &client, nil
}

func (s *ClientStorage) List() ([]Client, error) {
	clients := []Client{}
	if err := s.db.Order("id").Find(&clients).Error; err != nil {
		return nil, database.Wrap("list clients", err)
	}
	return clients, nil
}

func (s *ClientStorage) Update(id uint, client *Client) (int64, error) {
	result := s.db.Model(&Client{}).Where("id = ?", id).Updates(map[string]interface{}{
		"name":        client.Name,
		"email":       client.Email,
		"phone":       client.Phone,
		"address":     client.Address,
		"has_courses": client.HasCourses,
	})
	if result.Error != nil {
		return 0, database.Wrap("update client", result.Error)
	}
	return result.RowsAffected, nil
}

func (s *ClientStorage) Delete(id uint) (int64, error) {
	result := s.db.Delete(&Client{}, id)
	if result.Error != nil {
		return 0, database.Wrap("delete client", result.Error)
	}
	return result.RowsAffected, nil
}
