package product

import (
	"strings"

	"github.com/sirupsen/logrus"
)

type ProductService interface {
	List(filter Filter) ([]Product, error)
	GetByID(id uint) (*Product, error)
	Create(product *Product) (uint, error)
	Update(id uint, product *Product) error
	Delete(id uint) error
}

type productService struct {
	storage Storage
	logger  *logrus.Entry
}

func NewService(storage Storage, log *logrus.Entry) ProductService {
	return &productService{
		storage: storage,
		logger:  log,
	}
}

func (s *productService) List(filter Filter) ([]Product, error) {
	return s.storage.List(filter)
}

func (s *productService) GetByID(id uint) (*Product, error) {
	return s.storage.GetByID(id)
}

func (s *productService) Create(product *Product) (uint, error) {
	if strings.TrimSpace(product.Name) == "" {
		return 0, errNameRequired
	}

	id, err := s.storage.Create(product)
	if err != nil {
		return 0, err
	}

	s.logger.Debugf("created product %d", id)
	return id, nil
}

func (s *productService) Update(id uint, product *Product) error {
	if strings.TrimSpace(product.Name) == "" {
		return errNameRequired
	}

	affected, err := s.storage.Update(id, product)
	if err != nil {
		return err
	}
	if affected == 0 {
		return errProductNotFound
	}
	return nil
}

func (s *productService) Delete(id uint) error {
	affected, err := s.storage.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return errProductNotFound
	}

	s.logger.Debugf("deleted product %d", id)
	return nil
}
