package client

import "github.com/sirupsen/logrus"

type ClientService interface {
	Create(client *Client) (uint, error)
	GetByID(id uint) (*Client, error)
	List() ([]Client, error)
	Update(id uint, client *Client) error
	Delete(id uint) error
}

type clientService struct {
	storage Storage
	logger  *logrus.Entry
}

func NewService(storage Storage, log *logrus.Entry) ClientService {
	return &clientService{
		storage: storage,
		logger:  log,
	}
}

func (s *clientService) Create(client *Client) (uint, error) {
	id, err := s.storage.Create(client)
	if err != nil {
		return 0, err
	}

	s.logger.Debugf("created client %d", id)
	return id, nil
}

func (s *clientService) GetByID(id uint) (*Client, error) {
	return s.storage.GetByID(id)
}

func (s *clientService) List() ([]Client, error) {
	return s.storage.List()
}

func (s *clientService) Update(id uint, client *Client) error {
	affected, err := s.storage.Update(id, client)
	if err != nil {
		return err
	}
	if affected == 0 {
		return errClientNotFound
	}
	return nil
}

func (s *clientService) Delete(id uint) error {
	affected, err := s.storage.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return errClientNotFound
	}
	return nil
}
