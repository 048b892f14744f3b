package order

import (
	"context"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/sirupsen/logrus"

	"github.com/infinitivesi/lab-8/pkg/database"
)

type PlaceOrderInput struct {
	Email   string `json:"email" binding:"required"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Cart    Cart   `json:"cart"`
}

type OrderService interface {
	PlaceOrder(ctx context.Context, input PlaceOrderInput) (uint, error)
	GetByID(id uint) (*Order, error)
	GetByEmail(email string) ([]Order, error)
	SearchByEmail(partial string) ([]Order, error)
	List() ([]Order, error)
	GetDetails(id uint) (*OrderDetails, error)
	UpdateContact(id uint, address, phone string) error
	UpdateStatus(id uint, status Status) error
	Delete(id uint) error
}

// RetryPolicy bounds how placement retries lock and connection failures.
type RetryPolicy struct {
	MaxTries        uint
	InitialInterval time.Duration
	MaxElapsedTime  time.Duration
}

type orderService struct {
	storage Storage
	logger  *logrus.Entry
	retry   RetryPolicy
}

func NewService(storage Storage, log *logrus.Entry, retry RetryPolicy) OrderService {
	if retry.MaxTries == 0 {
		retry.MaxTries = 1
	}

	return &orderService{
		storage: storage,
		logger:  log,
		retry:   retry,
	}
}

func (s *orderService) PlaceOrder(ctx context.Context, input PlaceOrderInput) (uint, error) {
	b := backoff.NewExponentialBackOff()
	if s.retry.InitialInterval > 0 {
		b.InitialInterval = s.retry.InitialInterval
	}

	opts := []backoff.RetryOption{
		backoff.WithBackOff(b),
		backoff.WithMaxTries(s.retry.MaxTries),
		backoff.WithNotify(func(err error, next time.Duration) {
			s.logger.Warnf("place order for %s failed, retrying in %s: %v", input.Email, next, err)
		}),
	}
	if s.retry.MaxElapsedTime > 0 {
		opts = append(opts, backoff.WithMaxElapsedTime(s.retry.MaxElapsedTime))
	}

	id, err := backoff.Retry(ctx, func() (uint, error) {
		id, err := s.storage.PlaceOrder(input.Email, input.Address, input.Cart, input.Phone)
		if err != nil && !database.IsRetryable(err) {
			return 0, backoff.Permanent(err)
		}
		return id, err
	}, opts...)
	if err != nil {
		return 0, err
	}

	s.logger.WithField("items", len(input.Cart)).Infof("placed order %d for %s", id, input.Email)
	return id, nil
}

func (s *orderService) GetByID(id uint) (*Order, error) {
	return s.storage.GetByID(id)
}

func (s *orderService) GetByEmail(email string) ([]Order, error) {
	return s.storage.GetByEmail(email)
}

func (s *orderService) SearchByEmail(partial string) ([]Order, error) {
	return s.storage.SearchByEmail(partial)
}

func (s *orderService) List() ([]Order, error) {
	return s.storage.List()
}

func (s *orderService) GetDetails(id uint) (*OrderDetails, error) {
	return s.storage.GetDetails(id)
}

func (s *orderService) UpdateContact(id uint, address, phone string) error {
	affected, err := s.storage.UpdateContact(id, address, phone)
	if err != nil {
		return err
	}
	if affected == 0 {
		return errOrderNotFound
	}
	return nil
}

func (s *orderService) UpdateStatus(id uint, status Status) error {
	status = Status(strings.TrimSpace(string(status)))
	if status == "" {
		return ErrEmptyStatus
	}
	if !status.Known() {
		s.logger.Warnf("order %d set to unrecognised status %q", id, status)
	}

	affected, err := s.storage.UpdateStatus(id, status)
	if err != nil {
		return err
	}
	if affected == 0 {
		return errOrderNotFound
	}
	return nil
}

func (s *orderService) Delete(id uint) error {
	affected, err := s.storage.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return errOrderNotFound
	}

	s.logger.Infof("deleted order %d", id)
	return nil
}
