package feedback

import "github.com/sirupsen/logrus"

type FeedbackService interface {
	Add(name, email, message string, t Type) (uint, error)
	ListByType(t Type) ([]Feedback, error)
	Delete(id uint) error
}

type feedbackService struct {
	storage Storage
	logger  *logrus.Entry
}

func NewService(storage Storage, log *logrus.Entry) FeedbackService {
	return &feedbackService{
		storage: storage,
		logger:  log,
	}
}

func (s *feedbackService) Add(name, email, message string, t Type) (uint, error) {
	id, err := s.storage.Add(name, email, message, t)
	if err != nil {
		return 0, err
	}

	s.logger.WithField("type", t.OrDefault()).Debugf("stored feedback %d", id)
	return id, nil
}

func (s *feedbackService) ListByType(t Type) ([]Feedback, error) {
	return s.storage.ListByType(t)
}

func (s *feedbackService) Delete(id uint) error {
	affected, err := s.storage.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return errFeedbackNotFound
	}
	return nil
}
