package feedback

import "github.com/sirupsen/logrus"

type FeedbackLogHook struct{}

func (h *FeedbackLogHook) Fire(entry *logrus.Entry) error {
	entry.Message = "Feedback: " + entry.Message
	entry.Data["component"] = "feedback"
	return nil
}

func (h *FeedbackLogHook) Levels() []logrus.Level {
	return logrus.AllLevels
}
