package client

import "github.com/sirupsen/logrus"

type ClientLogHook struct{}

func (h *ClientLogHook) Fire(entry *logrus.Entry) error {
	entry.Message = "Client: " + entry.Message
	entry.Data["component"] = "client"
	return nil
}

func (h *ClientLogHook) Levels() []logrus.Level {
	return logrus.AllLevels
}
