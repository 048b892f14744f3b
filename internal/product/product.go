package product

import "github.com/sirupsen/logrus"

type ProductLogHook struct{}

func (h *ProductLogHook) Fire(entry *logrus.Entry) error {
	entry.Message = "Product: " + entry.Message
	entry.Data["component"] = "product"
	return nil
}

func (h *ProductLogHook) Levels() []logrus.Level {
	return logrus.AllLevels
}
