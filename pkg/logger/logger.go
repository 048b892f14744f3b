package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

type MainLogHook struct{}

func (h *MainLogHook) Fire(entry *logrus.Entry) error {
	entry.Message = "Main: " + entry.Message
	return nil
}

func (h *MainLogHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// NewLogger builds a text logger writing to stdout. An unknown level falls
// back to debug. hook may be nil.
func NewLogger(level string, hook logrus.Hook) *logrus.Entry {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.DebugLevel
	}
	l.SetLevel(lvl)

	if hook != nil {
		l.AddHook(hook)
	}

	return logrus.NewEntry(l)
}
