package logger

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

var log *logrus.Logger

func init() {
	log = logrus.New()
	log.SetOutput(os.Stdout)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	log.SetLevel(logrus.InfoLevel)

	// Override from env, e.g. LOG_LEVEL=debug.
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		if parsed, err := logrus.ParseLevel(strings.ToLower(level)); err == nil {
			log.SetLevel(parsed)
		}
	}
}

// WithComponent returns an entry tagged with the given component name.
func WithComponent(component string) *logrus.Entry {
	return log.WithField("component", component)
}
