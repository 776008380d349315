package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

var root = logrus.New()

// Setup configures the process-wide logger. Unknown levels fall back to info.
func Setup(level string) {
	root.SetOutput(os.Stderr)
	root.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	root.SetLevel(parsed)
}

// Module returns a logger entry scoped to one application component.
func Module(name string) *logrus.Entry {
	return root.WithField("module", name)
}
