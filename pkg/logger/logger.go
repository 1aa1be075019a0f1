package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Setup func - Configures the standard logrus logger.
// Debug enables debug level, every env except local and test logs JSON.
func Setup(debug bool, env string) {
	logrus.SetOutput(os.Stdout)

	if debug {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}

	switch env {
	case "", "local", "test":
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	default:
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
