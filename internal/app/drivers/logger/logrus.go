package logger

import (
	"simoly-service/internal/app/config"

	"github.com/sirupsen/logrus"
)

// NewLogger returns the plain-text bootstrap logger used while wiring drivers,
// before the structured zap logger is available.
func NewLogger(driverConfig *config.DriverConfig) *logrus.Logger {
	log := logrus.New()

	level, err := logrus.ParseLevel(driverConfig.Logger.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	return log
}
