package protocal

import (
	"os"
	"strings"

	"native-ai-bridge/configs"

	"github.com/sirupsen/logrus"
)

// setupLogger configures the standard logrus logger from the log config.
// Valid levels: trace, debug, info, warn, error (case-insensitive).
func setupLogger(cfg configs.Log) {
	level, err := logrus.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	logrus.SetOutput(os.Stderr)

	switch strings.ToLower(cfg.Format) {
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	default:
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}
