package infra

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/umalmyha/fleetcases/internal/config"
)

// Logger configures global logrus logger
func Logger(cfg config.LogCfg) error {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return fmt.Errorf("invalid log level %q - %w", cfg.Level, err)
	}

	logrus.SetLevel(level)
	logrus.SetOutput(os.Stdout)

	if cfg.Format == "text" {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
	return nil
}
