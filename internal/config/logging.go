package config

import (
	"io"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
)

type Logging struct {
	Out         io.Writer
	File        string
	Development bool
}

// NewLogger writes to l.Out and, when l.File is set, to a size-rotated
// JSON log file.
func NewLogger(l Logging) (*logrus.Logger, error) {
	logger := logrus.New()
	logger.SetOutput(l.Out)

	level := logrus.InfoLevel
	if l.Development {
		level = logrus.DebugLevel
		logger.SetFormatter(&logrus.TextFormatter{ForceColors: true})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	logger.SetLevel(level)

	if l.File != "" {
		hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   l.File,
			MaxSize:    5, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Level:      level,
			Formatter:  &logrus.JSONFormatter{},
		})
		if err != nil {
			return nil, err
		}
		logger.AddHook(hook)
	}

	return logger, nil
}
