package mimekit

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log formats accepted by NewLogger
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// NewLogger returns a logrus logger writing to stderr at the given level.
// Text output is coloured so warnings and errors stand out on a terminal.
func NewLogger(level, format string) (*logrus.Logger, error) {
	return newLogger(os.Stderr, level, format)
}

func newLogger(out io.Writer, level, format string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(lvl)

	switch strings.ToLower(format) {
	case LogFormatText, "":
		logger.SetFormatter(&logrus.TextFormatter{
			ForceColors:     true,
			FullTimestamp:   true,
			TimestampFormat: "01-02 15:04:05.000",
		})
	case LogFormatJSON:
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("unsupported log format: %s", format)
	}

	return logger, nil
}

// defaultLogger is used by resolvers created without WithLogger.
func defaultLogger() logrus.FieldLogger {
	logger, err := NewLogger(logrus.WarnLevel.String(), LogFormatText)
	if err != nil {
		return logrus.StandardLogger()
	}
	return logger.WithField("component", "mimekit")
}
