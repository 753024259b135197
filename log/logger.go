package log

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

type Logger interface {
	Debugf(format string, args ...interface{})
	Debugln(args ...interface{})
	Infof(format string, args ...interface{})
	Infoln(args ...interface{})
	Warnf(format string, args ...interface{})
	Warnln(args ...interface{})
	Errorf(format string, args ...interface{})
	Errorln(args ...interface{})
	Writer() *io.PipeWriter
	WithFields(fields logrus.Fields) *logrus.Entry
}

func DefaultLogger() Logger {
	logrus.SetLevel(logrus.InfoLevel)
	return logrus.StandardLogger()
}

// WithLevel builds a logger at the named level using the package formatter.
// Unknown names fall back to INFO.
func WithLevel(level string) Logger {
	logger := logrus.New()
	logger.SetFormatter(&Formatter{})
	logger.SetLevel(ParseLevel(level))
	return logger
}

func ParseLevel(level string) logrus.Level {
	switch strings.ToUpper(level) {
	case "DEBUG", "TRACE":
		return logrus.DebugLevel
	case "WARN", "WARNING":
		return logrus.WarnLevel
	case "ERROR":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}
