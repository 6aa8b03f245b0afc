// Package logging provides the structured logger used across jsonvalidator.
package logging

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

const (
	// ISO8601 is timestamp format used by Logger.
	ISO8601        = "2006-01-02T15:04:05.000Z07:00"
	loggerFieldKey = "logger"
)

// Logger is the interface for loggers.
type Logger interface {
	Debug(...interface{})
	Debugf(string, ...interface{})

	Info(...interface{})
	Infof(string, ...interface{})

	Warn(...interface{})
	Warnf(string, ...interface{})

	Error(...interface{})
	Errorf(string, ...interface{})

	With(key string, value interface{}) Logger
	WithFields(map[string]interface{}) Logger
}

type logger struct {
	entry *logrus.Entry
	depth int
}

// With adds kv pair to log message.
func (l logger) With(key string, value interface{}) Logger {
	return logger{entry: l.entry.WithField(key, value), depth: l.depth}
}

// WithFields adds map as a kv pairs to log message.
func (l logger) WithFields(fields map[string]interface{}) Logger {
	return logger{entry: l.entry.WithFields(fields), depth: l.depth}
}

// Debug logs a message at level Debug.
func (l logger) Debug(args ...interface{}) {
	l.sourced().Debug(args...)
}

// Debugf logs a message at level Debug.
func (l logger) Debugf(format string, args ...interface{}) {
	l.sourced().Debugf(format, args...)
}

// Info logs a message at level Info.
func (l logger) Info(args ...interface{}) {
	l.sourced().Info(args...)
}

// Infof logs a message at level Info.
func (l logger) Infof(format string, args ...interface{}) {
	l.sourced().Infof(format, args...)
}

// Warn logs a message at level Warn.
func (l logger) Warn(args ...interface{}) {
	l.sourced().Warn(args...)
}

// Warnf logs a message at level Warn.
func (l logger) Warnf(format string, args ...interface{}) {
	l.sourced().Warnf(format, args...)
}

// Error logs a message at level Error with the current stack trace.
func (l logger) Error(args ...interface{}) {
	l.sourced().WithField("stack_trace", string(debug.Stack())).Error(args...)
}

// Errorf logs a message at level Error with the current stack trace.
func (l logger) Errorf(format string, args ...interface{}) {
	l.sourced().WithField("stack_trace", string(debug.Stack())).Errorf(format, args...)
}

// sourced adds the file name and line of the caller as the logger field.
func (l logger) sourced() *logrus.Entry {
	_, file, line, ok := runtime.Caller(l.depth + 2)
	if !ok {
		file = "<???>"
		line = 1
	} else {
		file = file[strings.LastIndex(file, "/")+1:]
	}
	return l.entry.WithField(loggerFieldKey, fmt.Sprintf("%s:%d", file, line))
}

// IncDepth can be used by wrappers to increment stack depth.
func (l logger) IncDepth(depth int) Logger {
	l.depth += depth
	return l
}

// NewLogger returns a new Logger logging to stderr.
//
// Configuration is read from the environment:
//
//	Variable            | Values
//	-----------------------------------------------------------
//	LOGGING_LEVEL       | 'debug', 'info' (default), 'warn', 'error'
//	LOGGING_FORMAT      | 'json' (default), 'txt'
//
// If invalid configuration is given NewLogger returns a Logger with the
// default configuration and logs the configuration error with it.
// Log events contain the fields timestamp, message, logger, level and
// stack_trace (error level only).
//
// Every log event increments the logger_events_total counter.
func NewLogger() Logger {
	return NewLoggerTo(os.Stderr)
}

// NewLoggerTo is NewLogger writing to out.
func NewLoggerTo(out io.Writer) Logger {
	level, format, err := parseConfig()
	l := &logrus.Logger{
		Out:       out,
		Formatter: format,
		Hooks:     make(logrus.LevelHooks),
		Level:     level,
	}
	l.Hooks.Add(hook)
	log := logger{entry: logrus.NewEntry(l)}

	if err != nil {
		log.Errorf("Error parsing logger config: %s", err)
	}
	return log
}

type config struct {
	Level  string `envconfig:"LOGGING_LEVEL" default:"info"`
	Format string `envconfig:"LOGGING_FORMAT" default:"json"`
}

func parseConfig() (logLevel logrus.Level, outputFormat logrus.Formatter, err error) {
	logLevel = logrus.InfoLevel
	outputFormat = jsonFormatter()

	var conf config
	if err = envconfig.Process("", &conf); err != nil {
		return
	}

	switch strings.ToLower(conf.Level) {
	case "debug":
		logLevel = logrus.DebugLevel
	case "info", "":
		logLevel = logrus.InfoLevel
	case "warn", "warning":
		logLevel = logrus.WarnLevel
	case "error":
		logLevel = logrus.ErrorLevel
	default:
		err = fmt.Errorf("invalid LOGGING_LEVEL '%s', please specify LOGGING_LEVEL as 'debug', 'info', 'warn' or 'error'", conf.Level)
		return logrus.InfoLevel, outputFormat, err
	}

	switch conf.Format {
	case "json", "":
	case "txt":
		outputFormat = &logrus.TextFormatter{}
	default:
		err = fmt.Errorf("invalid LOGGING_FORMAT '%s', please specify LOGGING_FORMAT as 'json' or 'txt'", conf.Format)
		return logLevel, jsonFormatter(), err
	}
	return logLevel, outputFormat, nil
}

func jsonFormatter() logrus.Formatter {
	return &logrus.JSONFormatter{
		TimestampFormat: ISO8601,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyMsg:   "message",
			logrus.FieldKeyLevel: "level",
		},
	}
}
