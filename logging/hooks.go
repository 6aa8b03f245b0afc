package logging

import (
	"github.com/sirupsen/logrus"

	"github.com/phanitejak/jsonvalidator/metrics"
)

// MetricsHook exposes Prometheus counters for each of logrus' log levels.
type MetricsHook struct {
	counterVec metrics.CounterVec
}

var (
	supportedLevels = []logrus.Level{logrus.DebugLevel, logrus.InfoLevel, logrus.WarnLevel, logrus.ErrorLevel}
	hook            = &MetricsHook{
		counterVec: metrics.RegisterCounterVec("events_total", "logger", "Total number of log messages.", "level"),
	}
)

//nolint:gochecknoinits
func init() {
	for _, level := range supportedLevels {
		hook.counterVec.GetCustomCounter(level.String())
	}
}

// Fire increments the counter of the entry's level.
func (h *MetricsHook) Fire(entry *logrus.Entry) error {
	h.counterVec.GetCustomCounter(entry.Level.String()).Inc()
	return nil
}

// Counter returns the event counter of the named level.
func (h *MetricsHook) Counter(level string) metrics.Counter {
	return h.counterVec.GetCustomCounter(level)
}

// Levels returns all supported log levels.
func (h *MetricsHook) Levels() []logrus.Level {
	return supportedLevels
}

// GetMetricsHook retrieves the logging hook counting log entries.
func GetMetricsHook() *MetricsHook {
	return hook
}
