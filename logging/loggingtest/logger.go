// Package loggingtest provides a logging.Logger backed by testing.TB that
// also records every entry so tests can assert on what was logged.
package loggingtest

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/phanitejak/jsonvalidator/logging"
)

// Entry is one recorded log call.
type Entry struct {
	Level   string
	Message string
	Fields  map[string]interface{}
}

type recorder struct {
	mu      sync.Mutex
	entries []Entry
}

// TestLogger writes log calls with t.Log and records them.
type TestLogger struct {
	t      testing.TB
	fields map[string]interface{}
	rec    *recorder
}

// NewTestLogger wraps t into a logging.Logger.
func NewTestLogger(t testing.TB) *TestLogger {
	return &TestLogger{t: t, rec: &recorder{}}
}

// Entries returns a copy of the recorded entries in call order.
func (l *TestLogger) Entries() []Entry {
	l.rec.mu.Lock()
	defer l.rec.mu.Unlock()
	return append([]Entry(nil), l.rec.entries...)
}

// Messages returns the recorded messages of the given level.
func (l *TestLogger) Messages(level string) []string {
	var msgs []string
	for _, e := range l.Entries() {
		if e.Level == level {
			msgs = append(msgs, e.Message)
		}
	}
	return msgs
}

// Debug logs with t.Log.
func (l *TestLogger) Debug(args ...interface{}) { l.t.Helper(); l.log("debug", fmt.Sprint(args...)) }

// Debugf logs with t.Log.
func (l *TestLogger) Debugf(format string, args ...interface{}) {
	l.t.Helper()
	l.log("debug", fmt.Sprintf(format, args...))
}

// Info logs with t.Log.
func (l *TestLogger) Info(args ...interface{}) { l.t.Helper(); l.log("info", fmt.Sprint(args...)) }

// Infof logs with t.Log.
func (l *TestLogger) Infof(format string, args ...interface{}) {
	l.t.Helper()
	l.log("info", fmt.Sprintf(format, args...))
}

// Warn logs with t.Log.
func (l *TestLogger) Warn(args ...interface{}) { l.t.Helper(); l.log("warning", fmt.Sprint(args...)) }

// Warnf logs with t.Log.
func (l *TestLogger) Warnf(format string, args ...interface{}) {
	l.t.Helper()
	l.log("warning", fmt.Sprintf(format, args...))
}

// Error logs with t.Log instead of t.Error in case error level logging is expected.
func (l *TestLogger) Error(args ...interface{}) { l.t.Helper(); l.log("error", fmt.Sprint(args...)) }

// Errorf logs with t.Log instead of t.Errorf in case error level logging is expected.
func (l *TestLogger) Errorf(format string, args ...interface{}) {
	l.t.Helper()
	l.log("error", fmt.Sprintf(format, args...))
}

// With returns a logger sharing the recorder with key added to its fields.
func (l *TestLogger) With(key string, value interface{}) logging.Logger {
	return l.WithFields(map[string]interface{}{key: value})
}

// WithFields returns a logger sharing the recorder with fields added.
func (l *TestLogger) WithFields(fields map[string]interface{}) logging.Logger {
	merged := make(map[string]interface{}, len(l.fields)+len(fields))
	for k, v := range l.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &TestLogger{t: l.t, fields: merged, rec: l.rec}
}

func (l *TestLogger) log(level, msg string) {
	l.t.Helper()
	l.rec.mu.Lock()
	l.rec.entries = append(l.rec.entries, Entry{Level: level, Message: msg, Fields: l.fields})
	l.rec.mu.Unlock()
	l.t.Logf("%s: %s%s", level, msg, formatFields(l.fields))
}

func formatFields(fields map[string]interface{}) string {
	if len(fields) == 0 {
		return ""
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, fields[k])
	}
	return b.String()
}
