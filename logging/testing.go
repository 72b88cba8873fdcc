package logging

import (
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

type testAppender struct {
	tb testing.TB
}

// NewTestAppender returns a logger appender that logs to the underlying `testing.TB` object, so
// log lines are associated with the right test even when tests run in parallel. The log uses the
// local/machine timezone.
func NewTestAppender(tb testing.TB) Appender {
	return &testAppender{tb}
}

// Write outputs the log entry to the underlying test object `Log` method.
func (tapp *testAppender) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	tapp.tb.Helper()
	var line strings.Builder
	err := NewWriterAppender(&line).Write(entry, fields)
	tapp.tb.Log(strings.TrimSuffix(line.String(), "\n"))
	return err
}

// Sync is a no-op.
func (tapp *testAppender) Sync() error {
	return nil
}
