// Package logging provides the structured logger the lattice planner logs
// through. It wraps go.uber.org/zap the way go.viam.com/rdk/logging does,
// but only exposes the small surface the planner needs: leveled,
// structured key/value logging, plus a named-sublogger constructor for
// tagging log lines with a planning-call ID.
package logging

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

// Logger is the structured logging surface the planner depends on.
type Logger interface {
	Debugw(msg string, kv ...interface{})
	Infow(msg string, kv ...interface{})
	Warnw(msg string, kv ...interface{})
	Errorw(msg string, kv ...interface{})
	// Named returns a sublogger tagging every subsequent line with name,
	// mirroring zap.SugaredLogger.Named without exposing zap directly.
	Named(name string) Logger
}

type zapLogger struct {
	sugar *zap.SugaredLogger
}

// NewLogger builds a production zap-backed Logger named name.
func NewLogger(name string) Logger {
	base, err := zap.NewProduction()
	if err != nil {
		base = zap.NewNop()
	}
	return &zapLogger{sugar: base.Sugar().Named(name)}
}

// NewTestLogger builds a Logger that writes to the test's own log sink,
// mirroring go.viam.com/rdk/logging.NewTestLogger used throughout the
// teacher corpus's test suites.
func NewTestLogger(t *testing.T) Logger {
	t.Helper()
	return &zapLogger{sugar: zaptest.NewLogger(t).Sugar()}
}

// NewNopLogger returns a Logger that discards everything, for callers that
// don't want planner output.
func NewNopLogger() Logger {
	return &zapLogger{sugar: zap.NewNop().Sugar()}
}

func (l *zapLogger) Debugw(msg string, kv ...interface{}) { l.sugar.Debugw(msg, kv...) }
func (l *zapLogger) Infow(msg string, kv ...interface{})  { l.sugar.Infow(msg, kv...) }
func (l *zapLogger) Warnw(msg string, kv ...interface{})  { l.sugar.Warnw(msg, kv...) }
func (l *zapLogger) Errorw(msg string, kv ...interface{}) { l.sugar.Errorw(msg, kv...) }

func (l *zapLogger) Named(name string) Logger {
	return &zapLogger{sugar: l.sugar.Named(name)}
}
