package logging

import (
	"testing"

	"go.viam.com/test"
)

func TestNamedLoggerDoesNotPanic(t *testing.T) {
	logger := NewTestLogger(t)
	sub := logger.Named("lattice")
	sub.Debugw("expanding node", "key", "k1", "g", 1.5)
	sub.Infow("plan complete", "cost", 4.0)
	sub.Warnw("consistency violation", "node", "k2")
	sub.Errorw("structural corruption", "key", "k3")
	test.That(t, sub, test.ShouldNotBeNil)
}

func TestNopLoggerDoesNotPanic(t *testing.T) {
	logger := NewNopLogger()
	logger.Infow("noop")
	test.That(t, logger, test.ShouldNotBeNil)
}
