package bind

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var pkgLogger atomic.Pointer[zap.Logger]

// Logger returns the package logger used by Decode diagnostics.
// It is a no-op logger by default.
func Logger() *zap.Logger {
	if l := pkgLogger.Load(); l != nil {
		return l
	}
	return zap.NewNop()
}

// SetLogger replaces the package logger. Passing nil restores the no-op
// default.
func SetLogger(l *zap.Logger) { pkgLogger.Store(l) }
