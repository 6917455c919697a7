// Package logger holds the zap logger shared by every geometry package.
// It lives under internal/ so that linalg and shape can log without
// importing the root package.
package logger

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var current atomic.Pointer[zap.Logger]

func init() {
	current.Store(zap.NewNop())
}

// Set replaces the shared logger. A nil logger restores the silent default.
func Set(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	current.Store(l)
}

// Get returns the shared logger. It is never nil.
func Get() *zap.Logger {
	return current.Load()
}
