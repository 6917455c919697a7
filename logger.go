// Package geometry is the entry point of the bounding-volume engine: a
// hashed spatial grid over axis aligned boxes, parallel bounds
// construction and the library logger.
//
// The shapes themselves live in the shape package, matrix utilities in
// linalg and the convex overlap test in gjk.
package geometry

import (
	"github.com/akmonengine/geometry/internal/logger"
	"go.uber.org/zap"
)

// SetLogger routes the library logs to l. The library is silent until
// called, and a nil logger silences it again.
func SetLogger(l *zap.Logger) {
	logger.Set(l)
}

// Logger returns the logger currently used by the library.
func Logger() *zap.Logger {
	return logger.Get()
}
