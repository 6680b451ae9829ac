//go:build !(js && wasm)

package console

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var logger atomic.Pointer[zap.SugaredLogger]

func init() {
	logger.Store(zap.NewNop().Sugar())
}

// SetLogger routes console output to l. A nil logger silences output again.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger.Store(l.Sugar())
}

// Logger returns the logger console output is currently routed to.
func Logger() *zap.SugaredLogger {
	return logger.Load()
}

// Log writes at info level.
func Log(args ...any) {
	logger.Load().Infoln(args...)
}

// Warn writes at warn level.
func Warn(args ...any) {
	logger.Load().Warnln(args...)
}

// Error writes at error level.
func Error(args ...any) {
	logger.Load().Errorln(args...)
}
