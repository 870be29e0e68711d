package utils

import (
	"strings"
	"sync"

	"go.uber.org/zap"
)

var (
	logger  *zap.Logger
	logOnce sync.Once
)

// Logger returns the shared process logger.
func Logger() *zap.Logger {
	logOnce.Do(func() {
		l, err := zap.NewProduction()
		if err != nil {
			l = zap.NewNop()
		}
		logger = l
	})
	return logger
}

// LogEvent emits a standardized module/action event line. Avoid logging
// sensitive payload; message should be summarized.
func LogEvent(requestID, module, action, message string) {
	Logger().Info(message,
		zap.String("module", strings.ToUpper(module)),
		zap.String("action", action),
		zap.String("request_id", strings.TrimSpace(requestID)),
	)
}

// LogError mirrors LogEvent for failure paths.
func LogError(requestID, module, action string, err error) {
	Logger().Error(action+" failed",
		zap.String("module", strings.ToUpper(module)),
		zap.String("action", action),
		zap.String("request_id", strings.TrimSpace(requestID)),
		zap.Error(err),
	)
}
