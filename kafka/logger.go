package kafka

import (
	// Go Internal Packages
	"fmt"

	// External Packages
	"github.com/twmb/franz-go/pkg/kgo"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// kgoLogger routes franz-go client logs into zap.
type kgoLogger struct {
	logger *zap.Logger
}

func newKgoLogger(logger *zap.Logger) *kgoLogger {
	return &kgoLogger{logger: logger.Named("kgo")}
}

func (l *kgoLogger) Level() kgo.LogLevel {
	core := l.logger.Core()
	switch {
	case core.Enabled(zapcore.DebugLevel):
		return kgo.LogLevelDebug
	case core.Enabled(zapcore.InfoLevel):
		return kgo.LogLevelInfo
	case core.Enabled(zapcore.WarnLevel):
		return kgo.LogLevelWarn
	case core.Enabled(zapcore.ErrorLevel):
		return kgo.LogLevelError
	default:
		return kgo.LogLevelNone
	}
}

func (l *kgoLogger) Log(level kgo.LogLevel, msg string, keyvals ...any) {
	fields := make([]zap.Field, 0, len(keyvals)/2)
	for i := 0; i+1 < len(keyvals); i += 2 {
		key, ok := keyvals[i].(string)
		if !ok {
			key = fmt.Sprint(keyvals[i])
		}
		fields = append(fields, zap.Any(key, keyvals[i+1]))
	}

	switch level {
	case kgo.LogLevelError:
		l.logger.Error(msg, fields...)
	case kgo.LogLevelWarn:
		l.logger.Warn(msg, fields...)
	case kgo.LogLevelInfo:
		l.logger.Info(msg, fields...)
	case kgo.LogLevelDebug:
		l.logger.Debug(msg, fields...)
	}
}
