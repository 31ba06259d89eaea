package log

import (
	"context"
	"fmt"
	"log/slog"
	"os"
)

// SetupLogger function setup logger.
func SetupLogger(loglevel string) {
	ops := slog.HandlerOptions{
		AddSource: true,
		Level:     ToLogLevel(loglevel),
		// Replace attributes to convert to CloudLogging format.
		ReplaceAttr: func(groups []string, attr slog.Attr) slog.Attr {
			switch attr.Key {
			case slog.LevelKey:
				attr = slog.Attr{
					Key:   "severity",
					Value: attr.Value,
				}
			case slog.MessageKey:
				attr = slog.Attr{
					Key:   "message",
					Value: attr.Value,
				}
			case slog.SourceKey:
				attr = slog.Attr{
					Key:   "logging.googleapis.com/sourceLocation",
					Value: attr.Value,
				}
			}
			return attr
		},
	}
	handler := slog.NewJSONHandler(os.Stdout, &ops)
	errFmtHandler := WrapByErrFmtHandler(handler)
	slog.SetDefault(slog.New(errFmtHandler))
}

func ToLogLevel(level string) slog.Level {
	switch level {
	case "info":
		return slog.LevelInfo
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		panic(fmt.Sprintf("invalid log level :%s", level))
	}
}

const (
	ErrAttrKey        = "error"
	StacktraceAttrKey = "stacktrace"
)

// ErrAttr is a wrapper to pass err to slog.
func ErrAttr(err error) slog.Attr {
	return slog.Any(ErrAttrKey, err)
}

// SlogLogger adapts a *slog.Logger to the Logger interface so the grid can
// log through the standard library handler chain, including ErrFmtHandler.
type SlogLogger struct {
	logger *slog.Logger
}

// NewSlogLogger wraps an existing *slog.Logger. Passing nil uses slog.Default().
func NewSlogLogger(logger *slog.Logger) *SlogLogger {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogLogger{logger: logger}
}

// Debug implements Logger.Debug.
func (s *SlogLogger) Debug(msg string, fields ...any) { s.logger.Debug(msg, fields...) }

// Info implements Logger.Info.
func (s *SlogLogger) Info(msg string, fields ...any) { s.logger.Info(msg, fields...) }

// Warn implements Logger.Warn.
func (s *SlogLogger) Warn(msg string, fields ...any) { s.logger.Warn(msg, fields...) }

// Error implements Logger.Error.
func (s *SlogLogger) Error(msg string, fields ...any) { s.logger.Error(msg, fields...) }

// With implements Logger.With.
func (s *SlogLogger) With(fields ...any) Logger {
	return &SlogLogger{logger: s.logger.With(fields...)}
}

// Enabled implements Logger.Enabled.
func (s *SlogLogger) Enabled(ctx context.Context, level Level) bool {
	return s.logger.Enabled(ctx, slog.Level(level))
}

// NopLogger discards all log records. It is the default logger of a grid
// constructed without WithLogger.
type NopLogger struct{}

// Debug implements Logger.Debug.
func (NopLogger) Debug(string, ...any) {}

// Info implements Logger.Info.
func (NopLogger) Info(string, ...any) {}

// Warn implements Logger.Warn.
func (NopLogger) Warn(string, ...any) {}

// Error implements Logger.Error.
func (NopLogger) Error(string, ...any) {}

// With implements Logger.With.
func (n NopLogger) With(...any) Logger { return n }

// Enabled implements Logger.Enabled.
func (NopLogger) Enabled(context.Context, Level) bool { return false }
