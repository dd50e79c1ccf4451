package logger

import (
	"log/slog"
	"os"
)

// exit is replaced in tests so Fatal can be exercised.
var exit = os.Exit

// slogLogger adapts a slog.Logger to Logger. The console and file loggers only differ in their handler.
type slogLogger struct {
	logger *slog.Logger
}

func newSlogLogger(handler slog.Handler) *slogLogger {
	return &slogLogger{logger: slog.New(handler)}
}

func (l *slogLogger) Debug(args ...interface{}) { l.logger.Debug(formatArgs(args...)) }

func (l *slogLogger) Info(args ...interface{}) { l.logger.Info(formatArgs(args...)) }

func (l *slogLogger) Warn(args ...interface{}) { l.logger.Warn(formatArgs(args...)) }

func (l *slogLogger) Error(args ...interface{}) { l.logger.Error(formatArgs(args...)) }

// Fatal logs at error level and terminates the process.
func (l *slogLogger) Fatal(args ...interface{}) {
	l.logger.Error(formatArgs(args...))
	exit(1)
}

// Panic logs at error level and panics with the message.
func (l *slogLogger) Panic(args ...interface{}) {
	msg := formatArgs(args...)
	l.logger.Error(msg)
	panic(msg)
}

func (l *slogLogger) With(keyValues ...interface{}) Logger {
	return &slogLogger{logger: l.logger.With(keyValues...)}
}
