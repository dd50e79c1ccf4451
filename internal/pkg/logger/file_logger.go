package logger

import (
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"
)

// NewFileLogger creates a JSON logger writing to filePath, rotated by size (MB), backup count and age (days).
func NewFileLogger(level string, filePath string, maxSize int, maxBackups int, maxAge int) Logger {
	writer := &lumberjack.Logger{
		Filename:   filePath,
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		MaxAge:     maxAge,
		Compress:   true,
	}
	return newSlogLogger(slog.NewJSONHandler(writer, &slog.HandlerOptions{Level: parseLevel(level)}))
}
