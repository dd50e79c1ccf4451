package logger

import (
	"io"
	"log/slog"
	"os"
)

// NewConsoleLogger creates a text logger on stderr. Stdout is reserved for the signature test report.
func NewConsoleLogger(level string) Logger {
	return newConsoleLogger(os.Stderr, level)
}

func newConsoleLogger(w io.Writer, level string) *slogLogger {
	return newSlogLogger(slog.NewTextHandler(w, &slog.HandlerOptions{Level: parseLevel(level)}))
}
