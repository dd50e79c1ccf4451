package testutil

import (
	"fmt"
	"sync"
	"testing"

	"github.com/MGTheTrain/crypto-tester/internal/pkg/config"
	"github.com/MGTheTrain/crypto-tester/internal/pkg/logger"
	"github.com/stretchr/testify/require"
)

// SetupTestLogger sets up a logger for testing purposes.
func SetupTestLogger(t *testing.T) logger.Logger {
	t.Helper()

	settings := &config.LoggerSettings{
		LogLevel: config.LogLevelInfo,
		LogType:  config.LogTypeConsole,
	}

	err := logger.InitLogger(settings)
	require.NoError(t, err)

	log, err := logger.GetLogger()
	require.NoError(t, err)

	return log
}

// RecordingLogger keeps every message in memory so tests can assert on what was logged.
// Entries look like "INFO message key=value".
type RecordingLogger struct {
	mu      sync.Mutex
	entries []string

	// set on loggers returned by With; they record into root
	root  *RecordingLogger
	attrs string
}

// Entries returns the recorded messages prefixed with their level.
func (l *RecordingLogger) Entries() []string {
	store := l.store()
	store.mu.Lock()
	defer store.mu.Unlock()
	return append([]string(nil), store.entries...)
}

// With returns a logger recording into the same entries with key=value pairs appended.
func (l *RecordingLogger) With(keyValues ...interface{}) logger.Logger {
	attrs := l.attrs
	for i := 0; i+1 < len(keyValues); i += 2 {
		attrs += fmt.Sprintf(" %v=%v", keyValues[i], keyValues[i+1])
	}
	return &RecordingLogger{root: l.store(), attrs: attrs}
}

func (l *RecordingLogger) store() *RecordingLogger {
	if l.root != nil {
		return l.root
	}
	return l
}

func (l *RecordingLogger) record(level string, args ...interface{}) {
	store := l.store()
	store.mu.Lock()
	defer store.mu.Unlock()
	store.entries = append(store.entries, level+" "+fmt.Sprint(args...)+l.attrs)
}

// Debug records a debug message.
func (l *RecordingLogger) Debug(args ...interface{}) { l.record("DEBUG", args...) }

// Info records an informational message.
func (l *RecordingLogger) Info(args ...interface{}) { l.record("INFO", args...) }

// Warn records a warning message.
func (l *RecordingLogger) Warn(args ...interface{}) { l.record("WARN", args...) }

// Error records an error message.
func (l *RecordingLogger) Error(args ...interface{}) { l.record("ERROR", args...) }

// Fatal records a fatal message. It does not exit.
func (l *RecordingLogger) Fatal(args ...interface{}) { l.record("FATAL", args...) }

// Panic records a panic message and panics.
func (l *RecordingLogger) Panic(args ...interface{}) {
	l.record("PANIC", args...)
	panic(fmt.Sprint(args...))
}
