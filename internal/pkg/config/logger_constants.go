package config

// Log levels accepted by logger.log_level and --log-level.
// critical is an alias for error; slog has no level above it.
const (
	LogLevelDebug    = "debug"
	LogLevelInfo     = "info"
	LogLevelWarning  = "warning"
	LogLevelError    = "error"
	LogLevelCritical = "critical"
)

// LogLevels lists the log levels from most to least verbose.
var LogLevels = []string{LogLevelDebug, LogLevelInfo, LogLevelWarning, LogLevelError, LogLevelCritical}

// Log sinks: console writes text to stderr, file writes rotated JSON.
const (
	LogTypeConsole = "console"
	LogTypeFile    = "file"
)
