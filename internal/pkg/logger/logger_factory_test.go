//go:build unit
// +build unit

package logger

import (
	"log/slog"
	"path/filepath"
	"sync"
	"testing"

	"github.com/MGTheTrain/crypto-tester/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetLoggerSingleton() {
	loggerInstance = nil
	loggerErr = nil
	loggerOnce = sync.Once{}
}

func TestInitLogger(t *testing.T) {
	defaults := config.DefaultLoggerSettings()

	tests := []struct {
		name     string
		settings config.LoggerSettings
		logFile  bool
		wantErr  string
	}{
		{
			name:     "defaults keep the report quiet",
			settings: defaults,
		},
		{
			name:     "console logger at debug level",
			settings: config.LoggerSettings{LogLevel: config.LogLevelDebug, LogType: config.LogTypeConsole},
		},
		{
			name: "rotating file logger",
			settings: config.LoggerSettings{
				LogLevel:   config.LogLevelInfo,
				LogType:    config.LogTypeFile,
				MaxSize:    1,
				MaxBackups: 2,
				MaxAge:     7,
			},
			logFile: true,
		},
		{
			name:     "unknown level",
			settings: config.LoggerSettings{LogLevel: "verbose", LogType: config.LogTypeConsole},
			wantErr:  "invalid config",
		},
		{
			name:     "unknown type",
			settings: config.LoggerSettings{LogLevel: config.LogLevelInfo, LogType: "syslog"},
			wantErr:  "invalid config",
		},
		{
			name:     "file logger without rotation limits",
			settings: config.LoggerSettings{LogLevel: config.LogLevelInfo, LogType: config.LogTypeFile, FilePath: "crypto-tester.log"},
			wantErr:  "invalid config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Cleanup(resetLoggerSingleton)

			settings := tt.settings
			if tt.logFile {
				settings.FilePath = filepath.Join(t.TempDir(), "crypto-tester.log")
			}

			err := InitLogger(&settings)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				instance, getErr := GetLogger()
				assert.Error(t, getErr)
				assert.Nil(t, instance)
				return
			}
			require.NoError(t, err)

			instance, err := GetLogger()
			require.NoError(t, err)

			if tt.logFile {
				instance.Warn("signature test run started")
				assert.FileExists(t, settings.FilePath)
			}
		})
	}
}

func TestGetLogger_BeforeInit(t *testing.T) {
	t.Cleanup(resetLoggerSingleton)

	instance, err := GetLogger()
	require.Error(t, err)
	assert.Nil(t, instance)
	assert.Contains(t, err.Error(), "not initialized")
}

func TestInitLogger_FirstSettingsWin(t *testing.T) {
	t.Cleanup(resetLoggerSingleton)

	require.NoError(t, InitLogger(&config.LoggerSettings{LogLevel: config.LogLevelWarning, LogType: config.LogTypeConsole}))
	first, err := GetLogger()
	require.NoError(t, err)

	// a second command in the same process must not replace the logger
	require.NoError(t, InitLogger(&config.LoggerSettings{LogLevel: "verbose", LogType: "syslog"}))
	second, err := GetLogger()
	require.NoError(t, err)

	assert.Same(t, first, second)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		level    string
		expected slog.Level
	}{
		{config.LogLevelDebug, slog.LevelDebug},
		{config.LogLevelInfo, slog.LevelInfo},
		{config.LogLevelWarning, slog.LevelWarn},
		{config.LogLevelError, slog.LevelError},
		{config.LogLevelCritical, slog.LevelError},
		{"unknown", slog.LevelInfo}, // default case
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			result := parseLevel(tt.level)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestFormatArgs(t *testing.T) {
	tests := []struct {
		name     string
		args     []interface{}
		expected string
	}{
		{"no args", nil, ""},
		{"message only", []interface{}{"Generated EC key pair"}, "Generated EC key pair"},
		{"message and value", []interface{}{"Starting signature test run ", "3f1c"}, "Starting signature test run 3f1c"},
		{"adjacent operands", []interface{}{384, 32}, "384 32"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := formatArgs(tt.args...)
			assert.Equal(t, tt.expected, result)
		})
	}
}
