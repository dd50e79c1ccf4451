//go:build unit
// +build unit

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	settings, err := Load(NewViper(), "")
	require.NoError(t, err)

	assert.Equal(t, DefaultTesterSettings(), settings.Tester)
	assert.Equal(t, DefaultLoggerSettings(), settings.Logger)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("CRYPTO_TESTER_TESTER_CURVE_SIZE", "256")
	t.Setenv("CRYPTO_TESTER_TESTER_PAUSE_BEFORE_EXIT", "true")
	t.Setenv("CRYPTO_TESTER_LOGGER_LOG_LEVEL", "debug")

	settings, err := Load(NewViper(), "")
	require.NoError(t, err)

	assert.Equal(t, 256, settings.Tester.CurveSize)
	assert.True(t, settings.Tester.PauseBeforeExit)
	assert.Equal(t, LogLevelDebug, settings.Logger.LogLevel)
}

func TestLoad_ConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "crypto-tester.yaml")
	content := []byte(`tester:
  curve_size: 521
  challenge_length: 64
  challenge_prefix: "demo-"
  verify_signature: false
logger:
  log_level: info
  log_type: console
`)
	require.NoError(t, os.WriteFile(configFile, content, 0600))

	settings, err := Load(NewViper(), configFile)
	require.NoError(t, err)

	assert.Equal(t, 521, settings.Tester.CurveSize)
	assert.Equal(t, 64, settings.Tester.ChallengeLength)
	assert.Equal(t, "demo-", settings.Tester.ChallengePrefix)
	assert.False(t, settings.Tester.VerifySignature)
	assert.Equal(t, LogLevelInfo, settings.Logger.LogLevel)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing config file", func(t *testing.T) {
		_, err := Load(NewViper(), filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})

	t.Run("invalid curve size", func(t *testing.T) {
		t.Setenv("CRYPTO_TESTER_TESTER_CURVE_SIZE", "192")

		_, err := Load(NewViper(), "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid configuration")
	})

	t.Run("invalid log type", func(t *testing.T) {
		t.Setenv("CRYPTO_TESTER_LOGGER_LOG_TYPE", "syslog")

		_, err := Load(NewViper(), "")
		assert.Error(t, err)
	})
}

func TestRead_SkipsValidation(t *testing.T) {
	t.Setenv("CRYPTO_TESTER_TESTER_CURVE_SIZE", "192")

	settings, err := Read(NewViper(), "")
	require.NoError(t, err)
	assert.Equal(t, 192, settings.Tester.CurveSize)
	assert.NoError(t, settings.Logger.Validate())
	assert.Error(t, settings.Tester.Validate())
}
