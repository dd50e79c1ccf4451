package commands

import (
	"errors"
	"fmt"

	"github.com/MGTheTrain/crypto-tester/internal/pkg/config"
	"github.com/MGTheTrain/crypto-tester/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// ErrAlreadyReported wraps failures that were already printed to the console.
var ErrAlreadyReported = errors.New("failure already reported")

// Flag names shared between commands
const (
	flagConfig          = "config"
	flagLogLevel        = "log-level"
	flagCurveSize       = "curve-size"
	flagChallengeLength = "challenge-length"
	flagPause           = "pause"
	flagNoColor         = "no-color"
	flagVerify          = "verify"
)

// flagBindings maps settings keys to the flags that override them
var flagBindings = map[string]string{
	"logger.log_level":         flagLogLevel,
	"tester.curve_size":        flagCurveSize,
	"tester.challenge_length":  flagChallengeLength,
	"tester.pause_before_exit": flagPause,
	"tester.no_color":          flagNoColor,
	"tester.verify_signature":  flagVerify,
}

func setupLogger(settings *config.LoggerSettings) (logger.Logger, error) {
	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// loadSettings merges defaults, the optional config file, environment and the flags defined on cmd
// and validates every section.
func loadSettings(cmd *cobra.Command) (*config.Settings, error) {
	settings, err := readSettings(cmd)
	if err != nil {
		return nil, err
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("failed to load settings: invalid configuration: %w", err)
	}
	return settings, nil
}

// loadLoggerSettings is loadSettings for commands that ignore the tester section.
func loadLoggerSettings(cmd *cobra.Command) (*config.Settings, error) {
	settings, err := readSettings(cmd)
	if err != nil {
		return nil, err
	}
	if err := settings.Logger.Validate(); err != nil {
		return nil, fmt.Errorf("failed to load settings: invalid configuration: %w", err)
	}
	return settings, nil
}

func readSettings(cmd *cobra.Command) (*config.Settings, error) {
	v := config.NewViper()

	for key, name := range flagBindings {
		flag := cmd.Flags().Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
		}
	}

	configFile, err := cmd.Flags().GetString(flagConfig)
	if err != nil {
		configFile = ""
	}

	settings, err := config.Read(v, configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return settings, nil
}
