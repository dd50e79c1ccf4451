package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable override, e.g. CRYPTO_TESTER_TESTER_CURVE_SIZE.
const EnvPrefix = "CRYPTO_TESTER"

// Settings is the root of the application configuration
type Settings struct {
	Tester TesterSettings `mapstructure:"tester"`
	Logger LoggerSettings `mapstructure:"logger"`
}

// Validate checks every settings section
func (s *Settings) Validate() error {
	if err := s.Tester.Validate(); err != nil {
		return err
	}
	return s.Logger.Validate()
}

// NewViper creates a viper instance with defaults and environment overrides registered.
// Flags are bound by the caller before Load is invoked.
func NewViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the settings like Read and validates every section.
func Load(v *viper.Viper, configFile string) (*Settings, error) {
	settings, err := Read(v, configFile)
	if err != nil {
		return nil, err
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return settings, nil
}

// Read loads the optional config file and unmarshals everything into Settings without validating it.
// Commands that only need some sections validate those themselves.
func Read(v *viper.Viper, configFile string) (*Settings, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &settings, nil
}

// setDefaults registers every key so that environment variables can override it during Unmarshal.
func setDefaults(v *viper.Viper) {
	tester := DefaultTesterSettings()
	v.SetDefault("tester.curve_size", tester.CurveSize)
	v.SetDefault("tester.challenge_length", tester.ChallengeLength)
	v.SetDefault("tester.challenge_prefix", tester.ChallengePrefix)
	v.SetDefault("tester.verify_signature", tester.VerifySignature)
	v.SetDefault("tester.pause_before_exit", tester.PauseBeforeExit)
	v.SetDefault("tester.no_color", tester.NoColor)

	logger := DefaultLoggerSettings()
	v.SetDefault("logger.log_level", logger.LogLevel)
	v.SetDefault("logger.log_type", logger.LogType)
	v.SetDefault("logger.file_path", logger.FilePath)
	v.SetDefault("logger.max_size", logger.MaxSize)
	v.SetDefault("logger.max_backups", logger.MaxBackups)
	v.SetDefault("logger.max_age", logger.MaxAge)
}
