package config

import (
	"fmt"

	"github.com/MGTheTrain/crypto-tester/internal/pkg/validators"
)

// Defaults for a signature test run
const (
	DefaultCurveSize       = 384
	DefaultChallengeLength = 32
	DefaultChallengePrefix = "auth-"
)

// TesterSettings controls what the signature test run generates and how the console behaves afterwards
type TesterSettings struct {
	CurveSize       int    `mapstructure:"curve_size" validate:"curvesize"`
	ChallengeLength int    `mapstructure:"challenge_length" validate:"min=1,max=1024"`
	ChallengePrefix string `mapstructure:"challenge_prefix" validate:"max=64"`
	VerifySignature bool   `mapstructure:"verify_signature"`
	PauseBeforeExit bool   `mapstructure:"pause_before_exit"`
	NoColor         bool   `mapstructure:"no_color"`
}

// DefaultTesterSettings returns the settings used when nothing is configured
func DefaultTesterSettings() TesterSettings {
	return TesterSettings{
		CurveSize:       DefaultCurveSize,
		ChallengeLength: DefaultChallengeLength,
		ChallengePrefix: DefaultChallengePrefix,
		VerifySignature: true,
	}
}

// Validate checks that all fields in TesterSettings are valid
func (s *TesterSettings) Validate() error {
	validate, err := validators.New()
	if err != nil {
		return fmt.Errorf("failed to create validator: %w", err)
	}

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for TesterSettings: %w", err)
	}

	return nil
}
