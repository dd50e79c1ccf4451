package commands

import (
	"fmt"
	"strings"

	"github.com/MGTheTrain/crypto-tester/internal/pkg/config"

	"github.com/spf13/cobra"
)

// NewRootCommand builds the crypto-tester command tree.
func NewRootCommand() (*cobra.Command, error) {
	return newRootCommand(NewSignatureTestCommandHandler())
}

func newRootCommand(handler *SignatureTestCommandHandler) (*cobra.Command, error) {
	rootCmd := &cobra.Command{
		Use:   "crypto-tester",
		Short: "ECDSA signature test tool",
		Long: `crypto-tester generates an ECDSA key pair, signs crypto-secure random challenge data
and prints the challenge, the signature and both keys in PEM format, timing every step.

Settings can also be given in a YAML/JSON file (--config) or through environment
variables prefixed with CRYPTO_TESTER_, e.g. CRYPTO_TESTER_TESTER_CURVE_SIZE=256.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringP(flagConfig, "", "", "Path to a config file")
	rootCmd.PersistentFlags().StringP(flagLogLevel, "", "", "Log level ("+strings.Join(config.LogLevels, ", ")+"), default "+config.DefaultLoggerSettings().LogLevel)

	if err := InitSignatureTestCommand(rootCmd, handler); err != nil {
		return nil, fmt.Errorf("failed to initialize signature test command: %w", err)
	}

	if err := InitECDSACommands(rootCmd); err != nil {
		return nil, fmt.Errorf("failed to initialize ECDSA commands: %w", err)
	}

	return rootCmd, nil
}
