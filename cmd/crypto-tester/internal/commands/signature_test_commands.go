package commands

import (
	"fmt"
	"io"

	"github.com/MGTheTrain/crypto-tester/internal/app"
	"github.com/MGTheTrain/crypto-tester/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/crypto-tester/internal/pkg/clock"
	"github.com/MGTheTrain/crypto-tester/internal/pkg/config"
	"github.com/MGTheTrain/crypto-tester/internal/pkg/console"

	"github.com/spf13/cobra"
)

const pausePrompt = "Press any key to exit..."

var bannerLines = []string{
	"Welcome to crypto-tester",
	"Generates an ECDSA key pair, signs secure random data and prints the keys in PEM format.",
	"",
	"Let's start",
}

// SignatureTestCommandHandler runs the signature test when the root command is invoked.
type SignatureTestCommandHandler struct {
	clock  clock.Clock
	random io.Reader
}

// NewSignatureTestCommandHandler creates a handler using the system clock and crypto/rand.
func NewSignatureTestCommandHandler() *SignatureTestCommandHandler {
	return &SignatureTestCommandHandler{clock: clock.RealClock{}}
}

// RunSignatureTestCmd performs one signature test run and optionally waits for a key press afterwards.
func (commandHandler *SignatureTestCommandHandler) RunSignatureTestCmd(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	loggerInstance, err := setupLogger(&settings.Logger)
	if err != nil {
		return err
	}

	ecdsaProcessor, err := cryptography.NewECDSAProcessor(loggerInstance)
	if err != nil {
		return fmt.Errorf("failed to create ECDSA processor: %w", err)
	}

	challengeGenerator, err := cryptography.NewChallengeGenerator(commandHandler.random, loggerInstance)
	if err != nil {
		return fmt.Errorf("failed to create challenge generator: %w", err)
	}

	out := cmd.OutOrStdout()
	printer := console.NewPrinter(out, console.NewStyles(out, settings.Tester.NoColor), commandHandler.clock)

	runner, err := app.NewSignatureTestRunner(ecdsaProcessor, challengeGenerator, settings.Tester, printer, loggerInstance)
	if err != nil {
		return fmt.Errorf("failed to create signature test runner: %w", err)
	}

	printer.Banner(bannerLines...)
	_, runErr := runner.Run(cmd.Context())

	if settings.Tester.PauseBeforeExit {
		if err := printer.Pause(cmd.InOrStdin(), pausePrompt); err != nil {
			loggerInstance.Warn("pause before exit interrupted: ", err)
		}
	}

	if runErr != nil {
		return fmt.Errorf("%w: %w", ErrAlreadyReported, runErr)
	}
	return nil
}

// InitSignatureTestCommand makes the root command run the signature test
func InitSignatureTestCommand(rootCmd *cobra.Command, handler *SignatureTestCommandHandler) error {
	if handler == nil {
		return fmt.Errorf("signature test command handler cannot be nil")
	}

	rootCmd.RunE = handler.RunSignatureTestCmd
	rootCmd.Args = cobra.NoArgs

	rootCmd.Flags().IntP(flagCurveSize, "", config.DefaultCurveSize, "ECDSA curve size in bits (224, 256, 384 or 521)")
	rootCmd.Flags().IntP(flagChallengeLength, "", config.DefaultChallengeLength, "Number of random bytes in the challenge")
	rootCmd.Flags().BoolP(flagPause, "", false, "Wait for a key press before exiting")
	rootCmd.Flags().BoolP(flagNoColor, "", false, "Disable coloured output")
	rootCmd.Flags().BoolP(flagVerify, "", true, "Verify the signature with the decoded public key")

	return nil
}
