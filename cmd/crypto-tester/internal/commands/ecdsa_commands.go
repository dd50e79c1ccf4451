package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MGTheTrain/crypto-tester/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/crypto-tester/internal/pkg/console"

	"github.com/spf13/cobra"
)

// ErrSignatureInvalid is returned by the verify command when the signature does not match
var ErrSignatureInvalid = errors.New("signature invalid")

// ECDSACommandHandler verifies signatures produced by a signature test run
type ECDSACommandHandler struct{}

// NewECDSACommandHandler creates a new ECDSACommandHandler
func NewECDSACommandHandler() *ECDSACommandHandler {
	return &ECDSACommandHandler{}
}

// VerifyECDSACmd verifies a base64 signature of a message against a PEM encoded public key file
func (commandHandler *ECDSACommandHandler) VerifyECDSACmd(cmd *cobra.Command, _ []string) error {
	publicKeyPath, err := cmd.Flags().GetString("public-key")
	if err != nil {
		return fmt.Errorf("invalid public-key flag: %w", err)
	}
	message, err := cmd.Flags().GetString("message")
	if err != nil {
		return fmt.Errorf("invalid message flag: %w", err)
	}
	signature, err := cmd.Flags().GetString("signature")
	if err != nil {
		return fmt.Errorf("invalid signature flag: %w", err)
	}

	settings, err := loadLoggerSettings(cmd)
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

	publicKeyPEM, err := os.ReadFile(filepath.Clean(publicKeyPath))
	if err != nil {
		return fmt.Errorf("unable to read public key file: %w", err)
	}

	publicKey, err := ecdsaProcessor.DecodePublicKeyFromPEM(string(publicKeyPEM))
	if err != nil {
		return err
	}

	valid, err := ecdsaProcessor.VerifyString(message, signature, publicKey)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	styles := console.NewStyles(out, settings.Tester.NoColor)
	if !valid {
		_, _ = fmt.Fprintln(out, styles.Failure.Render("Signature invalid for message"))
		return fmt.Errorf("%w: %w", ErrAlreadyReported, ErrSignatureInvalid)
	}

	_, _ = fmt.Fprintln(out, styles.Success.Render("Signature valid for message"))
	loggerInstance.Info("Signature valid for public key ", publicKeyPath)
	return nil
}

// InitECDSACommands registers ECDSA-related commands
func InitECDSACommands(rootCmd *cobra.Command) error {
	handler := NewECDSACommandHandler()

	var verifyECDSASignatureCmd = &cobra.Command{
		Use:   "verify",
		Short: "Verify a base64 ECDSA signature of a message",
		Args:  cobra.NoArgs,
		RunE:  handler.VerifyECDSACmd,
	}
	verifyECDSASignatureCmd.Flags().StringP("public-key", "", "", "Path to PEM encoded ECDSA public key")
	verifyECDSASignatureCmd.Flags().StringP("message", "", "", "Message that was signed, e.g. the challenge")
	verifyECDSASignatureCmd.Flags().StringP("signature", "", "", "Base64 encoded signature")
	verifyECDSASignatureCmd.Flags().BoolP(flagNoColor, "", false, "Disable coloured output")
	if err := verifyECDSASignatureCmd.MarkFlagRequired("public-key"); err != nil {
		return fmt.Errorf("failed to mark public-key flag required: %w", err)
	}
	if err := verifyECDSASignatureCmd.MarkFlagRequired("signature"); err != nil {
		return fmt.Errorf("failed to mark signature flag required: %w", err)
	}
	rootCmd.AddCommand(verifyECDSASignatureCmd)

	return nil
}
