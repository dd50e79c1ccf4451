// Package main is the entry point for the crypto-tester application.
// It builds the command tree and runs it with a context cancelled on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/MGTheTrain/crypto-tester/cmd/crypto-tester/internal/commands"
)

func main() {
	if err := run(); err != nil {
		if !errors.Is(err, commands.ErrAlreadyReported) {
			log.Printf("Error: %v", err)
		}
		os.Exit(1)
	}
}

func run() error {
	rootCmd, err := commands.NewRootCommand()
	if err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// init sets up any necessary initialization before main runs.
func init() {
	// Set log flags for better error messages
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	// Ensure proper exit codes on errors
	log.SetOutput(os.Stderr)
}
