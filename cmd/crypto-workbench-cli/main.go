// Package main is the entry point for the crypto-workbench-cli application.
// It registers the AES-GCM, RSA-OAEP and utility sub-commands and executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	commands "github.com/MGTheTrain/crypto-workbench/cmd/crypto-workbench-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := newRootCmd()

	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "crypto-workbench-cli",
		Short: "Encryption workbench CLI tool",
		Long: `crypto-workbench-cli encrypts and decrypts short text messages.
Supports AES-GCM with Base64 shared keys and RSA-OAEP (SHA-256) with PEM key pairs.
Also generates random keys and passwords and computes SHA digests.

Results are printed to stdout, diagnostics are logged to stderr.`,
	}
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	if err := commands.InitAESCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize AES commands: %w", err)
	}

	if err := commands.InitRSACommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize RSA commands: %w", err)
	}

	if err := commands.InitUtilCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize utility commands: %w", err)
	}

	return nil
}

// init sets up any necessary initialization before main runs.
func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
