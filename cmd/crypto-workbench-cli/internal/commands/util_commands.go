package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MGTheTrain/crypto-workbench/internal/app"
	"github.com/MGTheTrain/crypto-workbench/internal/domain/cryptoalg"
	"github.com/MGTheTrain/crypto-workbench/internal/domain/workbench"
	"github.com/MGTheTrain/crypto-workbench/internal/pkg/config"
	"github.com/MGTheTrain/crypto-workbench/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// UtilCommandHandler handles the digest and password commands.
type UtilCommandHandler struct {
	service workbench.Service
	logger  logger.Logger
}

// NewUtilCommandHandler initializes and returns a UtilCommandHandler instance.
func NewUtilCommandHandler() (*UtilCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	service, err := newWorkbenchService(config.DefaultWorkbenchSettings(), loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create workbench service: %w", err)
	}

	return &UtilCommandHandler{
		service: service,
		logger:  loggerInstance,
	}, nil
}

// DigestCmd prints the hex digest of --message or the contents of --input-file
func (commandHandler *UtilCommandHandler) DigestCmd(cmd *cobra.Command, _ []string) {
	algorithm, err := cmd.Flags().GetString("algorithm")
	if err != nil {
		commandHandler.logger.Error("invalid algorithm flag ", err)
		return
	}
	message, err := cmd.Flags().GetString("message")
	if err != nil {
		commandHandler.logger.Error("invalid message flag ", err)
		return
	}
	inputFilePath, err := cmd.Flags().GetString("input-file")
	if err != nil {
		commandHandler.logger.Error("invalid input-file flag ", err)
		return
	}

	data := []byte(message)
	if inputFilePath != "" {
		if cmd.Flags().Changed("message") {
			commandHandler.logger.Error(errors.New("--message and --input-file are mutually exclusive"))
			return
		}
		data, err = os.ReadFile(filepath.Clean(inputFilePath))
		if err != nil {
			commandHandler.logger.Error(err)
			return
		}
	}

	digest, err := commandHandler.service.Digest(cmd.Context(), algorithm, data)
	if err != nil {
		commandHandler.logger.Error(app.Describe(workbench.OpDigest, err))
		return
	}

	printResult(cmd.OutOrStdout(), algorithm, digest)
}

// GeneratePasswordCmd prints a random password drawn from the selected character sets
func (commandHandler *UtilCommandHandler) GeneratePasswordCmd(cmd *cobra.Command, _ []string) {
	flags := cmd.Flags()

	var policy cryptoalg.PasswordPolicy
	var err error
	if policy.Length, err = flags.GetInt("length"); err != nil {
		commandHandler.logger.Error("invalid length flag ", err)
		return
	}
	if policy.Lower, err = flags.GetBool("lower"); err != nil {
		commandHandler.logger.Error("invalid lower flag ", err)
		return
	}
	if policy.Upper, err = flags.GetBool("upper"); err != nil {
		commandHandler.logger.Error("invalid upper flag ", err)
		return
	}
	if policy.Digits, err = flags.GetBool("digits"); err != nil {
		commandHandler.logger.Error("invalid digits flag ", err)
		return
	}
	if policy.Symbols, err = flags.GetBool("symbols"); err != nil {
		commandHandler.logger.Error("invalid symbols flag ", err)
		return
	}
	if policy.Extra, err = flags.GetString("extra"); err != nil {
		commandHandler.logger.Error("invalid extra flag ", err)
		return
	}

	password, err := commandHandler.service.GeneratePassword(cmd.Context(), policy)
	if err != nil {
		commandHandler.logger.Error(app.Describe(workbench.OpPasswordGeneration, err))
		return
	}

	printResult(cmd.OutOrStdout(), "Password", password)
}

// InitUtilCommands registers the digest and password commands
func InitUtilCommands(rootCmd *cobra.Command) error {
	handler, err := NewUtilCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create utility command handler: %w", err)
	}

	var digestCmd = &cobra.Command{
		Use:   "digest",
		Short: "Compute a SHA digest of a message or file",
		Run:   handler.DigestCmd,
	}
	digestCmd.Flags().StringP("algorithm", "", cryptoalg.DigestSHA256, "SHA-1, SHA-256, SHA-384 or SHA-512")
	digestCmd.Flags().StringP("message", "", "", "Message to hash")
	digestCmd.Flags().StringP("input-file", "", "", "Path to a file to hash instead of --message")
	rootCmd.AddCommand(digestCmd)

	defaults := cryptoalg.DefaultPasswordPolicy()
	var generatePasswordCmd = &cobra.Command{
		Use:   "generate-password",
		Short: "Generate a random password",
		Run:   handler.GeneratePasswordCmd,
	}
	generatePasswordCmd.Flags().IntP("length", "", defaults.Length, "Password length")
	generatePasswordCmd.Flags().Bool("lower", defaults.Lower, "Include lowercase letters")
	generatePasswordCmd.Flags().Bool("upper", defaults.Upper, "Include uppercase letters")
	generatePasswordCmd.Flags().Bool("digits", defaults.Digits, "Include digits")
	generatePasswordCmd.Flags().Bool("symbols", defaults.Symbols, "Include symbols")
	generatePasswordCmd.Flags().StringP("extra", "", "", "Additional characters to draw from")
	rootCmd.AddCommand(generatePasswordCmd)

	return nil
}
