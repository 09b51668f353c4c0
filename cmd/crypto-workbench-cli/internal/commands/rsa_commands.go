package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/MGTheTrain/crypto-workbench/internal/app"
	"github.com/MGTheTrain/crypto-workbench/internal/domain/workbench"
	"github.com/MGTheTrain/crypto-workbench/internal/pkg/config"
	"github.com/MGTheTrain/crypto-workbench/internal/pkg/logger"

	"github.com/briandowns/spinner"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// RSACommandHandler encapsulates logic for handling RSA-OAEP operations via CLI.
type RSACommandHandler struct {
	service workbench.Service
	logger  logger.Logger
}

// NewRSACommandHandler initializes and returns an RSACommandHandler instance with
// configured logger and workbench service.
func NewRSACommandHandler() (*RSACommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	service, err := newWorkbenchService(config.DefaultWorkbenchSettings(), loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create workbench service: %w", err)
	}

	return &RSACommandHandler{
		service: service,
		logger:  loggerInstance,
	}, nil
}

// GenerateRSAKeysCmd generates an RSA key pair and prints it or persists it in a selected directory
func (commandHandler *RSACommandHandler) GenerateRSAKeysCmd(cmd *cobra.Command, _ []string) {
	keySize, err := cmd.Flags().GetInt("key-size")
	if err != nil {
		commandHandler.logger.Error("invalid key-size flag ", err)
		return
	}

	keyDir, err := cmd.Flags().GetString("key-dir")
	if err != nil {
		commandHandler.logger.Error("invalid key-dir flag ", err)
		return
	}

	// The spinner only renders when stderr is a terminal
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriterFile(os.Stderr))
	s.Suffix = fmt.Sprintf(" Generating %d-bit RSA key pair...", keySize)
	s.Start()
	pair, err := commandHandler.service.GenerateKeyPair(cmd.Context(), keySize)
	s.Stop()
	if err != nil {
		commandHandler.logger.Error(app.Describe(workbench.OpKeyGeneration, err))
		return
	}

	if keyDir == "" {
		printResult(cmd.OutOrStdout(), "Public key", pair.PublicKeyPEM)
		printResult(cmd.OutOrStdout(), "Private key", pair.PrivateKeyPEM)
		return
	}

	uniqueID := uuid.New()

	publicKeyFilePath := filepath.Join(keyDir, fmt.Sprintf("%s-public-key.pem", uniqueID.String()))
	if err := os.WriteFile(publicKeyFilePath, []byte(pair.PublicKeyPEM+"\n"), 0600); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	privateKeyFilePath := filepath.Join(keyDir, fmt.Sprintf("%s-private-key.pem", uniqueID.String()))
	if err := os.WriteFile(privateKeyFilePath, []byte(pair.PrivateKeyPEM+"\n"), 0600); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("RSA key pair saved to ", keyDir)
	printResult(cmd.OutOrStdout(), "Public key file", publicKeyFilePath)
	printResult(cmd.OutOrStdout(), "Private key file", privateKeyFilePath)
}

// EncryptRSACmd encrypts a message for the public key stored at --public-key
func (commandHandler *RSACommandHandler) EncryptRSACmd(cmd *cobra.Command, _ []string) {
	publicKeyPath, err := cmd.Flags().GetString("public-key")
	if err != nil {
		commandHandler.logger.Error("invalid public-key flag ", err)
		return
	}
	message, err := cmd.Flags().GetString("message")
	if err != nil {
		commandHandler.logger.Error("invalid message flag ", err)
		return
	}

	publicKeyPEM, err := os.ReadFile(filepath.Clean(publicKeyPath))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	blob, err := commandHandler.service.EncryptAsymmetric(cmd.Context(), string(publicKeyPEM), message)
	if err != nil {
		commandHandler.logger.Error(app.Describe(workbench.OpEncryption, err))
		return
	}

	printResult(cmd.OutOrStdout(), "Ciphertext", blob)
}

// DecryptRSACmd decrypts a Base64 ciphertext with the private key stored at --private-key
func (commandHandler *RSACommandHandler) DecryptRSACmd(cmd *cobra.Command, _ []string) {
	privateKeyPath, err := cmd.Flags().GetString("private-key")
	if err != nil {
		commandHandler.logger.Error("invalid private-key flag ", err)
		return
	}
	ciphertext, err := cmd.Flags().GetString("ciphertext")
	if err != nil {
		commandHandler.logger.Error("invalid ciphertext flag ", err)
		return
	}

	privateKeyPEM, err := os.ReadFile(filepath.Clean(privateKeyPath))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	plaintext, err := commandHandler.service.DecryptAsymmetric(cmd.Context(), string(privateKeyPEM), ciphertext)
	if err != nil {
		commandHandler.logger.Error(app.Describe(workbench.OpDecryption, err))
		return
	}

	printResult(cmd.OutOrStdout(), "Plaintext", plaintext)
}

// InitRSACommands registers RSA-related commands
func InitRSACommands(rootCmd *cobra.Command) error {
	handler, err := NewRSACommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create RSA command handler: %w", err)
	}

	var generateRSAKeysCmd = &cobra.Command{
		Use:   "generate-rsa-keys",
		Short: "Generate an RSA key pair",
		Run:   handler.GenerateRSAKeysCmd,
	}
	generateRSAKeysCmd.Flags().IntP("key-size", "", 2048, "RSA modulus size in bits (1024, 2048 or 4096)")
	generateRSAKeysCmd.Flags().StringP("key-dir", "", "", "Directory to store the RSA keys; keys are printed when empty")
	rootCmd.AddCommand(generateRSAKeysCmd)

	var encryptRSACmd = &cobra.Command{
		Use:   "encrypt-rsa",
		Short: "Encrypt a message using RSA-OAEP",
		Run:   handler.EncryptRSACmd,
	}
	encryptRSACmd.Flags().StringP("public-key", "", "", "Path to PEM encoded RSA public key")
	encryptRSACmd.Flags().StringP("message", "", "", "Message to encrypt")
	rootCmd.AddCommand(encryptRSACmd)

	var decryptRSACmd = &cobra.Command{
		Use:   "decrypt-rsa",
		Short: "Decrypt a Base64 ciphertext using RSA-OAEP",
		Run:   handler.DecryptRSACmd,
	}
	decryptRSACmd.Flags().StringP("private-key", "", "", "Path to PEM encoded RSA private key")
	decryptRSACmd.Flags().StringP("ciphertext", "", "", "Base64 ciphertext produced by encrypt-rsa")
	rootCmd.AddCommand(decryptRSACmd)

	return nil
}
