package commands

import (
	"fmt"

	"github.com/MGTheTrain/crypto-workbench/internal/app"
	"github.com/MGTheTrain/crypto-workbench/internal/domain/workbench"
	"github.com/MGTheTrain/crypto-workbench/internal/pkg/config"
	"github.com/MGTheTrain/crypto-workbench/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// AESCommandHandler encapsulates logic for handling AES-GCM operations via CLI.
type AESCommandHandler struct {
	logger logger.Logger
}

// NewAESCommandHandler initializes and returns an AESCommandHandler instance with a configured logger.
func NewAESCommandHandler() (*AESCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &AESCommandHandler{
		logger: loggerInstance,
	}, nil
}

// service builds the workbench service honoring the --allow-aes-192 flag of cmd
func (commandHandler *AESCommandHandler) service(cmd *cobra.Command) (workbench.Service, error) {
	settings := config.DefaultWorkbenchSettings()
	if allow, err := cmd.Flags().GetBool("allow-aes-192"); err == nil {
		settings.AllowAES192 = allow
	}
	return newWorkbenchService(settings, commandHandler.logger)
}

// GenerateAESKeyCmd prints random key material as Base64 and hex
func (commandHandler *AESCommandHandler) GenerateAESKeyCmd(cmd *cobra.Command, _ []string) {
	keySize, err := cmd.Flags().GetInt("key-size")
	if err != nil {
		commandHandler.logger.Error("invalid key-size flag ", err)
		return
	}

	service, err := commandHandler.service(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	key, err := service.GenerateSymmetricKey(cmd.Context(), keySize)
	if err != nil {
		commandHandler.logger.Error(app.Describe(workbench.OpKeyGeneration, err))
		return
	}

	printResult(cmd.OutOrStdout(), "Base64", key.Base64)
	printResult(cmd.OutOrStdout(), "Hex", key.Hex)
}

// EncryptAESCmd encrypts a message with a Base64 AES key and prints the Base64 blob
func (commandHandler *AESCommandHandler) EncryptAESCmd(cmd *cobra.Command, _ []string) {
	key, err := secretFlag(cmd, "key", "Enter Base64 AES key: ")
	if err != nil {
		commandHandler.logger.Error("invalid key flag ", err)
		return
	}
	message, err := cmd.Flags().GetString("message")
	if err != nil {
		commandHandler.logger.Error("invalid message flag ", err)
		return
	}

	service, err := commandHandler.service(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	blob, err := service.EncryptSymmetric(cmd.Context(), key, message)
	if err != nil {
		commandHandler.logger.Error(app.Describe(workbench.OpEncryption, err))
		return
	}

	printResult(cmd.OutOrStdout(), "Ciphertext", blob)
}

// DecryptAESCmd decrypts a Base64 blob with a Base64 AES key and prints the message
func (commandHandler *AESCommandHandler) DecryptAESCmd(cmd *cobra.Command, _ []string) {
	key, err := secretFlag(cmd, "key", "Enter Base64 AES key: ")
	if err != nil {
		commandHandler.logger.Error("invalid key flag ", err)
		return
	}
	ciphertext, err := cmd.Flags().GetString("ciphertext")
	if err != nil {
		commandHandler.logger.Error("invalid ciphertext flag ", err)
		return
	}

	service, err := commandHandler.service(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	plaintext, err := service.DecryptSymmetric(cmd.Context(), key, ciphertext)
	if err != nil {
		commandHandler.logger.Error(app.Describe(workbench.OpDecryption, err))
		return
	}

	printResult(cmd.OutOrStdout(), "Plaintext", plaintext)
}

// InitAESCommands registers AES-related commands
func InitAESCommands(rootCmd *cobra.Command) error {
	handler, err := NewAESCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create AES command handler %w", err)
	}

	var generateAESKeyCmd = &cobra.Command{
		Use:   "generate-aes-key",
		Short: "Generate a random AES key",
		Run:   handler.GenerateAESKeyCmd,
	}
	generateAESKeyCmd.Flags().IntP("key-size", "", 32, "Key size in bytes (16 for AES-128, 32 for AES-256)")
	rootCmd.AddCommand(generateAESKeyCmd)

	var encryptAESCmd = &cobra.Command{
		Use:   "encrypt-aes",
		Short: "Encrypt a message using AES-GCM",
		Run:   handler.EncryptAESCmd,
	}
	encryptAESCmd.Flags().StringP("key", "", "", "Base64 encoded AES key; prompted for when omitted on a terminal")
	encryptAESCmd.Flags().StringP("message", "", "", "Message to encrypt")
	encryptAESCmd.Flags().Bool("allow-aes-192", false, "Also accept 24-byte keys")
	rootCmd.AddCommand(encryptAESCmd)

	var decryptAESCmd = &cobra.Command{
		Use:   "decrypt-aes",
		Short: "Decrypt a Base64 ciphertext using AES-GCM",
		Run:   handler.DecryptAESCmd,
	}
	decryptAESCmd.Flags().StringP("key", "", "", "Base64 encoded AES key; prompted for when omitted on a terminal")
	decryptAESCmd.Flags().StringP("ciphertext", "", "", "Base64 ciphertext produced by encrypt-aes")
	decryptAESCmd.Flags().Bool("allow-aes-192", false, "Also accept 24-byte keys")
	rootCmd.AddCommand(decryptAESCmd)

	return nil
}
