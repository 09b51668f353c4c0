package workbench

import (
	"context"

	"github.com/MGTheTrain/crypto-workbench/internal/domain/cryptoalg"
)

// Service defines the workbench operations offered to the CLI and REST front-ends.
// Every method fails with the context error when ctx is already done.
type Service interface {
	// GenerateSymmetricKey returns size random bytes as Base64 and hex.
	GenerateSymmetricKey(ctx context.Context, size int) (cryptoalg.GeneratedKey, error)

	// EncryptSymmetric imports the Base64 AES key and seals plaintext into a Base64 AES-GCM blob.
	EncryptSymmetric(ctx context.Context, base64Key, plaintext string) (string, error)

	// DecryptSymmetric imports the Base64 AES key and opens a blob produced by EncryptSymmetric.
	DecryptSymmetric(ctx context.Context, base64Key, blob string) (string, error)

	// GenerateKeyPair creates an RSA key pair. A modulusBits of zero selects the configured default.
	GenerateKeyPair(ctx context.Context, modulusBits int) (cryptoalg.AsymmetricKeyPair, error)

	// EncryptAsymmetric encrypts message for the PEM encoded public key.
	EncryptAsymmetric(ctx context.Context, publicKeyPEM, message string) (string, error)

	// DecryptAsymmetric decrypts a Base64 blob with the PEM encoded private key.
	DecryptAsymmetric(ctx context.Context, privateKeyPEM, blob string) (string, error)

	// Digest hashes data with the named SHA algorithm.
	Digest(ctx context.Context, algorithm string, data []byte) (string, error)

	// GeneratePassword draws a password according to policy.
	GeneratePassword(ctx context.Context, policy cryptoalg.PasswordPolicy) (string, error)
}
