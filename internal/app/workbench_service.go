package app

import (
	"context"
	"errors"

	"github.com/MGTheTrain/crypto-workbench/internal/domain/cryptoalg"
	"github.com/MGTheTrain/crypto-workbench/internal/domain/workbench"
	"github.com/MGTheTrain/crypto-workbench/internal/pkg/config"
	"github.com/MGTheTrain/crypto-workbench/internal/pkg/logger"
)

// workbenchService implements the workbench.Service interface on top of the platform codecs
type workbenchService struct {
	codecs            Codecs
	defaultRSAKeySize int
	logger            logger.Logger
}

// NewWorkbenchService creates a new workbenchService instance
func NewWorkbenchService(codecs Codecs, settings *config.WorkbenchSettings, logger logger.Logger) (workbench.Service, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if settings == nil {
		return nil, errors.New("workbench settings cannot be nil")
	}
	if codecs.AES == nil || codecs.RSA == nil || codecs.Keys == nil || codecs.Digester == nil || codecs.Passwords == nil {
		return nil, errors.New("all codecs must be set")
	}

	return &workbenchService{
		codecs:            codecs,
		defaultRSAKeySize: settings.DefaultRSAKeySize,
		logger:            logger,
	}, nil
}

// GenerateSymmetricKey returns size random bytes as Base64 and hex
func (s *workbenchService) GenerateSymmetricKey(ctx context.Context, size int) (cryptoalg.GeneratedKey, error) {
	if err := ctx.Err(); err != nil {
		return cryptoalg.GeneratedKey{}, err
	}

	key, err := s.codecs.Keys.Generate(size)
	if err != nil {
		s.logger.Warn("Symmetric key generation failed: ", err)
		return cryptoalg.GeneratedKey{}, err
	}

	s.logger.Info("Generated symmetric key of ", size, " bytes")
	return key, nil
}

// EncryptSymmetric imports the key and seals plaintext with AES-GCM
func (s *workbenchService) EncryptSymmetric(ctx context.Context, base64Key, plaintext string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	key, err := s.codecs.AES.ImportKey(base64Key)
	if err != nil {
		s.logger.Warn("AES key import failed: ", err)
		return "", err
	}

	blob, err := s.codecs.AES.Encrypt(key, plaintext)
	if err != nil {
		s.logger.Warn("AES-GCM encryption failed: ", err)
		return "", err
	}

	s.logger.Info("AES-GCM encryption succeeded with a ", key.Size()*8, "-bit key")
	return blob, nil
}

// DecryptSymmetric imports the key and opens an AES-GCM blob
func (s *workbenchService) DecryptSymmetric(ctx context.Context, base64Key, blob string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	key, err := s.codecs.AES.ImportKey(base64Key)
	if err != nil {
		s.logger.Warn("AES key import failed: ", err)
		return "", err
	}

	plaintext, err := s.codecs.AES.Decrypt(key, blob)
	if err != nil {
		s.logger.Warn("AES-GCM decryption failed: ", err)
		return "", err
	}

	s.logger.Info("AES-GCM decryption succeeded with a ", key.Size()*8, "-bit key")
	return plaintext, nil
}

// GenerateKeyPair creates an RSA key pair, falling back to the configured modulus when modulusBits is zero
func (s *workbenchService) GenerateKeyPair(ctx context.Context, modulusBits int) (cryptoalg.AsymmetricKeyPair, error) {
	if err := ctx.Err(); err != nil {
		return cryptoalg.AsymmetricKeyPair{}, err
	}

	if modulusBits == 0 {
		modulusBits = s.defaultRSAKeySize
	}

	pair, err := s.codecs.RSA.GenerateKeyPair(modulusBits)
	if err != nil {
		s.logger.Warn("RSA key pair generation failed: ", err)
		return cryptoalg.AsymmetricKeyPair{}, err
	}

	s.logger.Info("Generated RSA key pair of ", pair.KeySize, " bits")
	return pair, nil
}

// EncryptAsymmetric imports the public key and encrypts message with RSA-OAEP
func (s *workbenchService) EncryptAsymmetric(ctx context.Context, publicKeyPEM, message string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	publicKey, err := s.codecs.RSA.ImportPublicKey(publicKeyPEM)
	if err != nil {
		s.logger.Warn("RSA public key import failed: ", err)
		return "", err
	}

	blob, err := s.codecs.RSA.Encrypt(publicKey, message)
	if err != nil {
		s.logger.Warn("RSA-OAEP encryption failed: ", err)
		return "", err
	}

	s.logger.Info("RSA-OAEP encryption succeeded")
	return blob, nil
}

// DecryptAsymmetric imports the private key and decrypts an RSA-OAEP blob
func (s *workbenchService) DecryptAsymmetric(ctx context.Context, privateKeyPEM, blob string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	privateKey, err := s.codecs.RSA.ImportPrivateKey(privateKeyPEM)
	if err != nil {
		s.logger.Warn("RSA private key import failed: ", err)
		return "", err
	}

	plaintext, err := s.codecs.RSA.Decrypt(privateKey, blob)
	if err != nil {
		s.logger.Warn("RSA-OAEP decryption failed: ", err)
		return "", err
	}

	s.logger.Info("RSA-OAEP decryption succeeded")
	return plaintext, nil
}

// Digest hashes data with the named algorithm
func (s *workbenchService) Digest(ctx context.Context, algorithm string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	digest, err := s.codecs.Digester.Digest(algorithm, data)
	if err != nil {
		s.logger.Warn("Digest failed: ", err)
		return "", err
	}

	s.logger.Info("Computed ", algorithm, " digest over ", len(data), " bytes")
	return digest, nil
}

// GeneratePassword draws a password according to policy
func (s *workbenchService) GeneratePassword(ctx context.Context, policy cryptoalg.PasswordPolicy) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	password, err := s.codecs.Passwords.Generate(policy)
	if err != nil {
		s.logger.Warn("Password generation failed: ", err)
		return "", err
	}

	s.logger.Info("Generated password of length ", policy.Length)
	return password, nil
}
