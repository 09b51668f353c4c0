package cryptography

import (
	"crypto/aes"
	"crypto/cipher"
	"errors"
	"fmt"
	"io"

	"github.com/MGTheTrain/crypto-workbench/internal/domain/cryptoalg"
	"github.com/MGTheTrain/crypto-workbench/internal/pkg/encoding"
	"github.com/MGTheTrain/crypto-workbench/internal/pkg/logger"
)

// aesGCMCodec struct that implements the AESGCMCodec interface
type aesGCMCodec struct {
	logger      logger.Logger
	random      io.Reader
	allowAES192 bool
}

// NewAESGCMCodec creates and returns a new instance of aesGCMCodec
func NewAESGCMCodec(logger logger.Logger, opts ...Option) (cryptoalg.AESGCMCodec, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	o := newOptions(opts)
	return &aesGCMCodec{
		logger:      logger,
		random:      o.random,
		allowAES192: o.allowAES192,
	}, nil
}

// ImportKey decodes a Base64 shared key and prepares an AES-GCM cipher for it.
// Only 16 and 32 byte keys are accepted unless the codec was built WithAES192.
func (a *aesGCMCodec) ImportKey(base64Key string) (*cryptoalg.SymmetricKey, error) {
	raw, err := encoding.Base64ToBytes(base64Key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cryptoalg.ErrKeyImport, err)
	}

	if !a.acceptsKeyLength(len(raw)) {
		return nil, fmt.Errorf("%w: AES key data must be %s bits, got %d bits",
			cryptoalg.ErrKeyImport, a.acceptedBits(), len(raw)*8)
	}

	block, err := aes.NewCipher(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cryptoalg.ErrKeyImport, err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cryptoalg.ErrKeyImport, err)
	}

	a.logger.Debug("Imported AES-GCM key of ", len(raw)*8, " bits")
	return cryptoalg.NewSymmetricKey(gcm, len(raw)), nil
}

// Encrypt seals plaintext under a fresh 12-byte nonce and returns Base64(nonce || ciphertext || tag).
func (a *aesGCMCodec) Encrypt(key *cryptoalg.SymmetricKey, plaintext string) (string, error) {
	if key == nil {
		return "", errors.New("symmetric key cannot be nil")
	}

	nonce := make([]byte, cryptoalg.NonceSize, cryptoalg.NonceSize+len(plaintext)+key.AEAD().Overhead())
	if _, err := io.ReadFull(a.random, nonce); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}

	sealed := key.AEAD().Seal(nonce, nonce, []byte(plaintext), nil)

	a.logger.Debug("AES-GCM encryption succeeded")
	return encoding.BytesToBase64(sealed), nil
}

// Decrypt opens Base64(nonce || ciphertext || tag). The first 12 bytes are always the nonce.
func (a *aesGCMCodec) Decrypt(key *cryptoalg.SymmetricKey, blob string) (string, error) {
	if key == nil {
		return "", errors.New("symmetric key cannot be nil")
	}

	data, err := encoding.Base64ToBytes(blob)
	if err != nil {
		return "", fmt.Errorf("%w: %w", cryptoalg.ErrMalformedInput, err)
	}

	if len(data) < cryptoalg.NonceSize {
		return "", fmt.Errorf("%w: ciphertext of %d bytes is shorter than the %d byte nonce",
			cryptoalg.ErrMalformedInput, len(data), cryptoalg.NonceSize)
	}

	nonce, ciphertext := data[:cryptoalg.NonceSize], data[cryptoalg.NonceSize:]
	plaintext, err := key.AEAD().Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", cryptoalg.ErrAuthentication
	}

	a.logger.Debug("AES-GCM decryption succeeded")
	return encoding.BytesToText(plaintext), nil
}

func (a *aesGCMCodec) acceptsKeyLength(n int) bool {
	switch n {
	case cryptoalg.AESKeySize128, cryptoalg.AESKeySize256:
		return true
	case cryptoalg.AESKeySize192:
		return a.allowAES192
	default:
		return false
	}
}

func (a *aesGCMCodec) acceptedBits() string {
	if a.allowAES192 {
		return "128, 192 or 256"
	}
	return "128 or 256"
}
