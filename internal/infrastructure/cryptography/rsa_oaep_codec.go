package cryptography

import (
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"errors"
	"fmt"
	"io"

	"github.com/MGTheTrain/crypto-workbench/internal/domain/cryptoalg"
	"github.com/MGTheTrain/crypto-workbench/internal/pkg/encoding"
	"github.com/MGTheTrain/crypto-workbench/internal/pkg/logger"
)

// oaepOverhead is the OAEP padding cost in bytes for SHA-256: two hash lengths plus two.
const oaepOverhead = 2*sha256.Size + 2

// rsaOAEPCodec struct that implements the RSAOAEPCodec interface
type rsaOAEPCodec struct {
	logger logger.Logger
	random io.Reader
}

// NewRSAOAEPCodec creates and returns a new instance of rsaOAEPCodec
func NewRSAOAEPCodec(logger logger.Logger, opts ...Option) (cryptoalg.RSAOAEPCodec, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	o := newOptions(opts)
	return &rsaOAEPCodec{
		logger: logger,
		random: o.random,
	}, nil
}

// GenerateKeyPair generates an RSA key pair with public exponent 65537 and exports it as
// PEM-wrapped SPKI (PUBLIC) and PKCS#8 (PRIVATE).
func (r *rsaOAEPCodec) GenerateKeyPair(modulusBits int) (cryptoalg.AsymmetricKeyPair, error) {
	switch modulusBits {
	case cryptoalg.RSAKeySize1024, cryptoalg.RSAKeySize2048, cryptoalg.RSAKeySize4096:
	default:
		return cryptoalg.AsymmetricKeyPair{}, fmt.Errorf("%w: RSA modulus must be 1024, 2048 or 4096 bits, got %d",
			cryptoalg.ErrUnsupportedKeySize, modulusBits)
	}

	privateKey, err := rsa.GenerateKey(r.random, modulusBits)
	if err != nil {
		return cryptoalg.AsymmetricKeyPair{}, fmt.Errorf("failed to generate RSA keys: %w", err)
	}

	publicDER, err := x509.MarshalPKIXPublicKey(&privateKey.PublicKey)
	if err != nil {
		return cryptoalg.AsymmetricKeyPair{}, fmt.Errorf("failed to marshal public key: %w", err)
	}

	privateDER, err := x509.MarshalPKCS8PrivateKey(privateKey)
	if err != nil {
		return cryptoalg.AsymmetricKeyPair{}, fmt.Errorf("failed to marshal private key: %w", err)
	}

	r.logger.Debug("Generated RSA key pair of ", modulusBits, " bits")
	return cryptoalg.AsymmetricKeyPair{
		PublicKeyPEM:  encoding.ToPem(encoding.BytesToBase64(publicDER), cryptoalg.PemLabelPublic),
		PrivateKeyPEM: encoding.ToPem(encoding.BytesToBase64(privateDER), cryptoalg.PemLabelPrivate),
		KeySize:       modulusBits,
	}, nil
}

// ImportPublicKey parses a PEM-wrapped SPKI RSA public key.
func (r *rsaOAEPCodec) ImportPublicKey(pemText string) (*rsa.PublicKey, error) {
	der, err := pemBodyBytes(pemText)
	if err != nil {
		return nil, err
	}

	parsed, err := x509.ParsePKIXPublicKey(der)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cryptoalg.ErrKeyImport, err)
	}

	publicKey, ok := parsed.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: public key is not of type RSA", cryptoalg.ErrKeyImport)
	}

	return publicKey, nil
}

// ImportPrivateKey parses a PEM-wrapped PKCS#8 RSA private key.
func (r *rsaOAEPCodec) ImportPrivateKey(pemText string) (*rsa.PrivateKey, error) {
	der, err := pemBodyBytes(pemText)
	if err != nil {
		return nil, err
	}

	parsed, err := x509.ParsePKCS8PrivateKey(der)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cryptoalg.ErrKeyImport, err)
	}

	privateKey, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("%w: private key is not of type RSA", cryptoalg.ErrKeyImport)
	}

	return privateKey, nil
}

// Encrypt encrypts message using RSA-OAEP (SHA-256) and returns Base64 ciphertext.
// The message may be at most keyBytes - 66 bytes long.
func (r *rsaOAEPCodec) Encrypt(publicKey *rsa.PublicKey, message string) (string, error) {
	if publicKey == nil {
		return "", errors.New("public key cannot be nil")
	}

	capacity := MaxOAEPMessageSize(publicKey)
	if len(message) > capacity {
		return "", fmt.Errorf("%w: message of %d bytes exceeds the %d byte capacity of a %d-bit key",
			cryptoalg.ErrPlaintextTooLarge, len(message), capacity, publicKey.N.BitLen())
	}

	ciphertext, err := rsa.EncryptOAEP(sha256.New(), r.random, publicKey, []byte(message), nil)
	if err != nil {
		if errors.Is(err, rsa.ErrMessageTooLong) {
			return "", fmt.Errorf("%w: %w", cryptoalg.ErrPlaintextTooLarge, err)
		}
		return "", fmt.Errorf("failed to encrypt data: %w", err)
	}

	r.logger.Debug("RSA-OAEP encryption succeeded")
	return encoding.BytesToBase64(ciphertext), nil
}

// Decrypt decrypts Base64 RSA-OAEP ciphertext. Any padding or key mismatch yields
// ErrDecryption without further detail.
func (r *rsaOAEPCodec) Decrypt(privateKey *rsa.PrivateKey, blob string) (string, error) {
	if privateKey == nil {
		return "", errors.New("private key cannot be nil")
	}

	ciphertext, err := encoding.Base64ToBytes(blob)
	if err != nil {
		return "", fmt.Errorf("%w: %w", cryptoalg.ErrMalformedInput, err)
	}

	plaintext, err := rsa.DecryptOAEP(sha256.New(), r.random, privateKey, ciphertext, nil)
	if err != nil {
		return "", cryptoalg.ErrDecryption
	}

	r.logger.Debug("RSA-OAEP decryption succeeded")
	return encoding.BytesToText(plaintext), nil
}

// MaxOAEPMessageSize returns the largest message in bytes that publicKey can encrypt with OAEP/SHA-256.
func MaxOAEPMessageSize(publicKey *rsa.PublicKey) int {
	capacity := publicKey.Size() - oaepOverhead
	if capacity < 0 {
		return 0
	}
	return capacity
}

func pemBodyBytes(pemText string) ([]byte, error) {
	body := encoding.FromPem(pemText)
	if body == "" {
		return nil, fmt.Errorf("%w: PEM body is empty", cryptoalg.ErrKeyImport)
	}

	der, err := encoding.Base64ToBytes(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cryptoalg.ErrKeyImport, err)
	}
	return der, nil
}
