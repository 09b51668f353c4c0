package v1

import (
	"fmt"
	"strings"

	"github.com/MGTheTrain/crypto-workbench/internal/domain/cryptoalg"
	"github.com/MGTheTrain/crypto-workbench/internal/pkg/validators"
)

// GenerateAESKeyRequest represents the body for generating symmetric key material
type GenerateAESKeyRequest struct {
	// KeySize is the key length in bytes; zero selects 32
	KeySize int `json:"key_size" validate:"omitempty,gte=1,lte=1024"`
}

// Validate checks the request fields
func (r *GenerateAESKeyRequest) Validate() error {
	return validateStruct(r)
}

// SizeOrDefault returns the requested key length or 32 bytes
func (r *GenerateAESKeyRequest) SizeOrDefault() int {
	if r.KeySize == 0 {
		return cryptoalg.AESKeySize256
	}
	return r.KeySize
}

// AESEncryptRequest represents the body for AES-GCM encryption
type AESEncryptRequest struct {
	Key     string `json:"key" validate:"required"`
	Message string `json:"message"`
}

// Validate checks the request fields
func (r *AESEncryptRequest) Validate() error {
	return validateStruct(r)
}

// AESDecryptRequest represents the body for AES-GCM decryption
type AESDecryptRequest struct {
	Key        string `json:"key" validate:"required"`
	Ciphertext string `json:"ciphertext" validate:"required"`
}

// Validate checks the request fields
func (r *AESDecryptRequest) Validate() error {
	return validateStruct(r)
}

// GenerateRSAKeysRequest represents the body for RSA key pair generation
type GenerateRSAKeysRequest struct {
	// KeySize is the modulus in bits; zero selects the server default
	KeySize int `json:"key_size" validate:"omitempty,rsakeysize"`
}

// Validate checks the request fields
func (r *GenerateRSAKeysRequest) Validate() error {
	return validateStruct(r)
}

// RSAEncryptRequest represents the body for RSA-OAEP encryption
type RSAEncryptRequest struct {
	PublicKey string `json:"public_key" validate:"required"`
	Message   string `json:"message"`
}

// Validate checks the request fields
func (r *RSAEncryptRequest) Validate() error {
	return validateStruct(r)
}

// RSADecryptRequest represents the body for RSA-OAEP decryption
type RSADecryptRequest struct {
	PrivateKey string `json:"private_key" validate:"required"`
	Ciphertext string `json:"ciphertext" validate:"required"`
}

// Validate checks the request fields
func (r *RSADecryptRequest) Validate() error {
	return validateStruct(r)
}

// DigestRequest represents the body for hashing a message
type DigestRequest struct {
	Algorithm string `json:"algorithm" validate:"omitempty,digestalg"`
	Message   string `json:"message"`
}

// Validate checks the request fields
func (r *DigestRequest) Validate() error {
	return validateStruct(r)
}

// AlgorithmOrDefault returns the canonical algorithm name, SHA-256 when none was given
func (r *DigestRequest) AlgorithmOrDefault() string {
	if r.Algorithm == "" {
		return cryptoalg.DigestSHA256
	}
	return strings.ToUpper(r.Algorithm)
}

// PasswordRequest represents the password policy; omitted fields keep their defaults
type PasswordRequest struct {
	Length  int    `json:"length" validate:"omitempty,gte=1,lte=4096"`
	Lower   *bool  `json:"lower"`
	Upper   *bool  `json:"upper"`
	Digits  *bool  `json:"digits"`
	Symbols *bool  `json:"symbols"`
	Extra   string `json:"extra" validate:"max=256"`
}

// Validate checks the request fields
func (r *PasswordRequest) Validate() error {
	return validateStruct(r)
}

// Policy merges the request into the default password policy
func (r *PasswordRequest) Policy() cryptoalg.PasswordPolicy {
	policy := cryptoalg.DefaultPasswordPolicy()
	if r.Length != 0 {
		policy.Length = r.Length
	}
	if r.Lower != nil {
		policy.Lower = *r.Lower
	}
	if r.Upper != nil {
		policy.Upper = *r.Upper
	}
	if r.Digits != nil {
		policy.Digits = *r.Digits
	}
	if r.Symbols != nil {
		policy.Symbols = *r.Symbols
	}
	policy.Extra = r.Extra
	return policy
}

var validate = validators.New()

func validateStruct(s interface{}) error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// GeneratedKeyResponse represents random key material
type GeneratedKeyResponse struct {
	Base64 string `json:"base64"`
	Hex    string `json:"hex"`
	Size   int    `json:"size"`
}

// KeyPairResponse represents a PEM encoded RSA key pair
type KeyPairResponse struct {
	PublicKey  string `json:"public_key"`
	PrivateKey string `json:"private_key"`
	KeySize    int    `json:"key_size"`
}

// CiphertextResponse carries a Base64 ciphertext blob
type CiphertextResponse struct {
	Ciphertext string `json:"ciphertext"`
}

// PlaintextResponse carries a decrypted message
type PlaintextResponse struct {
	Plaintext string `json:"plaintext"`
}

// DigestResponse carries a hex digest
type DigestResponse struct {
	Algorithm string `json:"algorithm"`
	Digest    string `json:"digest"`
}

// PasswordResponse carries a generated password
type PasswordResponse struct {
	Password string `json:"password"`
}

// HealthResponse reports service liveness
type HealthResponse struct {
	Status string `json:"status"`
}

// ErrorResponse represents an error message
type ErrorResponse struct {
	Message string `json:"message"`
}
