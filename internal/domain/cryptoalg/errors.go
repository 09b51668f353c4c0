package cryptoalg

import "errors"

// Key and input errors indicate material the caller can correct and retry.
var (
	// ErrKeyImport indicates malformed or incompatible key material.
	ErrKeyImport = errors.New("key import failed")

	// ErrMalformedInput indicates invalid Base64 or PEM structure, or a truncated blob.
	ErrMalformedInput = errors.New("malformed input")

	// ErrPlaintextTooLarge indicates a message exceeding the RSA-OAEP capacity of the key.
	ErrPlaintextTooLarge = errors.New("plaintext too large for key")
)

// Cipher errors indicate a ciphertext that could not be opened.
var (
	// ErrAuthentication indicates an AES-GCM tag that did not verify.
	ErrAuthentication = errors.New("message authentication failed")

	// ErrDecryption indicates an RSA-OAEP decryption failure.
	ErrDecryption = errors.New("decryption failed")
)

// Parameter errors indicate unsupported request parameters.
var (
	// ErrUnsupportedKeySize indicates a key size outside the supported set.
	ErrUnsupportedKeySize = errors.New("unsupported key size")

	// ErrUnsupportedAlgorithm indicates an unknown digest algorithm.
	ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")

	// ErrInvalidPolicy indicates a password policy that cannot produce a password.
	ErrInvalidPolicy = errors.New("invalid password policy")
)
