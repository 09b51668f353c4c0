package cryptoalg

import "crypto/cipher"

// SymmetricKey is an imported AES-GCM key. It is only obtained through AESGCMCodec.ImportKey
// and is usable for both encryption and decryption.
type SymmetricKey struct {
	aead cipher.AEAD
	size int
}

// NewSymmetricKey wraps a prepared AEAD. Codec implementations use it after validating key material.
func NewSymmetricKey(aead cipher.AEAD, size int) *SymmetricKey {
	return &SymmetricKey{aead: aead, size: size}
}

// AEAD returns the prepared cipher.
func (k *SymmetricKey) AEAD() cipher.AEAD {
	return k.aead
}

// Size returns the raw key length in bytes.
func (k *SymmetricKey) Size() int {
	return k.size
}

// AESGCMCodec handles AES-GCM symmetric encryption of text messages.
// Ciphertext blobs are Base64 of a 12-byte nonce followed by the sealed message and tag.
type AESGCMCodec interface {
	// ImportKey decodes a Base64 shared key and prepares it for AES-GCM.
	// Returns ErrKeyImport if the key is not valid Base64 or has a rejected length.
	ImportKey(base64Key string) (*SymmetricKey, error)

	// Encrypt seals plaintext under a fresh random nonce and returns the Base64 blob.
	Encrypt(key *SymmetricKey, plaintext string) (string, error)

	// Decrypt opens a Base64 blob produced by Encrypt.
	// Returns ErrMalformedInput for undecodable or truncated blobs and ErrAuthentication
	// when the tag does not verify.
	Decrypt(key *SymmetricKey, blob string) (string, error)
}
