package cryptoalg

import "crypto/rsa"

// AsymmetricKeyPair is a generated RSA key pair exported as PEM text.
// The public key is SPKI (label PUBLIC), the private key PKCS#8 (label PRIVATE).
type AsymmetricKeyPair struct {
	PublicKeyPEM  string
	PrivateKeyPEM string
	KeySize       int
}

// RSAOAEPCodec handles RSA-OAEP (SHA-256) encryption of short text messages.
// RSA can only encrypt messages up to the key size minus the OAEP overhead.
type RSAOAEPCodec interface {
	// GenerateKeyPair generates an RSA key pair with the given modulus size (1024, 2048 or 4096 bits).
	GenerateKeyPair(modulusBits int) (AsymmetricKeyPair, error)

	// ImportPublicKey parses a PEM-wrapped SPKI public key.
	ImportPublicKey(pemText string) (*rsa.PublicKey, error)

	// ImportPrivateKey parses a PEM-wrapped PKCS#8 private key.
	ImportPrivateKey(pemText string) (*rsa.PrivateKey, error)

	// Encrypt encrypts message with the public key and returns Base64 ciphertext.
	// Returns ErrPlaintextTooLarge if the message exceeds the OAEP capacity of the key.
	Encrypt(publicKey *rsa.PublicKey, message string) (string, error)

	// Decrypt decrypts Base64 ciphertext with the private key.
	// Every padding or key mismatch is reported as ErrDecryption.
	Decrypt(privateKey *rsa.PrivateKey, blob string) (string, error)
}
