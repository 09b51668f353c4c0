package cryptoalg

// AESKeySize128 is the 128-bit AES key size in bytes
const AESKeySize128 = 16

// AESKeySize192 is the 192-bit AES key size in bytes
const AESKeySize192 = 24

// AESKeySize256 is the 256-bit AES key size in bytes
const AESKeySize256 = 32

// NonceSize is the AES-GCM nonce length prepended to every sealed message.
const NonceSize = 12

// RSA modulus sizes offered by the workbench.
const (
	RSAKeySize1024 = 1024
	RSAKeySize2048 = 2048
	RSAKeySize4096 = 4096
)

// PEM labels used for exported RSA keys.
const (
	PemLabelPublic  = "PUBLIC"
	PemLabelPrivate = "PRIVATE"
)

// Digest algorithm names.
const (
	DigestSHA1   = "SHA-1"
	DigestSHA256 = "SHA-256"
	DigestSHA384 = "SHA-384"
	DigestSHA512 = "SHA-512"
)

// MaxGeneratedKeySize bounds random key generation in bytes.
const MaxGeneratedKeySize = 1024

// MaxPasswordLength bounds generated password length.
const MaxPasswordLength = 4096
