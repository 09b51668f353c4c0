package cryptoalg

// GeneratedKey is random key material in both text encodings.
type GeneratedKey struct {
	Base64 string
	Hex    string
	Size   int
}

// KeyGenerator produces random symmetric key material.
type KeyGenerator interface {
	// Generate returns size random bytes encoded as Base64 and hex.
	Generate(size int) (GeneratedKey, error)
}

// Digester computes message digests.
type Digester interface {
	// Digest hashes data with the named algorithm (SHA-1, SHA-256, SHA-384, SHA-512)
	// and returns the lowercase hex digest.
	Digest(algorithm string, data []byte) (string, error)
}

// Default password character sets.
const (
	CharsetLower   = "abcdefghijklmnopqrstuvwxyz"
	CharsetUpper   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	CharsetDigits  = "0123456789"
	CharsetSymbols = "!@#$%^&*()_+~[]{}|;:,.<>?"
)

// PasswordPolicy selects the character sets a password is drawn from.
type PasswordPolicy struct {
	Length  int
	Lower   bool
	Upper   bool
	Digits  bool
	Symbols bool
	// Extra characters are added to the alphabet when non-empty.
	Extra string
}

// DefaultPasswordPolicy returns a 12 character policy with all default classes enabled.
func DefaultPasswordPolicy() PasswordPolicy {
	return PasswordPolicy{
		Length:  12,
		Lower:   true,
		Upper:   true,
		Digits:  true,
		Symbols: true,
	}
}

// Alphabet returns the union of the enabled character sets.
func (p PasswordPolicy) Alphabet() string {
	var alphabet string
	if p.Lower {
		alphabet += CharsetLower
	}
	if p.Upper {
		alphabet += CharsetUpper
	}
	if p.Digits {
		alphabet += CharsetDigits
	}
	if p.Symbols {
		alphabet += CharsetSymbols
	}
	return alphabet + p.Extra
}

// PasswordGenerator produces random passwords.
type PasswordGenerator interface {
	Generate(policy PasswordPolicy) (string, error)
}
