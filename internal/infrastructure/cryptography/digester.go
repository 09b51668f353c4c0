package cryptography

import (
	"crypto/sha1" // #nosec G505 -- SHA-1 is offered for checksums, not signatures
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
	"strings"

	"github.com/MGTheTrain/crypto-workbench/internal/domain/cryptoalg"
	"github.com/MGTheTrain/crypto-workbench/internal/pkg/encoding"
)

var digestAlgorithms = map[string]func() hash.Hash{
	cryptoalg.DigestSHA1:   sha1.New,
	cryptoalg.DigestSHA256: sha256.New,
	cryptoalg.DigestSHA384: sha512.New384,
	cryptoalg.DigestSHA512: sha512.New,
}

type digester struct{}

// NewDigester creates a Digester over the SHA family
func NewDigester() cryptoalg.Digester {
	return digester{}
}

// Digest hashes data and returns the lowercase hex digest. Algorithm names are case-insensitive.
func (digester) Digest(algorithm string, data []byte) (string, error) {
	newHash, ok := digestAlgorithms[strings.ToUpper(algorithm)]
	if !ok {
		return "", fmt.Errorf("%w: %q", cryptoalg.ErrUnsupportedAlgorithm, algorithm)
	}

	h := newHash()
	h.Write(data)
	return encoding.BytesToHex(h.Sum(nil)), nil
}
