package cryptography

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"github.com/MGTheTrain/crypto-workbench/internal/domain/cryptoalg"
)

type passwordGenerator struct {
	random io.Reader
}

// NewPasswordGenerator creates a PasswordGenerator drawing uniformly from the policy alphabet
func NewPasswordGenerator(opts ...Option) cryptoalg.PasswordGenerator {
	return &passwordGenerator{random: newOptions(opts).random}
}

// Generate draws policy.Length characters from the enabled character sets.
func (g *passwordGenerator) Generate(policy cryptoalg.PasswordPolicy) (string, error) {
	alphabet := []rune(policy.Alphabet())
	if len(alphabet) == 0 {
		return "", fmt.Errorf("%w: enable at least one character set", cryptoalg.ErrInvalidPolicy)
	}
	if policy.Length <= 0 || policy.Length > cryptoalg.MaxPasswordLength {
		return "", fmt.Errorf("%w: length must be between 1 and %d, got %d",
			cryptoalg.ErrInvalidPolicy, cryptoalg.MaxPasswordLength, policy.Length)
	}

	size := big.NewInt(int64(len(alphabet)))
	password := make([]rune, policy.Length)
	for i := range password {
		n, err := rand.Int(g.random, size)
		if err != nil {
			return "", fmt.Errorf("failed to generate password: %w", err)
		}
		password[i] = alphabet[n.Int64()]
	}

	return string(password), nil
}
