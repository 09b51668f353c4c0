package cryptography

import (
	"errors"
	"fmt"
	"io"

	"github.com/MGTheTrain/crypto-workbench/internal/domain/cryptoalg"
	"github.com/MGTheTrain/crypto-workbench/internal/pkg/encoding"
	"github.com/MGTheTrain/crypto-workbench/internal/pkg/logger"
)

type keyGenerator struct {
	logger logger.Logger
	random io.Reader
}

// NewKeyGenerator creates a generator of random key material
func NewKeyGenerator(logger logger.Logger, opts ...Option) (cryptoalg.KeyGenerator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	o := newOptions(opts)
	return &keyGenerator{logger: logger, random: o.random}, nil
}

// Generate returns size random bytes as Base64 and hex.
func (g *keyGenerator) Generate(size int) (cryptoalg.GeneratedKey, error) {
	if size <= 0 || size > cryptoalg.MaxGeneratedKeySize {
		return cryptoalg.GeneratedKey{}, fmt.Errorf("%w: key length must be between 1 and %d bytes, got %d",
			cryptoalg.ErrUnsupportedKeySize, cryptoalg.MaxGeneratedKeySize, size)
	}

	key := make([]byte, size)
	if _, err := io.ReadFull(g.random, key); err != nil {
		return cryptoalg.GeneratedKey{}, fmt.Errorf("failed to generate key: %w", err)
	}

	g.logger.Debug("Generated random key of ", size, " bytes")
	return cryptoalg.GeneratedKey{
		Base64: encoding.BytesToBase64(key),
		Hex:    encoding.BytesToHex(key),
		Size:   size,
	}, nil
}
