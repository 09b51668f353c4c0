package app

import (
	"errors"
	"fmt"

	"github.com/MGTheTrain/crypto-workbench/internal/domain/cryptoalg"
	"github.com/MGTheTrain/crypto-workbench/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/crypto-workbench/internal/pkg/config"
	"github.com/MGTheTrain/crypto-workbench/internal/pkg/logger"
)

// Codecs bundles the cryptographic primitives the workbench service delegates to
type Codecs struct {
	AES       cryptoalg.AESGCMCodec
	RSA       cryptoalg.RSAOAEPCodec
	Keys      cryptoalg.KeyGenerator
	Digester  cryptoalg.Digester
	Passwords cryptoalg.PasswordGenerator
}

// NewCodecs builds the platform codecs according to settings.
// Extra options are applied to every codec, e.g. a custom random source.
func NewCodecs(settings *config.WorkbenchSettings, logger logger.Logger, opts ...cryptography.Option) (Codecs, error) {
	if settings == nil {
		return Codecs{}, errors.New("workbench settings cannot be nil")
	}

	aesOpts := opts
	if settings.AllowAES192 {
		aesOpts = append(append([]cryptography.Option{}, opts...), cryptography.WithAES192())
	}

	aesCodec, err := cryptography.NewAESGCMCodec(logger, aesOpts...)
	if err != nil {
		return Codecs{}, fmt.Errorf("failed to create AES-GCM codec: %w", err)
	}

	rsaCodec, err := cryptography.NewRSAOAEPCodec(logger, opts...)
	if err != nil {
		return Codecs{}, fmt.Errorf("failed to create RSA-OAEP codec: %w", err)
	}

	keyGenerator, err := cryptography.NewKeyGenerator(logger, opts...)
	if err != nil {
		return Codecs{}, fmt.Errorf("failed to create key generator: %w", err)
	}

	return Codecs{
		AES:       aesCodec,
		RSA:       rsaCodec,
		Keys:      keyGenerator,
		Digester:  cryptography.NewDigester(),
		Passwords: cryptography.NewPasswordGenerator(opts...),
	}, nil
}
