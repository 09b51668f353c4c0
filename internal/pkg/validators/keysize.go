// Package validators registers the workbench's custom go-playground validation tags.
package validators

import (
	"strings"

	"github.com/MGTheTrain/crypto-workbench/internal/domain/cryptoalg"

	"github.com/go-playground/validator/v10"
)

// Tag names usable in `validate` struct tags once registered through New.
const (
	TagRSAKeySize = "rsakeysize"
	TagDigestAlg  = "digestalg"
)

// New returns a validator with the workbench tags registered.
func New() *validator.Validate {
	validate := validator.New()
	// Registration only fails for empty tags or nil functions.
	_ = validate.RegisterValidation(TagRSAKeySize, RSAKeySizeValidation)
	_ = validate.RegisterValidation(TagDigestAlg, DigestAlgorithmValidation)
	return validate
}

// RSAKeySizeValidation accepts the RSA modulus sizes offered by the workbench.
func RSAKeySizeValidation(fl validator.FieldLevel) bool {
	switch fl.Field().Int() {
	case cryptoalg.RSAKeySize1024, cryptoalg.RSAKeySize2048, cryptoalg.RSAKeySize4096:
		return true
	default:
		return false
	}
}

// DigestAlgorithmValidation accepts SHA-1, SHA-256, SHA-384 and SHA-512 in any letter case.
func DigestAlgorithmValidation(fl validator.FieldLevel) bool {
	switch strings.ToUpper(fl.Field().String()) {
	case cryptoalg.DigestSHA1, cryptoalg.DigestSHA256, cryptoalg.DigestSHA384, cryptoalg.DigestSHA512:
		return true
	default:
		return false
	}
}
