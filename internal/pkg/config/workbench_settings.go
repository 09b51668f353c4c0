package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// WorkbenchSettings holds tunables of the encryption workbench
type WorkbenchSettings struct {
	// AllowAES192 additionally accepts 24-byte AES keys on import.
	AllowAES192       bool  `mapstructure:"allow_aes_192"`
	DefaultRSAKeySize int   `mapstructure:"default_rsa_key_size" validate:"oneof=1024 2048 4096"`
	MaxBodyBytes      int64 `mapstructure:"max_body_bytes" validate:"gte=1024,lte=10485760"`
}

// DefaultWorkbenchSettings returns AES-128/256 only, 2048-bit RSA and a 1 MiB request body limit.
func DefaultWorkbenchSettings() *WorkbenchSettings {
	return &WorkbenchSettings{
		AllowAES192:       false,
		DefaultRSAKeySize: 2048,
		MaxBodyBytes:      1 << 20,
	}
}

// Validate checks that all fields in WorkbenchSettings are valid
func (s *WorkbenchSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for WorkbenchSettings: %w", err)
	}

	return nil
}
