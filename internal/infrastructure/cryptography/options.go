package cryptography

import (
	"crypto/rand"
	"io"
)

// Option configures a codec or generator.
type Option func(*options)

type options struct {
	random      io.Reader
	allowAES192 bool
}

func newOptions(opts []Option) *options {
	o := &options{random: rand.Reader}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithRandom replaces the secure random source. The reader must be safe for concurrent use.
func WithRandom(r io.Reader) Option {
	return func(o *options) {
		if r != nil {
			o.random = r
		}
	}
}

// WithAES192 makes AES-GCM key import accept 24-byte keys in addition to 16 and 32 bytes.
func WithAES192() Option {
	return func(o *options) {
		o.allowAES192 = true
	}
}
