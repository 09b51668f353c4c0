//go:build unit
// +build unit

package cryptography

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/MGTheTrain/crypto-workbench/internal/domain/cryptoalg"
	"github.com/MGTheTrain/crypto-workbench/internal/pkg/encoding"
	"github.com/MGTheTrain/crypto-workbench/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	// 32 zero bytes
	zeroKey256 = "AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA="
	// 24 zero bytes
	zeroKey192 = "AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"
	// 16 zero bytes
	zeroKey128 = "AAAAAAAAAAAAAAAAAAAAAA=="
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("entropy exhausted")
}

func setupAESGCMCodec(t *testing.T, opts ...Option) cryptoalg.AESGCMCodec {
	t.Helper()
	logger := testutil.SetupTestLogger(t)
	codec, err := NewAESGCMCodec(logger, opts...)
	require.NoError(t, err)
	return codec
}

func TestAESGCMCodec(t *testing.T) {
	codec := setupAESGCMCodec(t)

	t.Run("EncryptDecryptHello", func(t *testing.T) {
		key, err := codec.ImportKey(zeroKey256)
		require.NoError(t, err)
		assert.Equal(t, cryptoalg.AESKeySize256, key.Size())

		blob, err := codec.Encrypt(key, "hello")
		require.NoError(t, err)

		plaintext, err := codec.Decrypt(key, blob)
		require.NoError(t, err)
		assert.Equal(t, "hello", plaintext)
	})

	t.Run("RoundTripAcrossKeySizesAndMessages", func(t *testing.T) {
		messages := []string{"", "a", "This is a test message.", "héllo wörld ✓", strings.Repeat("z", 10000)}
		for _, encodedKey := range []string{zeroKey128, zeroKey256} {
			key, err := codec.ImportKey(encodedKey)
			require.NoError(t, err)

			for _, message := range messages {
				blob, err := codec.Encrypt(key, message)
				require.NoError(t, err)

				decrypted, err := codec.Decrypt(key, blob)
				require.NoError(t, err)
				assert.Equal(t, message, decrypted)
			}
		}
	})

	t.Run("BlobLayout", func(t *testing.T) {
		key, err := codec.ImportKey(zeroKey128)
		require.NoError(t, err)

		blob, err := codec.Encrypt(key, "hello")
		require.NoError(t, err)

		raw, err := encoding.Base64ToBytes(blob)
		require.NoError(t, err)
		assert.Len(t, raw, cryptoalg.NonceSize+len("hello")+16)
	})

	t.Run("EmptyPlaintextIsNonceAndTag", func(t *testing.T) {
		key, err := codec.ImportKey(zeroKey256)
		require.NoError(t, err)

		blob, err := codec.Encrypt(key, "")
		require.NoError(t, err)

		raw, err := encoding.Base64ToBytes(blob)
		require.NoError(t, err)
		assert.Len(t, raw, cryptoalg.NonceSize+16)

		plaintext, err := codec.Decrypt(key, blob)
		require.NoError(t, err)
		assert.Empty(t, plaintext)
	})

	t.Run("RepeatedEncryptionUsesFreshNonces", func(t *testing.T) {
		key, err := codec.ImportKey(zeroKey256)
		require.NoError(t, err)

		seen := make(map[string]struct{})
		for i := 0; i < 20; i++ {
			blob, err := codec.Encrypt(key, "same message")
			require.NoError(t, err)
			_, dup := seen[blob]
			assert.False(t, dup, "ciphertext repeated")
			seen[blob] = struct{}{}

			plaintext, err := codec.Decrypt(key, blob)
			require.NoError(t, err)
			assert.Equal(t, "same message", plaintext)
		}
	})

	t.Run("TamperingAfterNonceFailsAuthentication", func(t *testing.T) {
		key, err := codec.ImportKey(zeroKey256)
		require.NoError(t, err)

		blob, err := codec.Encrypt(key, "attack at dawn")
		require.NoError(t, err)
		raw, err := encoding.Base64ToBytes(blob)
		require.NoError(t, err)

		for i := cryptoalg.NonceSize; i < len(raw); i++ {
			tampered := bytes.Clone(raw)
			tampered[i] ^= 0x01

			plaintext, err := codec.Decrypt(key, encoding.BytesToBase64(tampered))
			assert.ErrorIs(t, err, cryptoalg.ErrAuthentication, "byte %d", i)
			assert.Empty(t, plaintext)
		}
	})

	t.Run("TamperedNonceFailsAuthentication", func(t *testing.T) {
		key, err := codec.ImportKey(zeroKey256)
		require.NoError(t, err)

		blob, err := codec.Encrypt(key, "attack at dawn")
		require.NoError(t, err)
		raw, err := encoding.Base64ToBytes(blob)
		require.NoError(t, err)
		raw[0] ^= 0x80

		_, err = codec.Decrypt(key, encoding.BytesToBase64(raw))
		assert.ErrorIs(t, err, cryptoalg.ErrAuthentication)
	})

	t.Run("DecryptWithWrongKey", func(t *testing.T) {
		key, err := codec.ImportKey(zeroKey256)
		require.NoError(t, err)
		wrongKey, err := codec.ImportKey(encoding.BytesToBase64(bytes.Repeat([]byte{1}, 32)))
		require.NoError(t, err)

		blob, err := codec.Encrypt(key, "Test decryption with wrong key.")
		require.NoError(t, err)

		_, err = codec.Decrypt(wrongKey, blob)
		assert.ErrorIs(t, err, cryptoalg.ErrAuthentication)
	})

	t.Run("DecryptMalformedInput", func(t *testing.T) {
		key, err := codec.ImportKey(zeroKey256)
		require.NoError(t, err)

		for _, blob := range []string{"not base64!", encoding.BytesToBase64([]byte("short")), ""} {
			_, err := codec.Decrypt(key, blob)
			assert.ErrorIs(t, err, cryptoalg.ErrMalformedInput, blob)
		}
	})

	t.Run("NonceOnlyBlobFailsAuthentication", func(t *testing.T) {
		key, err := codec.ImportKey(zeroKey256)
		require.NoError(t, err)

		_, err = codec.Decrypt(key, encoding.BytesToBase64(make([]byte, cryptoalg.NonceSize)))
		assert.ErrorIs(t, err, cryptoalg.ErrAuthentication)
	})

	t.Run("NilKey", func(t *testing.T) {
		_, err := codec.Encrypt(nil, "hello")
		assert.Error(t, err)
		_, err = codec.Decrypt(nil, "AAAA")
		assert.Error(t, err)
	})
}

func TestAESGCMCodec_ImportKey(t *testing.T) {
	codec := setupAESGCMCodec(t)

	tests := []struct {
		name    string
		key     string
		wantErr bool
	}{
		{"128-bit key", zeroKey128, false},
		{"256-bit key", zeroKey256, false},
		{"24 zero bytes rejected", zeroKey192, true},
		// 35 'A' + '=' decodes to 26 bytes
		{"26 bytes rejected", "AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA=", true},
		{"short key rejected", encoding.BytesToBase64([]byte("shortkey")), true},
		{"empty key rejected", "", true},
		{"invalid base64 rejected", "%%%%", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := codec.ImportKey(tt.key)
			if tt.wantErr {
				assert.ErrorIs(t, err, cryptoalg.ErrKeyImport)
				assert.Nil(t, key)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, key)
		})
	}
}

func TestAESGCMCodec_ImportKeyReportsReason(t *testing.T) {
	codec := setupAESGCMCodec(t)

	_, err := codec.ImportKey(zeroKey192)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "128 or 256 bits")
	assert.Contains(t, err.Error(), "got 192 bits")
}

func TestAESGCMCodec_WithAES192(t *testing.T) {
	codec := setupAESGCMCodec(t, WithAES192())

	key, err := codec.ImportKey(zeroKey192)
	require.NoError(t, err)
	assert.Equal(t, cryptoalg.AESKeySize192, key.Size())

	blob, err := codec.Encrypt(key, "hello")
	require.NoError(t, err)
	plaintext, err := codec.Decrypt(key, blob)
	require.NoError(t, err)
	assert.Equal(t, "hello", plaintext)
}

func TestAESGCMCodec_RandomFailure(t *testing.T) {
	codec := setupAESGCMCodec(t, WithRandom(failingReader{}))

	key, err := codec.ImportKey(zeroKey256)
	require.NoError(t, err)

	blob, err := codec.Encrypt(key, "hello")
	assert.Error(t, err)
	assert.Empty(t, blob)
}

func TestAESGCMCodec_ConcurrentUse(t *testing.T) {
	codec := setupAESGCMCodec(t)
	key, err := codec.ImportKey(zeroKey256)
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make(chan error, 32)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			blob, err := codec.Encrypt(key, "concurrent")
			if err != nil {
				errs <- err
				return
			}
			plaintext, err := codec.Decrypt(key, blob)
			if err == nil && plaintext != "concurrent" {
				err = errors.New("unexpected plaintext")
			}
			if err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
}

func TestNewAESGCMCodec_NilLogger(t *testing.T) {
	_, err := NewAESGCMCodec(nil)
	assert.Error(t, err)
}
