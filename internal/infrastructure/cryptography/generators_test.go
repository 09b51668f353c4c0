//go:build unit
// +build unit

package cryptography

import (
	"encoding/hex"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/MGTheTrain/crypto-workbench/internal/domain/cryptoalg"
	"github.com/MGTheTrain/crypto-workbench/internal/pkg/encoding"
	"github.com/MGTheTrain/crypto-workbench/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyGenerator(t *testing.T) {
	logger := testutil.SetupTestLogger(t)
	generator, err := NewKeyGenerator(logger)
	require.NoError(t, err)

	t.Run("GeneratesBothEncodings", func(t *testing.T) {
		key, err := generator.Generate(cryptoalg.AESKeySize256)
		require.NoError(t, err)
		assert.Equal(t, cryptoalg.AESKeySize256, key.Size)

		raw, err := encoding.Base64ToBytes(key.Base64)
		require.NoError(t, err)
		assert.Len(t, raw, cryptoalg.AESKeySize256)
		assert.Equal(t, hex.EncodeToString(raw), key.Hex)
	})

	t.Run("GeneratedKeyImportsIntoAESGCM", func(t *testing.T) {
		codec, err := NewAESGCMCodec(logger)
		require.NoError(t, err)

		key, err := generator.Generate(cryptoalg.AESKeySize128)
		require.NoError(t, err)
		_, err = codec.ImportKey(key.Base64)
		assert.NoError(t, err)
	})

	t.Run("KeysDiffer", func(t *testing.T) {
		first, err := generator.Generate(16)
		require.NoError(t, err)
		second, err := generator.Generate(16)
		require.NoError(t, err)
		assert.NotEqual(t, first.Base64, second.Base64)
	})

	t.Run("RejectsSizes", func(t *testing.T) {
		for _, size := range []int{-1, 0, cryptoalg.MaxGeneratedKeySize + 1} {
			_, err := generator.Generate(size)
			assert.ErrorIs(t, err, cryptoalg.ErrUnsupportedKeySize, size)
		}
	})

	t.Run("RandomFailure", func(t *testing.T) {
		failing, err := NewKeyGenerator(logger, WithRandom(failingReader{}))
		require.NoError(t, err)
		_, err = failing.Generate(16)
		assert.Error(t, err)
	})
}

func TestDigester(t *testing.T) {
	digester := NewDigester()

	tests := []struct {
		algorithm string
		input     string
		expected  string
	}{
		{"SHA-1", "abc", "a9993e364706816aba3e25717850c26c9cd0d89d"},
		{"SHA-256", "abc", "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
		{"sha-256", "", "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
		{"SHA-384", "abc", "cb00753f45a35e8bb5a03d699ac65007272c32ab0eded1631a8b605a43ff5bed8086072ba1e7cc2358baeca134c825a7"},
		{"SHA-512", "abc", "ddaf35a193617abacc417349ae20413112e6fa4e89a97ea20a9eeee64b55d39a2192992a274fc1a836ba3c23a3feebbd454d4423643ce80e2a9ac94fa54ca49f"},
	}

	for _, tt := range tests {
		t.Run(tt.algorithm+"/"+tt.input, func(t *testing.T) {
			digest, err := digester.Digest(tt.algorithm, []byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, digest)
		})
	}

	_, err := digester.Digest("MD5", []byte("abc"))
	assert.ErrorIs(t, err, cryptoalg.ErrUnsupportedAlgorithm)
}

func TestPasswordGenerator(t *testing.T) {
	generator := NewPasswordGenerator()

	t.Run("DefaultPolicy", func(t *testing.T) {
		policy := cryptoalg.DefaultPasswordPolicy()
		password, err := generator.Generate(policy)
		require.NoError(t, err)
		assert.Len(t, password, 12)
		for _, r := range password {
			assert.True(t, strings.ContainsRune(policy.Alphabet(), r))
		}
	})

	t.Run("SingleCharacterSet", func(t *testing.T) {
		password, err := generator.Generate(cryptoalg.PasswordPolicy{Length: 64, Digits: true})
		require.NoError(t, err)
		assert.Len(t, password, 64)
		for _, r := range password {
			assert.True(t, strings.ContainsRune(cryptoalg.CharsetDigits, r))
		}
	})

	t.Run("ExtraOnlyMultibyte", func(t *testing.T) {
		password, err := generator.Generate(cryptoalg.PasswordPolicy{Length: 10, Extra: "äö"})
		require.NoError(t, err)
		assert.Equal(t, 10, utf8.RuneCountInString(password))
		for _, r := range password {
			assert.True(t, r == 'ä' || r == 'ö')
		}
	})

	t.Run("InvalidPolicies", func(t *testing.T) {
		invalid := []cryptoalg.PasswordPolicy{
			{Length: 12},
			{Length: 0, Lower: true},
			{Length: -3, Lower: true},
			{Length: cryptoalg.MaxPasswordLength + 1, Lower: true},
		}
		for _, policy := range invalid {
			_, err := generator.Generate(policy)
			assert.ErrorIs(t, err, cryptoalg.ErrInvalidPolicy)
		}
	})

	t.Run("RandomFailure", func(t *testing.T) {
		_, err := NewPasswordGenerator(WithRandom(failingReader{})).Generate(cryptoalg.DefaultPasswordPolicy())
		assert.Error(t, err)
	})
}
