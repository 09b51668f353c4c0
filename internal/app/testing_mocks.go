//go:build unit
// +build unit

package app

import (
	"crypto/rsa"

	"github.com/MGTheTrain/crypto-workbench/internal/domain/cryptoalg"

	"github.com/stretchr/testify/mock"
)

// MockAESGCMCodec is a mock implementation of AESGCMCodec
type MockAESGCMCodec struct {
	mock.Mock
}

func (m *MockAESGCMCodec) ImportKey(base64Key string) (*cryptoalg.SymmetricKey, error) {
	args := m.Called(base64Key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cryptoalg.SymmetricKey), args.Error(1)
}

func (m *MockAESGCMCodec) Encrypt(key *cryptoalg.SymmetricKey, plaintext string) (string, error) {
	args := m.Called(key, plaintext)
	return args.String(0), args.Error(1)
}

func (m *MockAESGCMCodec) Decrypt(key *cryptoalg.SymmetricKey, blob string) (string, error) {
	args := m.Called(key, blob)
	return args.String(0), args.Error(1)
}

// MockRSAOAEPCodec is a mock implementation of RSAOAEPCodec
type MockRSAOAEPCodec struct {
	mock.Mock
}

func (m *MockRSAOAEPCodec) GenerateKeyPair(modulusBits int) (cryptoalg.AsymmetricKeyPair, error) {
	args := m.Called(modulusBits)
	return args.Get(0).(cryptoalg.AsymmetricKeyPair), args.Error(1)
}

func (m *MockRSAOAEPCodec) ImportPublicKey(pemText string) (*rsa.PublicKey, error) {
	args := m.Called(pemText)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rsa.PublicKey), args.Error(1)
}

func (m *MockRSAOAEPCodec) ImportPrivateKey(pemText string) (*rsa.PrivateKey, error) {
	args := m.Called(pemText)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rsa.PrivateKey), args.Error(1)
}

func (m *MockRSAOAEPCodec) Encrypt(publicKey *rsa.PublicKey, message string) (string, error) {
	args := m.Called(publicKey, message)
	return args.String(0), args.Error(1)
}

func (m *MockRSAOAEPCodec) Decrypt(privateKey *rsa.PrivateKey, blob string) (string, error) {
	args := m.Called(privateKey, blob)
	return args.String(0), args.Error(1)
}

// MockKeyGenerator is a mock implementation of KeyGenerator
type MockKeyGenerator struct {
	mock.Mock
}

func (m *MockKeyGenerator) Generate(size int) (cryptoalg.GeneratedKey, error) {
	args := m.Called(size)
	return args.Get(0).(cryptoalg.GeneratedKey), args.Error(1)
}

// MockDigester is a mock implementation of Digester
type MockDigester struct {
	mock.Mock
}

func (m *MockDigester) Digest(algorithm string, data []byte) (string, error) {
	args := m.Called(algorithm, data)
	return args.String(0), args.Error(1)
}

// MockPasswordGenerator is a mock implementation of PasswordGenerator
type MockPasswordGenerator struct {
	mock.Mock
}

func (m *MockPasswordGenerator) Generate(policy cryptoalg.PasswordPolicy) (string, error) {
	args := m.Called(policy)
	return args.String(0), args.Error(1)
}
