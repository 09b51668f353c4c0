//go:build unit
// +build unit

package v1

import (
	"context"

	"github.com/MGTheTrain/crypto-workbench/internal/domain/cryptoalg"

	"github.com/stretchr/testify/mock"
)

// MockWorkbenchService is a mock implementation of workbench.Service
type MockWorkbenchService struct {
	mock.Mock
}

func (m *MockWorkbenchService) GenerateSymmetricKey(ctx context.Context, size int) (cryptoalg.GeneratedKey, error) {
	args := m.Called(ctx, size)
	return args.Get(0).(cryptoalg.GeneratedKey), args.Error(1)
}

func (m *MockWorkbenchService) EncryptSymmetric(ctx context.Context, base64Key, plaintext string) (string, error) {
	args := m.Called(ctx, base64Key, plaintext)
	return args.String(0), args.Error(1)
}

func (m *MockWorkbenchService) DecryptSymmetric(ctx context.Context, base64Key, blob string) (string, error) {
	args := m.Called(ctx, base64Key, blob)
	return args.String(0), args.Error(1)
}

func (m *MockWorkbenchService) GenerateKeyPair(ctx context.Context, modulusBits int) (cryptoalg.AsymmetricKeyPair, error) {
	args := m.Called(ctx, modulusBits)
	return args.Get(0).(cryptoalg.AsymmetricKeyPair), args.Error(1)
}

func (m *MockWorkbenchService) EncryptAsymmetric(ctx context.Context, publicKeyPEM, message string) (string, error) {
	args := m.Called(ctx, publicKeyPEM, message)
	return args.String(0), args.Error(1)
}

func (m *MockWorkbenchService) DecryptAsymmetric(ctx context.Context, privateKeyPEM, blob string) (string, error) {
	args := m.Called(ctx, privateKeyPEM, blob)
	return args.String(0), args.Error(1)
}

func (m *MockWorkbenchService) Digest(ctx context.Context, algorithm string, data []byte) (string, error) {
	args := m.Called(ctx, algorithm, data)
	return args.String(0), args.Error(1)
}

func (m *MockWorkbenchService) GeneratePassword(ctx context.Context, policy cryptoalg.PasswordPolicy) (string, error) {
	args := m.Called(ctx, policy)
	return args.String(0), args.Error(1)
}
