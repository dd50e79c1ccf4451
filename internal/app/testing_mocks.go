//go:build unit
// +build unit

package app

import (
	"crypto/ecdsa"

	"github.com/MGTheTrain/crypto-tester/internal/domain/cryptoalg"

	"github.com/stretchr/testify/mock"
)

// MockECDSAProcessor is a mock implementation of ECDSAProcessor
type MockECDSAProcessor struct {
	mock.Mock
}

func (m *MockECDSAProcessor) GenerateKeys(curveSizeBits int) (*cryptoalg.KeyPair, error) {
	args := m.Called(curveSizeBits)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cryptoalg.KeyPair), args.Error(1)
}

func (m *MockECDSAProcessor) Sign(message string, privateKey *ecdsa.PrivateKey) ([]byte, error) {
	args := m.Called(message, privateKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockECDSAProcessor) SignString(message string, privateKey *ecdsa.PrivateKey) (string, error) {
	args := m.Called(message, privateKey)
	return args.String(0), args.Error(1)
}

func (m *MockECDSAProcessor) Verify(message string, signature []byte, publicKey *ecdsa.PublicKey) (bool, error) {
	args := m.Called(message, signature, publicKey)
	return args.Bool(0), args.Error(1)
}

func (m *MockECDSAProcessor) VerifyString(message, signature string, publicKey *ecdsa.PublicKey) (bool, error) {
	args := m.Called(message, signature, publicKey)
	return args.Bool(0), args.Error(1)
}

func (m *MockECDSAProcessor) EncodeKeyToPEM(key any) (string, error) {
	args := m.Called(key)
	return args.String(0), args.Error(1)
}

func (m *MockECDSAProcessor) DecodeKeyFromPEM(text string) (any, error) {
	args := m.Called(text)
	return args.Get(0), args.Error(1)
}

func (m *MockECDSAProcessor) DecodePublicKeyFromPEM(text string) (*ecdsa.PublicKey, error) {
	args := m.Called(text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ecdsa.PublicKey), args.Error(1)
}

func (m *MockECDSAProcessor) DecodePrivateKeyFromPEM(text string) (*ecdsa.PrivateKey, error) {
	args := m.Called(text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ecdsa.PrivateKey), args.Error(1)
}

// MockChallengeGenerator is a mock implementation of ChallengeGenerator
type MockChallengeGenerator struct {
	mock.Mock
}

func (m *MockChallengeGenerator) Generate(length int, prefix string) (string, error) {
	args := m.Called(length, prefix)
	return args.String(0), args.Error(1)
}
