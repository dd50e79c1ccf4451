package cryptography

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/MGTheTrain/crypto-tester/internal/domain/cryptoalg"
	"github.com/MGTheTrain/crypto-tester/internal/pkg/logger"
)

// challengeGenerator struct that implements the ChallengeGenerator interface
type challengeGenerator struct {
	random io.Reader
	logger logger.Logger
}

// NewChallengeGenerator creates a ChallengeGenerator reading from random, or crypto/rand when random is nil
func NewChallengeGenerator(random io.Reader, logger logger.Logger) (cryptoalg.ChallengeGenerator, error) {
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}
	if random == nil {
		random = rand.Reader
	}

	return &challengeGenerator{
		random: random,
		logger: logger,
	}, nil
}

// Generate reads length bytes from the secure source and returns prefix + base64(bytes).
func (g *challengeGenerator) Generate(length int, prefix string) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("challenge length must be positive, got %d", length)
	}

	data := make([]byte, length)
	if _, err := io.ReadFull(g.random, data); err != nil {
		return "", fmt.Errorf("%w: %w", cryptoalg.ErrRandomSource, err)
	}

	g.logger.Info("Generated ", length, " bytes of challenge data")
	return prefix + base64.StdEncoding.EncodeToString(data), nil
}
