// Package token implements verification token generation.
package token

import (
	"crypto/rand"
	"encoding/hex"

	"regsvc/internal/domain/service"
)

// tokenBytes is the entropy of a verification token before hex encoding.
const tokenBytes = 32

// generator produces random opaque tokens. It holds no state of its own.
type generator struct{}

// NewGenerator returns the implementation as a service.VerificationTokenGenerator.
func NewGenerator() service.VerificationTokenGenerator {
	return &generator{}
}

// Generate returns 32 bytes of cryptographically random data, hex encoded.
func (g *generator) Generate() string {
	buf := make([]byte, tokenBytes)
	// rand.Read never fails on supported platforms; it panics internally on
	// a broken entropy source, which is not a recoverable condition here.
	_, _ = rand.Read(buf)

	return hex.EncodeToString(buf)
}
