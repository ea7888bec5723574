// Package token issues opaque one-time secrets such as password reset links.
package token

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
)

// PrefixReset marks password reset tokens so they are recognisable in mail logs.
const PrefixReset = "rst_"

const tokenRandomBytes = 32

// Generate returns a fresh token and the hash that should be persisted in its place.
func Generate(prefix string) (plainToken string, hash string, err error) {
	randomBytes := make([]byte, tokenRandomBytes)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	plainToken = prefix + hex.EncodeToString(randomBytes)
	return plainToken, Hash(plainToken), nil
}

func Hash(plainToken string) string {
	sum := sha256.Sum256([]byte(plainToken))
	return hex.EncodeToString(sum[:])
}

// Verify compares in constant time.
func Verify(plainToken, hash string) bool {
	return subtle.ConstantTimeCompare([]byte(Hash(plainToken)), []byte(hash)) == 1
}
