// Package id generates random URL-safe identifiers.
package id

import (
	"crypto/rand"
	"fmt"
)

const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// DefaultLength gives roughly 71 bits of randomness.
const DefaultLength = 12

// Stripe-style prefixes for public identifiers.
const (
	PrefixReconcileJob = "rcj"
	PrefixCSRF         = "csrf"
)

// bytes at or above this value are rejected so every symbol is equally likely
const rejectFrom = 256 - 256%len(alphabet)

// Generate returns a random base62 string of length characters.
func Generate(length int) (string, error) {
	if length <= 0 {
		length = DefaultLength
	}
	out := make([]byte, 0, length)
	buf := make([]byte, length*2)
	for len(out) < length {
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("failed to read random bytes: %w", err)
		}
		for _, b := range buf {
			if int(b) >= rejectFrom {
				continue
			}
			out = append(out, alphabet[int(b)%len(alphabet)])
			if len(out) == length {
				break
			}
		}
	}
	return string(out), nil
}

// GenerateWithPrefix returns "prefix_xxxxxxxxxxxx".
func GenerateWithPrefix(prefix string, length int) (string, error) {
	s, err := Generate(length)
	if err != nil {
		return "", err
	}
	return prefix + "_" + s, nil
}
