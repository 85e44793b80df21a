// Package secret hashes and checks the keys internal services authenticate with.
package secret

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const DefaultCost = bcrypt.DefaultCost

var (
	ErrEmptyKey   = errors.New("key cannot be empty")
	ErrInvalidKey = errors.New("invalid key")
)

// Hash returns the bcrypt hash stored in APP_API_KEY_HASH.
func Hash(key string, cost int) (string, error) {
	if key == "" {
		return "", ErrEmptyKey
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(key), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash key: %w", err)
	}

	return string(bytes), nil
}

// Verify reports ErrInvalidKey for an empty key, an empty hash or a mismatch.
func Verify(key, hash string) error {
	if key == "" || hash == "" {
		return ErrInvalidKey
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(key)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrInvalidKey
		}

		return fmt.Errorf("failed to verify key: %w", err)
	}

	return nil
}
