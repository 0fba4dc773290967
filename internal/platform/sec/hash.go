// Copyright (c) 2026 Aeris Labs. All rights reserved.

package sec

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/aeris-labs/aeris/internal/platform/constants"
)

// PasswordHasher hashes and verifies passwords using the bcrypt algorithm.
//
// # Truncation Policy
//
// Inputs are cut to the first maxBytes bytes BEFORE hashing and before
// verification. The cut must be byte-identical on both paths: an asymmetric
// truncation would permanently lock out every user whose password exceeds
// the limit.
type PasswordHasher struct {
	maxBytes int
}

// NewPasswordHasher constructs a [PasswordHasher].
//
// A non-positive maxBytes falls back to [constants.DefaultPasswordMaxBytes],
// which matches bcrypt's own 72-byte input limit.
func NewPasswordHasher(maxBytes int) *PasswordHasher {
	if maxBytes <= 0 {
		maxBytes = constants.DefaultPasswordMaxBytes
	}
	return &PasswordHasher{maxBytes: maxBytes}
}

// Hash hashes a plain-text password with a freshly generated salt.
//
// The returned digest embeds the salt and cost and is safe to persist.
func (hasher *PasswordHasher) Hash(plainTextPassword string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword(hasher.truncate(plainTextPassword), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("sec: failed to hash password: %w", err)
	}
	return string(hashedBytes), nil
}

// Verify compares a plain-text password with its stored digest.
//
// It never fails with an error: a malformed digest simply reports false,
// the same as a wrong password.
func (hasher *PasswordHasher) Verify(plainTextPassword, existingHash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(existingHash), hasher.truncate(plainTextPassword))
	return err == nil
}

// truncate returns the first maxBytes bytes of the password.
func (hasher *PasswordHasher) truncate(password string) []byte {
	raw := []byte(password)
	if len(raw) > hasher.maxBytes {
		raw = raw[:hasher.maxBytes]
	}
	return raw
}
