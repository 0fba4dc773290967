// Copyright (c) 2026 Aeris Labs. All rights reserved.

package sec_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aeris-labs/aeris/internal/platform/sec"
)

/*
TestPasswordHasher_RoundTrip covers the basic hash-then-verify contract.
*/
func TestPasswordHasher_RoundTrip(t *testing.T) {
	hasher := sec.NewPasswordHasher(72)

	digest, err := hasher.Hash("correct horse battery")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery", digest)
	assert.True(t, strings.HasPrefix(digest, "$2"))

	assert.True(t, hasher.Verify("correct horse battery", digest))
	assert.False(t, hasher.Verify("wrong password", digest))
}

/*
TestPasswordHasher_Truncation verifies that only the first 72 bytes of the
password are significant, matching the underlying bcrypt limit.
*/
func TestPasswordHasher_Truncation(t *testing.T) {
	hasher := sec.NewPasswordHasher(72)

	long := strings.Repeat("a", 72)
	longer := long + "completely different tail"

	digest, err := hasher.Hash(long)
	require.NoError(t, err)

	// Any password sharing the first 72 bytes verifies against the digest.
	assert.True(t, hasher.Verify(long, digest))
	assert.True(t, hasher.Verify(longer, digest))

	// A difference inside the significant prefix still fails.
	flipped := "b" + strings.Repeat("a", 71)
	assert.False(t, hasher.Verify(flipped, digest))
}

/*
TestPasswordHasher_MalformedDigest verifies that Verify never panics or
succeeds on garbage stored digests.
*/
func TestPasswordHasher_MalformedDigest(t *testing.T) {
	hasher := sec.NewPasswordHasher(72)

	tests := []struct {
		name   string
		digest string
	}{
		{"empty", ""},
		{"not_a_hash", "plaintext-leaked-into-column"},
		{"truncated_hash", "$2a$10$short"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, hasher.Verify("any password", tt.digest))
		})
	}
}

/*
TestNewPasswordHasher_DefaultLimit verifies the fallback byte limit.
*/
func TestNewPasswordHasher_DefaultLimit(t *testing.T) {
	hasher := sec.NewPasswordHasher(0)

	long := strings.Repeat("x", 72)
	digest, err := hasher.Hash(long)
	require.NoError(t, err)

	// 72 remains the effective limit when none is configured.
	assert.True(t, hasher.Verify(long+"tail", digest))
}
