// Copyright (c) 2026 Aeris Labs. All rights reserved.

package sec_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aeris-labs/aeris/internal/platform/sec"
)

func newTokenService(t *testing.T) *sec.TokenService {
	t.Helper()
	service, err := sec.NewTokenService("test-secret-for-unit-tests", "aeris.io", 30*time.Minute)
	require.NoError(t, err)
	return service
}

/*
TestTokenService_RoundTrip verifies a generated token decodes back to its
subject.
*/
func TestTokenService_RoundTrip(t *testing.T) {
	service := newTokenService(t)

	token, err := service.Generate("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := service.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", subject)
}

/*
TestTokenService_Expiry verifies the token is valid just before its
deadline and rejected just after.
*/
func TestTokenService_Expiry(t *testing.T) {
	issuedAt := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

	issuer := newTokenService(t).WithClock(func() time.Time { return issuedAt })
	token, err := issuer.Generate("user-123")
	require.NoError(t, err)

	// 29 minutes in: still valid.
	early := newTokenService(t).WithClock(func() time.Time { return issuedAt.Add(29 * time.Minute) })
	subject, err := early.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", subject)

	// 31 minutes in: expired.
	late := newTokenService(t).WithClock(func() time.Time { return issuedAt.Add(31 * time.Minute) })
	_, err = late.Verify(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, sec.ErrInvalidToken)
}

/*
TestTokenService_Tampered verifies signature integrity: any modified byte
invalidates the token.
*/
func TestTokenService_Tampered(t *testing.T) {
	service := newTokenService(t)

	token, err := service.Generate("user-123")
	require.NoError(t, err)

	tampered := []byte(token)
	last := len(tampered) - 1
	if tampered[last] == 'A' {
		tampered[last] = 'B'
	} else {
		tampered[last] = 'A'
	}

	_, err = service.Verify(string(tampered))
	require.Error(t, err)
	assert.ErrorIs(t, err, sec.ErrInvalidToken)
}

/*
TestTokenService_WrongSecret verifies tokens minted under one secret never
verify under another.
*/
func TestTokenService_WrongSecret(t *testing.T) {
	minter, err := sec.NewTokenService("secret-one", "aeris.io", 30*time.Minute)
	require.NoError(t, err)
	verifier, err := sec.NewTokenService("secret-two", "aeris.io", 30*time.Minute)
	require.NoError(t, err)

	token, err := minter.Generate("user-123")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, sec.ErrInvalidToken)
}

/*
TestTokenService_Garbage verifies structurally invalid inputs collapse to
the same opaque error.
*/
func TestTokenService_Garbage(t *testing.T) {
	service := newTokenService(t)

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"not_a_jwt", "hello world"},
		{"two_segments", "aaaa.bbbb"},
		{"unsigned", "eyJhbGciOiJub25lIn0.eyJzdWIiOiJ1c2VyLTEyMyJ9."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Verify(tt.token)
			require.Error(t, err)
			assert.ErrorIs(t, err, sec.ErrInvalidToken)
		})
	}
}

/*
TestNewTokenService_Validation verifies constructor guards.
*/
func TestNewTokenService_Validation(t *testing.T) {
	_, err := sec.NewTokenService("", "aeris.io", 30*time.Minute)
	require.Error(t, err)

	_, err = sec.NewTokenService("secret", "aeris.io", 0)
	require.Error(t, err)
}
