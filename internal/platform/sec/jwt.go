// Copyright (c) 2026 Aeris Labs. All rights reserved.

// Package sec provides cryptographic primitives and token management.
//
// # Architecture
//
// This package isolates security-sensitive code (Hashing, JWT Signing) from
// the domain logic. It acts as an Infrastructure service injected into the
// Application layer via small interfaces ([auth.TokenProvider],
// [middleware.TokenVerifier]).
package sec

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned by [TokenService.Verify] for every failure mode:
// bad signature, wrong algorithm, garbled input, or an expired claim.
//
// # Why one error?
//
// Collapsing the failure modes here means no caller can accidentally leak
// whether a presented token was malformed, expired, or signed for a
// different deployment.
var ErrInvalidToken = errors.New("sec: invalid token")

// TokenService signs and verifies HS256 access tokens.
//
// # Configuration
//
// The signing secret is process-wide configuration injected at startup (see
// [config.Config.JWTSecret]); it is never compiled in. Tokens signed under a
// different secret are categorically invalid — rotation is a config reload,
// with no dual-secret grace window.
type TokenService struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenService creates a new TokenService.
//
// # Parameters
//   - secret: The HMAC-SHA256 signing secret. Must be non-empty.
//   - issuer: The 'iss' claim stamped on every token.
//   - ttl: Token lifetime. Non-positive values are rejected.
func NewTokenService(secret, issuer string, ttl time.Duration) (*TokenService, error) {
	if secret == "" {
		return nil, errors.New("sec: signing secret must not be empty")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("sec: invalid token ttl %s", ttl)
	}

	return &TokenService{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// WithClock replaces the wall-clock source and returns the service.
//
// Both minting and expiry validation read from the injected clock, which is
// how the expiry window is exercised in tests.
func (service *TokenService) WithClock(now func() time.Time) *TokenService {
	service.now = now
	return service
}

// Generate mints a signed access token whose subject is the given user ID.
//
// The subject is always the stable account ID — never the email — so every
// decoder resolves principals the same way.
func (service *TokenService) Generate(userID string) (string, error) {
	currentTime := service.now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		Issuer:    service.issuer,
		IssuedAt:  jwt.NewNumericDate(currentTime),
		ExpiresAt: jwt.NewNumericDate(currentTime.Add(service.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(service.secret)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign token: %w", err)
	}

	return signedToken, nil
}

// Verify checks the signature, algorithm, and expiry of a token string.
//
// On success it returns the subject (user ID). Every failure mode returns
// [ErrInvalidToken].
func (service *TokenService) Verify(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&jwt.RegisteredClaims{},
		func(token *jwt.Token) (interface{}, error) {
			// Pin the algorithm family: a token claiming "none" or RS256 must
			// never be verified against the HMAC secret.
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("sec: unexpected signing method: %v", token.Header["alg"])
			}
			return service.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(service.now),
		jwt.WithExpirationRequired(),
	)

	if err != nil {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}

	return claims.Subject, nil
}

// TTL returns the configured token lifetime.
func (service *TokenService) TTL() time.Duration {
	return service.ttl
}
