// Copyright (c) 2026 Aeris Labs. All rights reserved.

package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aeris-labs/aeris/internal/platform/apperr"
	"github.com/aeris-labs/aeris/internal/platform/sec"
	"github.com/aeris-labs/aeris/pkg/uuid"
)

// # Contracts & Types

// TokenProvider defines the contract for minting signed access tokens.
type TokenProvider interface {
	// Generate creates a signed token string whose subject is userID.
	Generate(userID string) (string, error)

	// TTL reports the configured token lifetime, surfaced to clients in
	// login responses.
	TTL() time.Duration
}

// Service implements user authentication use cases.
//
// # Review Process
//
// This service is critical for security. Any changes to hashing, registration,
// or login logic must be reviewed carefully: the uniform-failure behavior of
// Login is load-bearing, not cosmetic.
type Service struct {
	userRepository UserRepository
	passwordHasher *sec.PasswordHasher
	tokenProvider  TokenProvider
	logger         *slog.Logger
}

// NewService constructs a new [Service] with necessary dependencies.
//
// Every collaborator is an explicit argument so tests can substitute
// in-memory fakes.
func NewService(
	userRepo UserRepository,
	hasher *sec.PasswordHasher,
	tokenProv TokenProvider,
	logger *slog.Logger,
) *Service {
	return &Service{
		userRepository: userRepo,
		passwordHasher: hasher,
		tokenProvider:  tokenProv,
		logger:         logger,
	}
}

// # Registration Flow

// SignupInput holds the data required to enroll a new account.
//
// There is deliberately no admin flag here: every signup creates a plain
// account, and promotion happens only through the admin-gated endpoint.
type SignupInput struct {
	Email    string
	Password string
}

/*
Signup validates, hashes, and persists a brand new user account.

Description: Creates a non-admin account. Email uniqueness is pre-checked for
a friendly error, but the store's unique index is the authoritative guard
against concurrent duplicate signups.

Parameters:
  - context: context.Context
  - input: SignupInput

Returns:
  - *User: Created entity
  - error: apperr.Conflict (if the email exists) or storage errors
*/
func (service *Service) Signup(context context.Context, input SignupInput) (*User, error) {

	// Verify email uniqueness. Return a client-safe Conflict err.
	_, err := service.userRepository.FindByEmail(context, input.Email)
	if err == nil {
		return nil, apperr.Conflict("Email is already registered")
	}

	// Prevent storing plain-text passwords. Default cost is used for balance
	// between security and CPU utilization during registration spikes.
	hashedPassword, err := service.passwordHasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	// Construct the new User entity. Time-sortable ID to prevent PG index
	// fragmentation, and to guarantee IDs are never reused after deletion.
	user := &User{
		ID:           uuid.New(),
		Email:        input.Email,
		PasswordHash: hashedPassword,
		IsAdmin:      false,
	}

	// Persist the user to the database. A racing duplicate signup loses here
	// with the same Conflict error as the pre-check.
	if err := service.userRepository.Create(context, user); err != nil {
		return nil, err
	}

	service.logger.Info("user_registered", slog.String("user_id", user.ID))

	return user, nil
}

// # Authentication Flow

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Email    string
	Password string
}

// LoginResult represents a successfully issued access token.
type LoginResult struct {
	AccessToken string
	TokenType   string
	ExpiresIn   time.Duration
	User        *User
}

// dummyDigest is a bcrypt hash of a throwaway value. Login burns a comparison
// against it when the email is unknown so that missing accounts and wrong
// passwords cost the same wall-clock time.
const dummyDigest = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

/*
Login validates user credentials and issues an access token.

Description: Looks up the account by exact email match and verifies the
password. Both failure modes — unknown email and wrong password — return the
identical Unauthorized error so that callers cannot enumerate accounts.

Parameters:
  - context: context.Context
  - input: LoginInput

Returns:
  - *LoginResult: Transport-ready token material
  - error: apperr.Unauthorized or internal failures
*/
func (service *Service) Login(context context.Context, input LoginInput) (*LoginResult, error) {
	user, err := service.userRepository.FindByEmail(context, input.Email)

	// If (err != nil) the user does not exist. Equalize timing before
	// returning the generic message.
	if err != nil {
		_ = service.passwordHasher.Verify(input.Password, dummyDigest)
		return nil, apperr.Unauthorized("Invalid credentials")
	}

	// Constant-time comparison inside bcrypt; same generic message as above.
	if !service.passwordHasher.Verify(input.Password, user.PasswordHash) {
		return nil, apperr.Unauthorized("Invalid credentials")
	}

	// Mint the access token. The subject is always the stable account ID.
	accessToken, err := service.tokenProvider.Generate(user.ID)
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_generation_failed: %w", err)
	}

	return &LoginResult{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresIn:   service.tokenProvider.TTL(),
		User:        user,
	}, nil
}

// # Identity Resolution

/*
ResolveIdentity maps a verified token subject to a live identity.

Description: Re-reads the account from storage so the admin flag always
reflects the current state, and so tokens for deleted accounts fail closed.
Implements [middleware.IdentityResolver].

Parameters:
  - context: context.Context
  - userID: string (The verified 'sub' claim)

Returns:
  - *sec.Identity: Current account snapshot
  - error: Lookup failures (the guard maps every error to Unauthorized)
*/
func (service *Service) ResolveIdentity(context context.Context, userID string) (*sec.Identity, error) {
	user, err := service.userRepository.FindByID(context, userID)
	if err != nil {
		return nil, err
	}

	return &sec.Identity{
		ID:      user.ID,
		Email:   user.Email,
		IsAdmin: user.IsAdmin,
	}, nil
}
