// Copyright (c) 2026 Aeris Labs. All rights reserved.

package auth_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aeris-labs/aeris/internal/platform/apperr"
	"github.com/aeris-labs/aeris/internal/platform/sec"
	"github.com/aeris-labs/aeris/internal/users/auth"
)

// memoryUserRepository is an in-memory [auth.UserRepository] for tests.
type memoryUserRepository struct {
	byID    map[string]*auth.User
	byEmail map[string]*auth.User
}

func newMemoryUserRepository() *memoryUserRepository {
	return &memoryUserRepository{
		byID:    make(map[string]*auth.User),
		byEmail: make(map[string]*auth.User),
	}
}

func (repo *memoryUserRepository) FindByID(_ context.Context, id string) (*auth.User, error) {
	user, ok := repo.byID[id]
	if !ok {
		return nil, apperr.NotFound("User")
	}
	clone := *user
	return &clone, nil
}

func (repo *memoryUserRepository) FindByEmail(_ context.Context, email string) (*auth.User, error) {
	user, ok := repo.byEmail[email]
	if !ok {
		return nil, apperr.NotFound("User")
	}
	clone := *user
	return &clone, nil
}

func (repo *memoryUserRepository) Create(_ context.Context, user *auth.User) error {
	if _, exists := repo.byEmail[user.Email]; exists {
		return apperr.Conflict("Email is already registered")
	}
	user.CreatedAt = time.Now().UTC()
	user.UpdatedAt = user.CreatedAt
	stored := *user
	repo.byID[user.ID] = &stored
	repo.byEmail[user.Email] = &stored
	return nil
}

func (repo *memoryUserRepository) List(_ context.Context) ([]*auth.User, error) {
	users := make([]*auth.User, 0, len(repo.byID))
	for _, user := range repo.byID {
		clone := *user
		users = append(users, &clone)
	}
	return users, nil
}

func (repo *memoryUserRepository) UpdateRole(_ context.Context, id string, isAdmin bool) (*auth.User, error) {
	user, ok := repo.byID[id]
	if !ok {
		return nil, apperr.NotFound("User")
	}
	user.IsAdmin = isAdmin
	user.UpdatedAt = time.Now().UTC()
	clone := *user
	return &clone, nil
}

func (repo *memoryUserRepository) Delete(_ context.Context, id string) error {
	user, ok := repo.byID[id]
	if !ok {
		return apperr.NotFound("User")
	}
	delete(repo.byEmail, user.Email)
	delete(repo.byID, id)
	return nil
}

func newTestService(t *testing.T) (*auth.Service, *memoryUserRepository, *sec.TokenService) {
	t.Helper()

	repo := newMemoryUserRepository()
	hasher := sec.NewPasswordHasher(72)
	tokens, err := sec.NewTokenService("test-secret-for-unit-tests", "aeris.io", 30*time.Minute)
	require.NoError(t, err)

	service := auth.NewService(repo, hasher, tokens, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return service, repo, tokens
}

/*
TestService_Signup verifies account creation defaults and hashing behavior.
*/
func TestService_Signup(t *testing.T) {
	service, repo, _ := newTestService(t)

	user, err := service.Signup(context.Background(), auth.SignupInput{
		Email:    "reader@aeris.io",
		Password: "correct horse battery",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "reader@aeris.io", user.Email)
	assert.False(t, user.IsAdmin, "new accounts must never start as admin")
	assert.NotEqual(t, "correct horse battery", user.PasswordHash)

	stored, err := repo.FindByEmail(context.Background(), "reader@aeris.io")
	require.NoError(t, err)
	assert.Equal(t, user.ID, stored.ID)
}

/*
TestService_Signup_DuplicateEmail verifies the conflict path leaves the
original account untouched.
*/
func TestService_Signup_DuplicateEmail(t *testing.T) {
	service, repo, _ := newTestService(t)

	first, err := service.Signup(context.Background(), auth.SignupInput{
		Email:    "reader@aeris.io",
		Password: "first-password",
	})
	require.NoError(t, err)

	_, err = service.Signup(context.Background(), auth.SignupInput{
		Email:    "reader@aeris.io",
		Password: "second-password",
	})
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "CONFLICT", ae.Code)

	stored, err := repo.FindByEmail(context.Background(), "reader@aeris.io")
	require.NoError(t, err)
	assert.Equal(t, first.PasswordHash, stored.PasswordHash)
}

/*
TestService_Login verifies the happy path issues a token bound to the
account ID.
*/
func TestService_Login(t *testing.T) {
	service, _, tokens := newTestService(t)

	user, err := service.Signup(context.Background(), auth.SignupInput{
		Email:    "reader@aeris.io",
		Password: "correct horse battery",
	})
	require.NoError(t, err)

	result, err := service.Login(context.Background(), auth.LoginInput{
		Email:    "reader@aeris.io",
		Password: "correct horse battery",
	})
	require.NoError(t, err)

	assert.Equal(t, "Bearer", result.TokenType)
	assert.Equal(t, 30*time.Minute, result.ExpiresIn)
	assert.Equal(t, user.ID, result.User.ID)

	subject, err := tokens.Verify(result.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, subject, "token subject must be the account ID, not the email")
}

/*
TestService_Login_UniformFailure verifies that an unknown email and a wrong
password are indistinguishable to the caller.
*/
func TestService_Login_UniformFailure(t *testing.T) {
	service, _, _ := newTestService(t)

	_, err := service.Signup(context.Background(), auth.SignupInput{
		Email:    "reader@aeris.io",
		Password: "correct horse battery",
	})
	require.NoError(t, err)

	_, unknownErr := service.Login(context.Background(), auth.LoginInput{
		Email:    "nobody@aeris.io",
		Password: "correct horse battery",
	})
	_, wrongErr := service.Login(context.Background(), auth.LoginInput{
		Email:    "reader@aeris.io",
		Password: "not the password",
	})

	require.Error(t, unknownErr)
	require.Error(t, wrongErr)

	unknownAE := apperr.As(unknownErr)
	wrongAE := apperr.As(wrongErr)
	require.NotNil(t, unknownAE)
	require.NotNil(t, wrongAE)

	assert.Equal(t, unknownAE.Code, wrongAE.Code)
	assert.Equal(t, unknownAE.Message, wrongAE.Message)
	assert.Equal(t, "UNAUTHORIZED", unknownAE.Code)
}

/*
TestService_ResolveIdentity verifies identity resolution reflects current
storage state, including promotion and deletion after token issuance.
*/
func TestService_ResolveIdentity(t *testing.T) {
	service, repo, _ := newTestService(t)

	user, err := service.Signup(context.Background(), auth.SignupInput{
		Email:    "reader@aeris.io",
		Password: "correct horse battery",
	})
	require.NoError(t, err)

	identity, err := service.ResolveIdentity(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, identity.ID)
	assert.Equal(t, user.Email, identity.Email)
	assert.False(t, identity.IsAdmin)

	// Promotion is visible on the next resolution without reissuing a token.
	_, err = repo.UpdateRole(context.Background(), user.ID, true)
	require.NoError(t, err)

	identity, err = service.ResolveIdentity(context.Background(), user.ID)
	require.NoError(t, err)
	assert.True(t, identity.IsAdmin)

	// A deleted account fails closed.
	require.NoError(t, repo.Delete(context.Background(), user.ID))

	_, err = service.ResolveIdentity(context.Background(), user.ID)
	require.Error(t, err)
}
