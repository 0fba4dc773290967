// Copyright (c) 2026 Aeris Labs. All rights reserved.

package account_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aeris-labs/aeris/internal/platform/apperr"
	"github.com/aeris-labs/aeris/internal/users/account"
	"github.com/aeris-labs/aeris/internal/users/auth"
)

// fakeRepository is an in-memory [account.Repository] for tests.
type fakeRepository struct {
	users map[string]*auth.User
}

func newFakeRepository(users ...*auth.User) *fakeRepository {
	repo := &fakeRepository{users: make(map[string]*auth.User)}
	for _, user := range users {
		repo.users[user.ID] = user
	}
	return repo
}

func (repo *fakeRepository) FindByID(_ context.Context, id string) (*auth.User, error) {
	user, ok := repo.users[id]
	if !ok {
		return nil, apperr.NotFound("User")
	}
	return user, nil
}

func (repo *fakeRepository) List(_ context.Context) ([]*auth.User, error) {
	users := make([]*auth.User, 0, len(repo.users))
	for _, user := range repo.users {
		users = append(users, user)
	}
	return users, nil
}

func (repo *fakeRepository) UpdateRole(_ context.Context, id string, isAdmin bool) (*auth.User, error) {
	user, ok := repo.users[id]
	if !ok {
		return nil, apperr.NotFound("User")
	}
	user.IsAdmin = isAdmin
	user.UpdatedAt = time.Now().UTC()
	return user, nil
}

func (repo *fakeRepository) Delete(_ context.Context, id string) error {
	if _, ok := repo.users[id]; !ok {
		return apperr.NotFound("User")
	}
	delete(repo.users, id)
	return nil
}

func testUser(id, email string, isAdmin bool) *auth.User {
	return &auth.User{ID: id, Email: email, IsAdmin: isAdmin}
}

/*
TestService_PromoteUser verifies promotion flips the admin flag and is
idempotent.
*/
func TestService_PromoteUser(t *testing.T) {
	repo := newFakeRepository(testUser("u-1", "reader@aeris.io", false))
	service := account.NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))

	promoted, err := service.PromoteUser(context.Background(), "u-1")
	require.NoError(t, err)
	assert.True(t, promoted.IsAdmin)

	// Idempotent re-promotion.
	promoted, err = service.PromoteUser(context.Background(), "u-1")
	require.NoError(t, err)
	assert.True(t, promoted.IsAdmin)

	_, err = service.PromoteUser(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}

/*
TestService_DeleteUser covers the self-deletion guard and the hard delete.
*/
func TestService_DeleteUser(t *testing.T) {
	repo := newFakeRepository(
		testUser("admin-1", "admin@aeris.io", true),
		testUser("u-1", "reader@aeris.io", false),
	)
	service := account.NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))

	err := service.DeleteUser(context.Background(), "admin-1", "admin-1")
	require.Error(t, err)
	assert.Equal(t, "UNPROCESSABLE", apperr.As(err).Code)

	require.NoError(t, service.DeleteUser(context.Background(), "admin-1", "u-1"))

	_, err = service.GetProfile(context.Background(), "u-1")
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}
