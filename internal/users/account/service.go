// Copyright (c) 2026 Aeris Labs. All rights reserved.

package account

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aeris-labs/aeris/internal/platform/apperr"
	"github.com/aeris-labs/aeris/internal/users/auth"
)

// # Service Layer

// Service orchestrates profile access and administrative user management.
type Service struct {
	accountRepository Repository
	logger            *slog.Logger
}

// NewService constructs a new [Service] with its repository dependency.
func NewService(accountRepo Repository, logger *slog.Logger) *Service {
	return &Service{
		accountRepository: accountRepo,
		logger:            logger,
	}
}

// # Profile Management

/*
GetProfile retrieves the full private identity of a user.

Parameters:
  - context: context.Context
  - userID: string

Returns:
  - *auth.User: The hydrated user profile
  - error: Not found or execution failures
*/
func (service *Service) GetProfile(context context.Context, userID string) (*auth.User, error) {
	user, err := service.accountRepository.FindByID(context, userID)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// # Administration

/*
ListUsers returns every registered account for the admin console.

Parameters:
  - context: context.Context

Returns:
  - []*auth.User: All accounts, newest first
  - error: Storage failures
*/
func (service *Service) ListUsers(context context.Context) ([]*auth.User, error) {
	users, err := service.accountRepository.List(context)
	if err != nil {
		return nil, fmt.Errorf("account_service_list_failed: %w", err)
	}
	return users, nil
}

/*
PromoteUser grants the admin role to an existing account.

Description: Promotion is idempotent; promoting an account that is already an
admin succeeds without side effects. The new role takes effect on the target's
very next request, because identity is resolved from storage per request
rather than baked into issued tokens.

Parameters:
  - context: context.Context
  - userID: string

Returns:
  - *auth.User: The promoted account
  - error: apperr.NotFound if the account does not exist
*/
func (service *Service) PromoteUser(context context.Context, userID string) (*auth.User, error) {
	user, err := service.accountRepository.UpdateRole(context, userID, true)
	if err != nil {
		return nil, err
	}

	service.logger.Info("user_promoted", slog.String("user_id", userID))

	return user, nil
}

/*
DeleteUser permanently removes an account.

Description: Deletion is a hard delete. Outstanding tokens for the removed
account fail closed on their next request, and account IDs are time-sortable
UUIDs that are never reassigned.

Parameters:
  - context: context.Context
  - actorID: string (The admin performing the deletion)
  - userID: string (The account to remove)

Returns:
  - error: apperr.NotFound or a validation error for self-deletion
*/
func (service *Service) DeleteUser(context context.Context, actorID string, userID string) error {

	// An admin locking themselves out is never what they meant.
	if actorID == userID {
		return apperr.Unprocessable("Admins cannot delete their own account")
	}

	if err := service.accountRepository.Delete(context, userID); err != nil {
		return err
	}

	service.logger.Warn("user_account_deleted",
		slog.String("user_id", userID),
		slog.String("deleted_by", actorID),
	)

	return nil
}
