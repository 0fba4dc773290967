// Copyright (c) 2026 Aeris Labs. All rights reserved.

/*
Package account handles profile retrieval and administrative user management.

It provides the authenticated "who am I" view and the admin-only operations
for listing, promoting, and removing accounts.

# Architecture

  - Domain: This package depends on the auth package for the User entity.
  - Security: Every route requires authentication; the admin surface
    additionally requires the admin role, enforced by middleware.
*/
package account

import (
	"context"

	"github.com/aeris-labs/aeris/internal/users/auth"
)

// # Repository Contracts

// Repository defines the persistence contract for account administration.
//
// [auth.PostgresUserRepository] satisfies this interface; the account layer
// never needs write access to credentials, only to role and lifecycle state.
type Repository interface {
	/*
		FindByID retrieves a user record by their unique ID.

		Parameters:
		  - context: context.Context
		  - id: string (UUID)

		Returns:
		  - *auth.User: Loaded account entity
		  - error: apperr.NotFound or storage failures
	*/
	FindByID(context context.Context, id string) (*auth.User, error)

	/*
		List returns every registered account, newest first.

		Parameters:
		  - context: context.Context

		Returns:
		  - []*auth.User: All accounts
		  - error: Storage failures
	*/
	List(context context.Context) ([]*auth.User, error)

	/*
		UpdateRole sets the admin flag on an existing account.

		Parameters:
		  - context: context.Context
		  - id: string
		  - isAdmin: bool

		Returns:
		  - *auth.User: The updated account
		  - error: apperr.NotFound if the account does not exist
	*/
	UpdateRole(context context.Context, id string, isAdmin bool) (*auth.User, error)

	/*
		Delete permanently removes an account.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - error: apperr.NotFound if the account does not exist
	*/
	Delete(context context.Context, id string) error
}
