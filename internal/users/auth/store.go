// Copyright (c) 2026 Aeris Labs. All rights reserved.

package auth

import (
	"context"
)

// # User Data Access

// UserRepository defines the data access contract for user accounts.
type UserRepository interface {

	/*
		FindByID returns the account with the given ID.

		Parameters:
		  - context: context.Context
		  - id: string (UUIDv7)

		Returns:
		  - *User: Hydrated entity
		  - error: apperr.NotFound or database retrieval failures
	*/
	FindByID(context context.Context, id string) (*User, error)

	/*
		FindByEmail returns the account with the given email (exact match).

		Parameters:
		  - context: context.Context
		  - email: string

		Returns:
		  - *User: Hydrated entity
		  - error: apperr.NotFound or database retrieval failures
	*/
	FindByEmail(context context.Context, email string) (*User, error)

	/*
		Create persists a brand-new user account to the storage.

		The store enforces email uniqueness atomically: a duplicate insert
		fails with apperr.Conflict even when two signups race.

		Parameters:
		  - context: context.Context
		  - user: *User

		Returns:
		  - error: apperr.Conflict or persistence failures
	*/
	Create(context context.Context, user *User) error

	/*
		List returns every registered account, newest first.

		Parameters:
		  - context: context.Context

		Returns:
		  - []*User: All accounts
		  - error: Database retrieval failures
	*/
	List(context context.Context) ([]*User, error)

	/*
		UpdateRole sets the admin flag of an existing account.

		Parameters:
		  - context: context.Context
		  - id: string
		  - isAdmin: bool

		Returns:
		  - *User: The updated account
		  - error: apperr.NotFound if the account does not exist, or persistence failures
	*/
	UpdateRole(context context.Context, id string, isAdmin bool) (*User, error)

	/*
		Delete permanently removes an account.

		Outstanding tokens for the account are not tracked: they fail closed
		at the guard because identity resolution finds nothing.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - error: apperr.NotFound if the account does not exist, or persistence failures
	*/
	Delete(context context.Context, id string) error
}
