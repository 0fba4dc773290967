// Copyright (c) 2026 Aeris Labs. All rights reserved.

/*
Package auth implements the user identity layer of the Aeris platform.

It defines the core domain entity (User) and the logic for credential
verification, account creation, and per-request identity resolution.

# Architecture

This layer is the "Truth" of the system. The entity defined here has no
external dependencies and encapsulates all business rules related to identity.
*/
package auth

import (
	"time"
)

// # Domain Entities

// User represents a registered principal of the Aeris platform.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Explicitly omitted from JSON for security.
	IsAdmin      bool      `json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// # Field Identifiers

// Global field names for validation and identity mapping in the authentication domain.
const (
	FieldEmail       = "email"
	FieldPassword    = "password"
	FieldToken       = "token"
	FieldAccessToken = "access_token"
	FieldTokenType   = "token_type"
	FieldExpiresIn   = "expires_in"
	FieldUser        = "user"
	FieldUserID      = "user_id"
	FieldMessage     = "message"
)
