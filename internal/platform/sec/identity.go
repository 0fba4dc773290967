// Copyright (c) 2026 Aeris Labs. All rights reserved.

package sec

// Identity is the request-scoped view of an authenticated principal.
//
// # Freshness
//
// An Identity is rebuilt from the user store on every request by the
// authentication middleware. It always reflects the current database state:
// a role promotion is visible to tokens issued before the promotion, and a
// deleted account fails resolution even while its token is still signed and
// unexpired.
type Identity struct {
	// ID is the stable subject of the access token (UUIDv7, never reused).
	ID string `json:"id"`
	// Email is the unique login identifier.
	Email string `json:"email"`
	// IsAdmin grants access to elevated operations.
	IsAdmin bool `json:"is_admin"`
}
