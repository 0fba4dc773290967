// Copyright (c) 2026 Aeris Labs. All rights reserved.

// Package middleware provides the HTTP middleware chain for the Aeris API server.
//
// # Architecture
//
// Middleware intercepts incoming HTTP requests to apply global policies
// before they reach the domain handlers. This includes cross-cutting concerns
// like Logging, AuthZ/AuthN, Rate Limiting, and CORS.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/aeris-labs/aeris/internal/platform/apperr"
	"github.com/aeris-labs/aeris/internal/platform/constants"
	"github.com/aeris-labs/aeris/internal/platform/ctxutil"
	"github.com/aeris-labs/aeris/internal/platform/respond"
	"github.com/aeris-labs/aeris/internal/platform/sec"
)

// TokenVerifier defines the interface needed to verify tokens in middleware.
//
// # Why an interface?
//
// Defining TokenVerifier here decouples the middleware from [sec.TokenService],
// allowing us to easily inject mocks during unit testing.
type TokenVerifier interface {
	Verify(tokenString string) (subject string, err error)
}

// IdentityResolver maps a verified token subject to a live identity.
//
// # Freshness Contract
//
// The resolver MUST consult current storage, not a cache of token claims.
// Role changes and account deletions take effect on the very next request:
// a token minted before a promotion authorizes admin routes afterwards, and
// a token for a deleted account is rejected even though its signature is
// still valid (fail-closed).
type IdentityResolver interface {
	ResolveIdentity(ctx context.Context, userID string) (*sec.Identity, error)
}

// Authenticate extracts and verifies the bearer token from the Authorization header.
//
// # Flow
//  1. Check for 'Authorization: Bearer <token>' header.
//  2. If absent, request proceeds as anonymous.
//  3. If present, verify the signature and expiry via [TokenVerifier].
//  4. Resolve the subject to a live account via [IdentityResolver].
//  5. Inject [*sec.Identity] into the request context for downstream use.
//
// Malformed headers, invalid/expired/foreign-signed tokens, and tokens whose
// subject no longer exists all collapse to the same 401 response.
func Authenticate(verifier TokenVerifier, resolver IdentityResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			authHeader := request.Header.Get(constants.HeaderAuthorization)

			// ── 1. Anonymous Access ───────────────────────────────────────────
			if authHeader == "" {
				next.ServeHTTP(writer, request)
				return
			}

			// ── 2. Format Validation ──────────────────────────────────────────
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				respond.Error(writer, request, apperr.Unauthorized("Invalid authorization format"))
				return
			}

			// ── 3. Token Verification ─────────────────────────────────────────
			subject, err := verifier.Verify(parts[1])
			if err != nil {
				respond.Error(writer, request, apperr.Unauthorized("Invalid or expired token"))
				return
			}

			// ── 4. Identity Resolution ────────────────────────────────────────
			// Always re-read the account so the role reflects current storage
			// state, and so deleted accounts fail closed.
			identity, err := resolver.ResolveIdentity(request.Context(), subject)
			if err != nil {
				respond.Error(writer, request, apperr.Unauthorized("Invalid or expired token"))
				return
			}

			// ── 5. Context Injection ──────────────────────────────────────────
			ctx := ctxutil.WithIdentity(request.Context(), identity)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireAuth blocks requests that are not authenticated.
//
// # Usage
//
// Must be registered in the router AFTER [Authenticate].
//
// # Flow
//  1. Check if [*sec.Identity] exists in context.
//  2. If missing, abort with HTTP 401 Unauthorized.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		identity := ctxutil.GetIdentity(request.Context())
		if identity == nil {
			respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
			return
		}
		next.ServeHTTP(writer, request)
	})
}

// RequireAdmin blocks requests unless the authenticated identity is an admin.
//
// # Usage
//
// Must be registered in the router AFTER [Authenticate]. It automatically
// implies [RequireAuth] so you don't need to mount both.
//
// # Ordering
//
// The authentication check always runs first: an anonymous caller gets 401,
// never 403, so the role check leaks nothing about protected resources.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		identity := ctxutil.GetIdentity(request.Context())

		// ── 1. Authentication Check ───────────────────────────────────────
		if identity == nil {
			respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
			return
		}

		// ── 2. Authorization Check ────────────────────────────────────────
		if !identity.IsAdmin {
			respond.Error(writer, request, apperr.Forbidden("Admin privileges required"))
			return
		}

		next.ServeHTTP(writer, request)
	})
}
