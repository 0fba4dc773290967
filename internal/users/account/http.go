// Copyright (c) 2026 Aeris Labs. All rights reserved.

package account

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aeris-labs/aeris/internal/platform/middleware"
	requestutil "github.com/aeris-labs/aeris/internal/platform/request"
	"github.com/aeris-labs/aeris/internal/platform/respond"
	"github.com/aeris-labs/aeris/internal/platform/validate"
	"github.com/aeris-labs/aeris/internal/users/auth"
)

// Handler implements the HTTP layer for profile and user administration.
type Handler struct {
	accountService *Service
}

// NewHandler constructs a new account [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{accountService: service}
}

// Routes returns a [chi.Router] with the authenticated profile endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireAuth)

	router.Get("/me", handler.getMe)

	return router
}

// AdminRoutes returns a [chi.Router] with the admin-only user management
// endpoints. RequireAdmin also covers the authentication check.
func (handler *Handler) AdminRoutes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireAdmin)

	router.Get("/users", handler.listUsers)
	router.Put("/users/{id}/promote", handler.promoteUser)
	router.Delete("/users/{id}", handler.deleteUser)

	return router
}

// # Profile Endpoints

/*
GET /api/v1/users/me.

Description: Retrieves the profile of the authenticated user, re-read from
storage so the response reflects the current role.

Response:
  - 200: User: Hydrated user profile
  - 401: ErrUnauthorized: Authentication required
*/
func (handler *Handler) getMe(writer http.ResponseWriter, request *http.Request) {
	identity, err := requestutil.RequiredIdentity(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.accountService.GetProfile(request.Context(), identity.ID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, user)
}

// # Administration Endpoints

/*
GET /api/v1/admin/users.

Description: Lists every registered account, newest first.

Response:
  - 200: []User: All accounts
  - 401: ErrUnauthorized: Authentication required
  - 403: ErrForbidden: Admin privileges required
*/
func (handler *Handler) listUsers(writer http.ResponseWriter, request *http.Request) {
	users, err := handler.accountService.ListUsers(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, users)
}

/*
PUT /api/v1/admin/users/{id}/promote.

Description: Grants the admin role to the target account. Idempotent.

Response:
  - 200: Confirmation message and updated account
  - 404: ErrNotFound: Unknown account ID
*/
func (handler *Handler) promoteUser(writer http.ResponseWriter, request *http.Request) {
	userID := requestutil.Param(request, "id")

	validator := &validate.Validator{}
	validator.Required(auth.FieldUserID, userID).UUID(auth.FieldUserID, userID)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.accountService.PromoteUser(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{
		auth.FieldMessage: fmt.Sprintf("%s is now an admin", user.Email),
		auth.FieldUser:    user,
	})
}

/*
DELETE /api/v1/admin/users/{id}.

Description: Permanently removes the target account. Self-deletion is
rejected.

Response:
  - 204: No Content: Account removed
  - 404: ErrNotFound: Unknown account ID
  - 422: ErrUnprocessable: Attempted self-deletion
*/
func (handler *Handler) deleteUser(writer http.ResponseWriter, request *http.Request) {
	identity, err := requestutil.RequiredIdentity(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	userID := requestutil.Param(request, "id")

	validator := &validate.Validator{}
	validator.Required(auth.FieldUserID, userID).UUID(auth.FieldUserID, userID)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.accountService.DeleteUser(request.Context(), identity.ID, userID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
