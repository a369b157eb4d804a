package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-image-gallery/internal/models"
)

//go:generate mockgen -source=profile.go -destination=profile_mock.go -package=handlers

// ProfileGetter returns the caller's profile.
type ProfileGetter interface {
	Me(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// ProfileUpdater updates the caller's profile.
type ProfileUpdater interface {
	UpdateProfile(ctx context.Context, userID uuid.UUID, name string, email *string) (*models.UserDB, error)
}

// AccountDeleter removes the caller's account.
type AccountDeleter interface {
	DeleteAccount(ctx context.Context, identity models.Identity) error
}

// UserResponse wraps a single user.
// swagger:model UserResponse
type UserResponse struct {
	User *models.UserDB `json:"user"`
}

// UpdateProfileRequest is the body of PUT /api/user/me.
// swagger:model UpdateProfileRequest
type UpdateProfileRequest struct {
	// required: true
	Name string `json:"name" validate:"required"`

	// Optional new email
	Email *string `json:"email,omitempty" validate:"omitempty,email"`
}

// NewGetProfileHandler returns the caller's profile.
// @Summary Current user profile
// @Tags user
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.UserResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Router /api/user/me [get]
func NewGetProfileHandler(svc ProfileGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := requireIdentity(w, r)
		if !ok {
			return
		}
		user, err := svc.Me(r.Context(), identity.UserID)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, UserResponse{User: user})
	}
}

// NewUpdateProfileHandler updates the caller's name and optionally email.
// @Summary Update current user profile
// @Tags user
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body handlers.UpdateProfileRequest true "Profile"
// @Success 200 {object} handlers.UserResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 409 {object} handlers.ErrorResponse "Email already exists"
// @Router /api/user/me [put]
func NewUpdateProfileHandler(svc ProfileUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := requireIdentity(w, r)
		if !ok {
			return
		}

		var req UpdateProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if err := validate.Struct(req); err != nil {
			writeError(w, http.StatusBadRequest, "Name is required and email must be valid")
			return
		}

		user, err := svc.UpdateProfile(r.Context(), identity.UserID, req.Name, req.Email)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, UserResponse{User: user})
	}
}

// NewDeleteAccountHandler deletes the caller with all their content.
// @Summary Delete current user
// @Tags user
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.MessageResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Router /api/user/me [delete]
func NewDeleteAccountHandler(svc AccountDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := requireIdentity(w, r)
		if !ok {
			return
		}
		if err := svc.DeleteAccount(r.Context(), identity); err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, MessageResponse{Message: "Account deleted successfully"})
	}
}
