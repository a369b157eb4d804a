package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-image-gallery/internal/models"
)

//go:generate mockgen -source=logout.go -destination=logout_mock.go -package=handlers

// Logouter revokes the caller's current token.
type Logouter interface {
	Logout(ctx context.Context, identity models.Identity) error
}

// NewLogoutHandler returns an HTTP handler that revokes the presented token.
// @Summary Logout
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.MessageResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Router /api/auth/logout [post]
func NewLogoutHandler(svc Logouter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := requireIdentity(w, r)
		if !ok {
			return
		}
		if err := svc.Logout(r.Context(), identity); err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, MessageResponse{Message: "Logged out successfully"})
	}
}
