package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-image-gallery/internal/models"
)

//go:generate mockgen -source=admin.go -destination=admin_mock.go -package=handlers

// ModerationQueuer lists images by moderation status.
type ModerationQueuer interface {
	Queue(ctx context.Context, identity models.Identity, status models.ImageStatus) ([]models.ImageDB, error)
}

// ImageModerator approves and rejects pending images.
type ImageModerator interface {
	Approve(ctx context.Context, identity models.Identity, imageID uuid.UUID) (*models.ImageDB, error)
	Reject(ctx context.Context, identity models.Identity, imageID uuid.UUID) (*models.ImageDB, error)
}

// UserLister lists all accounts.
type UserLister interface {
	ListUsers(ctx context.Context, identity models.Identity) ([]models.UserDB, error)
}

// UsersResponse is a list of users.
// swagger:model UsersResponse
type UsersResponse struct {
	Users []models.UserDB `json:"users"`
}

// NewModerationQueueHandler lists images in the requested status, pending by default.
// @Summary Moderation queue
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter" Enums(pending, approved, rejected)
// @Success 200 {object} handlers.ImagesResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 403 {object} handlers.ErrorResponse
// @Router /api/admin/images [get]
func NewModerationQueueHandler(svc ModerationQueuer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := requireIdentity(w, r)
		if !ok {
			return
		}
		status := models.ImageStatus(r.URL.Query().Get("status"))
		if status == "" {
			status = models.StatusPending
		}
		images, err := svc.Queue(r.Context(), identity, status)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		if images == nil {
			images = []models.ImageDB{}
		}
		writeJSON(w, http.StatusOK, ImagesResponse{Images: images})
	}
}

// NewApproveImageHandler approves a pending image.
// @Summary Approve image
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param imageId path string true "Image ID"
// @Success 200 {object} handlers.ImageResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Failure 409 {object} handlers.ErrorResponse "Image is not pending moderation"
// @Router /api/admin/images/{imageId}/approve [patch]
func NewApproveImageHandler(svc ImageModerator) http.HandlerFunc {
	return moderate(svc.Approve)
}

// NewRejectImageHandler rejects a pending image.
// @Summary Reject image
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param imageId path string true "Image ID"
// @Success 200 {object} handlers.ImageResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Failure 409 {object} handlers.ErrorResponse "Image is not pending moderation"
// @Router /api/admin/images/{imageId}/reject [patch]
func NewRejectImageHandler(svc ImageModerator) http.HandlerFunc {
	return moderate(svc.Reject)
}

func moderate(action func(ctx context.Context, identity models.Identity, imageID uuid.UUID) (*models.ImageDB, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := requireIdentity(w, r)
		if !ok {
			return
		}
		imageID, err := parseID(r, "imageId")
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		img, err := action(r.Context(), identity, imageID)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, ImageResponse{Image: img})
	}
}

// NewListUsersHandler lists all accounts.
// @Summary List users
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.UsersResponse
// @Failure 403 {object} handlers.ErrorResponse
// @Router /api/admin/users [get]
func NewListUsersHandler(svc UserLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := requireIdentity(w, r)
		if !ok {
			return
		}
		users, err := svc.ListUsers(r.Context(), identity)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		if users == nil {
			users = []models.UserDB{}
		}
		writeJSON(w, http.StatusOK, UsersResponse{Users: users})
	}
}
