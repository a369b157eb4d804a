package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-image-gallery/internal/models"
)

//go:generate mockgen -source=like.go -destination=like_mock.go -package=handlers

// LikeToggler toggles the caller's like on an image.
type LikeToggler interface {
	Toggle(ctx context.Context, identity models.Identity, imageID uuid.UUID) (bool, error)
}

// LikeStatusGetter reports like count and the caller's like state.
type LikeStatusGetter interface {
	Status(ctx context.Context, identity models.Identity, imageID uuid.UUID) (int, bool, error)
}

// LikeResponse is the new like state after a toggle.
// swagger:model LikeResponse
type LikeResponse struct {
	Liked bool `json:"liked"`
}

// LikeStatusResponse is the like count of an image.
// swagger:model LikeStatusResponse
type LikeStatusResponse struct {
	Count int  `json:"count"`
	Liked bool `json:"liked"`
}

// NewToggleLikeHandler likes or unlikes an image. The image does not have to exist.
// @Summary Toggle like
// @Tags likes
// @Produce json
// @Security BearerAuth
// @Param imageId path string true "Image ID"
// @Success 200 {object} handlers.LikeResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Router /api/likes/{imageId} [post]
func NewToggleLikeHandler(svc LikeToggler) http.HandlerFunc {
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
		liked, err := svc.Toggle(r.Context(), identity, imageID)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, LikeResponse{Liked: liked})
	}
}

// NewLikeStatusHandler returns the like count of an image.
// @Summary Like status
// @Tags likes
// @Produce json
// @Security BearerAuth
// @Param imageId path string true "Image ID"
// @Success 200 {object} handlers.LikeStatusResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Router /api/likes/{imageId} [get]
func NewLikeStatusHandler(svc LikeStatusGetter) http.HandlerFunc {
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
		count, liked, err := svc.Status(r.Context(), identity, imageID)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, LikeStatusResponse{Count: count, Liked: liked})
	}
}
