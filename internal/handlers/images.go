package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-image-gallery/internal/models"
	"github.com/sbilibin2017/gw-image-gallery/internal/services"
)

//go:generate mockgen -source=images.go -destination=images_mock.go -package=handlers

// PublicImageLister lists the public gallery.
type PublicImageLister interface {
	ListPublic(ctx context.Context) ([]models.PublicImage, error)
}

// OwnImageLister lists the caller's images.
type OwnImageLister interface {
	ListMine(ctx context.Context, identity models.Identity) ([]models.ImageDB, error)
}

// VisibilitySetter changes image visibility.
type VisibilitySetter interface {
	SetVisibility(ctx context.Context, identity models.Identity, imageID uuid.UUID, visibility models.Visibility) (*models.ImageDB, error)
}

// ImageDeleter deletes images.
type ImageDeleter interface {
	Delete(ctx context.Context, identity models.Identity, imageID uuid.UUID) error
}

// PublicImagesResponse is the public gallery.
// swagger:model PublicImagesResponse
type PublicImagesResponse struct {
	Images []models.PublicImage `json:"images"`
}

// ImagesResponse is a list of images.
// swagger:model ImagesResponse
type ImagesResponse struct {
	Images []models.ImageDB `json:"images"`
}

// VisibilityRequest is the body of PATCH /api/images/{imageId}/visibility.
// swagger:model VisibilityRequest
type VisibilityRequest struct {
	// required: true
	// enum: public,private
	Visibility models.Visibility `json:"visibility" validate:"required,oneof=public private"`
}

// NewListPublicImagesHandler returns approved public images, newest first.
// @Summary Public gallery
// @Tags images
// @Produce json
// @Success 200 {object} handlers.PublicImagesResponse
// @Router /api/images/public [get]
func NewListPublicImagesHandler(svc PublicImageLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		images, err := svc.ListPublic(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		if images == nil {
			images = []models.PublicImage{}
		}
		writeJSON(w, http.StatusOK, PublicImagesResponse{Images: images})
	}
}

// NewListMyImagesHandler returns every image the caller owns.
// @Summary My images
// @Tags images
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.ImagesResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Router /api/images/me [get]
func NewListMyImagesHandler(svc OwnImageLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := requireIdentity(w, r)
		if !ok {
			return
		}
		images, err := svc.ListMine(r.Context(), identity)
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

// NewSetVisibilityHandler lets the owner publish or hide an image.
// @Summary Change image visibility
// @Tags images
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param imageId path string true "Image ID"
// @Param body body handlers.VisibilityRequest true "Visibility"
// @Success 200 {object} handlers.ImageResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 403 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /api/images/{imageId}/visibility [patch]
func NewSetVisibilityHandler(svc VisibilitySetter) http.HandlerFunc {
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

		var req VisibilityRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if err := validate.Struct(req); err != nil {
			writeServiceError(w, r, services.ErrInvalidVisibility)
			return
		}

		img, err := svc.SetVisibility(r.Context(), identity, imageID, req.Visibility)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, ImageResponse{Image: img})
	}
}

// NewDeleteImageHandler deletes an image owned by the caller.
// @Summary Delete image
// @Tags images
// @Produce json
// @Security BearerAuth
// @Param imageId path string true "Image ID"
// @Success 200 {object} handlers.MessageResponse
// @Failure 403 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /api/images/{imageId} [delete]
func NewDeleteImageHandler(svc ImageDeleter) http.HandlerFunc {
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
		if err := svc.Delete(r.Context(), identity, imageID); err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, MessageResponse{Message: "Image deleted successfully"})
	}
}
