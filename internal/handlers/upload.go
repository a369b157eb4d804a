package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/sbilibin2017/gw-image-gallery/internal/models"
	"github.com/sbilibin2017/gw-image-gallery/internal/services"
)

//go:generate mockgen -source=upload.go -destination=upload_mock.go -package=handlers

// Uploader stores a new image for the caller.
type Uploader interface {
	Upload(ctx context.Context, identity models.Identity, in services.UploadInput) (*models.ImageDB, error)
}

// ImageResponse wraps a single image.
// swagger:model ImageResponse
type ImageResponse struct {
	Image *models.ImageDB `json:"image"`
}

// multipartOverhead is the room left in the request body for boundaries, part
// headers and the text fields next to the file.
const multipartOverhead = 64 << 10

// NewUploadImageHandler accepts a multipart upload with the file in field
// "image". Files larger than maxBytes are rejected with 413, as are bodies
// larger than maxBytes plus multipartOverhead.
// @Summary Upload an image
// @Description The image enters moderation as pending.
// @Tags images
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param image formData file true "Image file"
// @Param description formData string false "Description"
// @Param visibility formData string false "public or private" Enums(public, private)
// @Success 201 {object} handlers.ImageResponse
// @Failure 400 {object} handlers.ErrorResponse "Missing image file / Unsupported image format"
// @Failure 413 {object} handlers.ErrorResponse
// @Router /api/images/upload [post]
func NewUploadImageHandler(svc Uploader, maxBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := requireIdentity(w, r)
		if !ok {
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxBytes+multipartOverhead)
		if err := r.ParseMultipartForm(maxBytes); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				writeError(w, http.StatusRequestEntityTooLarge, "Image too large")
				return
			}
			writeServiceError(w, r, services.ErrMissingImage)
			return
		}
		defer r.MultipartForm.RemoveAll()

		file, header, err := r.FormFile("image")
		if err != nil {
			writeServiceError(w, r, services.ErrMissingImage)
			return
		}
		defer file.Close()
		if header.Size > maxBytes {
			writeError(w, http.StatusRequestEntityTooLarge, "Image too large")
			return
		}

		data, err := io.ReadAll(file)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		img, err := svc.Upload(r.Context(), identity, services.UploadInput{
			Description: r.FormValue("description"),
			Visibility:  models.Visibility(r.FormValue("visibility")),
			Data:        data,
		})
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, ImageResponse{Image: img})
	}
}
