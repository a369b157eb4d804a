package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-image-gallery/internal/models"
	"github.com/sbilibin2017/gw-image-gallery/internal/services"
)

//go:generate mockgen -source=comment.go -destination=comment_mock.go -package=handlers

// CommentAdder adds comments.
type CommentAdder interface {
	Add(ctx context.Context, identity models.Identity, imageID uuid.UUID, content string) (*models.CommentDB, error)
}

// CommentLister lists comments of an image.
type CommentLister interface {
	List(ctx context.Context, imageID uuid.UUID) ([]models.CommentDB, error)
}

// CommentDeleter deletes comments.
type CommentDeleter interface {
	Delete(ctx context.Context, identity models.Identity, commentID uuid.UUID) error
}

// CommentRequest is the body of POST /api/comments/{imageId}.
// swagger:model CommentRequest
type CommentRequest struct {
	// required: true
	// default: Nice shot!
	Content string `json:"content" validate:"required"`
}

// CommentResponse wraps a single comment.
// swagger:model CommentResponse
type CommentResponse struct {
	Comment *models.CommentDB `json:"comment"`
}

// CommentsResponse is a list of comments.
// swagger:model CommentsResponse
type CommentsResponse struct {
	Comments []models.CommentDB `json:"comments"`
}

// NewAddCommentHandler comments on an image.
// @Summary Add comment
// @Tags comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param imageId path string true "Image ID"
// @Param body body handlers.CommentRequest true "Comment"
// @Success 201 {object} handlers.CommentResponse
// @Failure 400 {object} handlers.ErrorResponse "Comment content is required / Invalid identifier"
// @Failure 401 {object} handlers.ErrorResponse
// @Router /api/comments/{imageId} [post]
func NewAddCommentHandler(svc CommentAdder) http.HandlerFunc {
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

		var req CommentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if err := validate.Struct(req); err != nil {
			writeServiceError(w, r, services.ErrEmptyComment)
			return
		}

		c, err := svc.Add(r.Context(), identity, imageID, req.Content)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, CommentResponse{Comment: c})
	}
}

// NewListCommentsHandler lists comments of an image, oldest first.
// @Summary List comments
// @Tags comments
// @Produce json
// @Param imageId path string true "Image ID"
// @Success 200 {object} handlers.CommentsResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Router /api/comments/{imageId} [get]
func NewListCommentsHandler(svc CommentLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		imageID, err := parseID(r, "imageId")
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		comments, err := svc.List(r.Context(), imageID)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		if comments == nil {
			comments = []models.CommentDB{}
		}
		writeJSON(w, http.StatusOK, CommentsResponse{Comments: comments})
	}
}

// NewDeleteCommentHandler deletes a comment written by the caller.
// @Summary Delete comment
// @Tags comments
// @Produce json
// @Security BearerAuth
// @Param commentId path string true "Comment ID"
// @Success 200 {object} handlers.MessageResponse
// @Failure 403 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /api/comments/{commentId} [delete]
func NewDeleteCommentHandler(svc CommentDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := requireIdentity(w, r)
		if !ok {
			return
		}
		commentID, err := parseID(r, "commentId")
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		if err := svc.Delete(r.Context(), identity, commentID); err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, MessageResponse{Message: "Comment deleted successfully"})
	}
}
