package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-image-gallery/internal/logger"
	"github.com/sbilibin2017/gw-image-gallery/internal/middlewares"
	"github.com/sbilibin2017/gw-image-gallery/internal/models"
	"github.com/sbilibin2017/gw-image-gallery/internal/services"
)

// ErrorResponse is the body of every failed request outside the auth endpoints.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// MessageResponse carries a human readable status message.
// swagger:model MessageResponse
type MessageResponse struct {
	// Message
	Message string `json:"message"`
}

var validate = validator.New()

// errorMessages lists client-facing messages for known errors, checked in
// order with errors.Is.
var errorMessages = []struct {
	err error
	msg string
}{
	{services.ErrMissingImage, "Missing image file"},
	{services.ErrUnsupportedImage, "Unsupported image format"},
	{services.ErrInvalidID, "Invalid identifier"},
	{services.ErrEmptyComment, "Comment content is required"},
	{services.ErrInvalidVisibility, "Visibility must be public or private"},
	{services.ErrInvalidStatus, "Unknown image status"},
	{services.ErrPasswordTooLong, "Password must not exceed 72 bytes"},
	{services.ErrInvalidToken, "Invalid or expired token"},
	{services.ErrInvalidCredentials, "Invalid email or password"},
	{services.ErrDuplicateEmail, "Email already exists"},
	{services.ErrInvalidTransition, "Image is not pending moderation"},
	{services.ErrUserNotFound, "User not found"},
	{services.ErrImageNotFound, "Image not found"},
	{services.ErrCommentNotFound, "Comment not found"},
}

var errorKinds = []struct {
	kind   error
	status int
	msg    string
}{
	{services.ErrValidation, http.StatusBadRequest, "Bad request"},
	{services.ErrUnauthorized, http.StatusUnauthorized, "Unauthorized"},
	{services.ErrForbidden, http.StatusForbidden, "Forbidden"},
	{services.ErrNotFound, http.StatusNotFound, "Not found"},
	{services.ErrConflict, http.StatusConflict, "Conflict"},
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// writeServiceError maps err to a status code by its kind. Unknown errors are
// logged and reported as 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	for _, k := range errorKinds {
		if errors.Is(err, k.kind) {
			writeError(w, k.status, errorMessage(err, k.msg))
			return
		}
	}
	logger.Log.Errorw("internal server error",
		"request_id", middlewares.RequestIDFromContext(r.Context()),
		"method", r.Method,
		"uri", r.RequestURI,
		"err", err,
	)
	writeError(w, http.StatusInternalServerError, "Internal server error")
}

func errorMessage(err error, fallback string) string {
	for _, m := range errorMessages {
		if errors.Is(err, m.err) {
			return m.msg
		}
	}
	return fallback
}

// parseID reads a UUID path parameter.
func parseID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, services.ErrInvalidID
	}
	return id, nil
}

// requireIdentity returns the caller attached by the auth middleware, writing
// 401 when the route was mounted without it.
func requireIdentity(w http.ResponseWriter, r *http.Request) (models.Identity, bool) {
	identity, ok := middlewares.IdentityFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authorization token required")
	}
	return identity, ok
}
