package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sbilibin2017/gw-image-gallery/internal/logger"
	"github.com/sbilibin2017/gw-image-gallery/internal/middlewares"
	"github.com/sbilibin2017/gw-image-gallery/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestWriteServiceError(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode int
		expectedMsg  string
	}{
		{"validation", services.ErrMissingImage, http.StatusBadRequest, "Missing image file"},
		{"wrapped validation", fmt.Errorf("upload: %w", services.ErrUnsupportedImage), http.StatusBadRequest, "Unsupported image format"},
		{"bare kind", services.ErrValidation, http.StatusBadRequest, "Bad request"},
		{"unauthorized", services.ErrInvalidToken, http.StatusUnauthorized, "Invalid or expired token"},
		{"forbidden", services.ErrForbidden, http.StatusForbidden, "Forbidden"},
		{"not found", services.ErrCommentNotFound, http.StatusNotFound, "Comment not found"},
		{"conflict", services.ErrDuplicateEmail, http.StatusConflict, "Email already exists"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			writeServiceError(w, httptest.NewRequest(http.MethodGet, "/", nil), tt.err)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.Equal(t, tt.expectedMsg, decodeError(t, w.Body.Bytes()))
		})
	}
}

func TestWriteServiceError_LogsRequestID(t *testing.T) {
	originalLog := logger.Log
	defer func() { logger.Log = originalLog }()

	core, logs := observer.New(zap.ErrorLevel)
	logger.Log = zap.New(core).Sugar()

	handler := middlewares.LoggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeServiceError(w, r, errors.New("boom"))
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/images/me", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	reqID := w.Header().Get("X-Request-ID")
	require.NotEmpty(t, reqID)

	entries := logs.FilterMessage("internal server error").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, reqID, fields["request_id"])
	assert.Equal(t, "/api/images/me", fields["uri"])
}

func TestRootHandler(t *testing.T) {
	w := httptest.NewRecorder()
	NewRootHandler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"/api/images"`)
}
