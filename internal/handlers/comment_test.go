package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-image-gallery/internal/models"
	"github.com/sbilibin2017/gw-image-gallery/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddCommentHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockCommentAdder(ctrl)
	identity := models.Identity{UserID: uuid.New()}
	imageID := uuid.New()

	tests := []struct {
		name          string
		id            string
		body          string
		mockSetup     func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "success",
			id:   imageID.String(),
			body: `{"content":"Nice shot!"}`,
			mockSetup: func() {
				mockSvc.EXPECT().Add(gomock.Any(), identity, imageID, "Nice shot!").
					Return(&models.CommentDB{CommentID: uuid.New(), ImageID: imageID, UserID: identity.UserID, Content: "Nice shot!"}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "whitespace accepted",
			id:   imageID.String(),
			body: `{"content":"   "}`,
			mockSetup: func() {
				mockSvc.EXPECT().Add(gomock.Any(), identity, imageID, "   ").
					Return(&models.CommentDB{CommentID: uuid.New(), Content: "   "}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:          "missing content",
			id:            imageID.String(),
			body:          `{}`,
			mockSetup:     func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Comment content is required",
		},
		{
			name:          "empty content",
			id:            imageID.String(),
			body:          `{"content":""}`,
			mockSetup:     func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Comment content is required",
		},
		{
			name:          "malformed image id",
			id:            "invalid-id",
			body:          `{"content":"hi"}`,
			mockSetup:     func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid identifier",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest(http.MethodPost, "/api/comments/"+tt.id, strings.NewReader(tt.body))
			req = withIdentity(withURLParam(req, "imageId", tt.id), identity)
			w := httptest.NewRecorder()
			NewAddCommentHandler(mockSvc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, decodeError(t, w.Body.Bytes()))
			}
		})
	}
}

func TestListCommentsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockCommentLister(ctrl)
	imageID := uuid.New()

	mockSvc.EXPECT().List(gomock.Any(), imageID).Return([]models.CommentDB{{CommentID: uuid.New(), Content: "first"}}, nil)
	req := withURLParam(httptest.NewRequest(http.MethodGet, "/", nil), "imageId", imageID.String())
	w := httptest.NewRecorder()
	NewListCommentsHandler(mockSvc).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp CommentsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Comments, 1)
	assert.Equal(t, "first", resp.Comments[0].Content)
}

func TestDeleteCommentHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockCommentDeleter(ctrl)
	identity := models.Identity{UserID: uuid.New()}
	commentID := uuid.New()
	req := withIdentity(withURLParam(httptest.NewRequest(http.MethodDelete, "/", nil), "commentId", commentID.String()), identity)

	mockSvc.EXPECT().Delete(gomock.Any(), identity, commentID).Return(nil)
	w := httptest.NewRecorder()
	NewDeleteCommentHandler(mockSvc).ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	mockSvc.EXPECT().Delete(gomock.Any(), identity, commentID).Return(services.ErrForbidden)
	w = httptest.NewRecorder()
	NewDeleteCommentHandler(mockSvc).ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
