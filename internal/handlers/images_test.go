package handlers

import (
	"encoding/json"
	"errors"
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

func TestListPublicImagesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockPublicImageLister(ctrl)
	owner := models.UserProfile{ID: uuid.New(), Name: "John", Email: "john@example.com"}

	mockSvc.EXPECT().ListPublic(gomock.Any()).Return([]models.PublicImage{
		{ImageID: uuid.New(), Description: "sunset", Status: models.StatusApproved, Visibility: models.VisibilityPublic, User: owner},
	}, nil)

	w := httptest.NewRecorder()
	NewListPublicImagesHandler(mockSvc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/images/public", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Images []map[string]interface{} `json:"images"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Images, 1)
	assert.Equal(t, "approved", resp.Images[0]["status"])
	user := resp.Images[0]["user"].(map[string]interface{})
	assert.Equal(t, "john@example.com", user["email"])
	assert.NotContains(t, resp.Images[0], "owner_id")

	mockSvc.EXPECT().ListPublic(gomock.Any()).Return(nil, nil)
	w = httptest.NewRecorder()
	NewListPublicImagesHandler(mockSvc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/images/public", nil))
	assert.JSONEq(t, `{"images":[]}`, w.Body.String())

	mockSvc.EXPECT().ListPublic(gomock.Any()).Return(nil, errors.New("db error"))
	w = httptest.NewRecorder()
	NewListPublicImagesHandler(mockSvc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/images/public", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestListMyImagesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockOwnImageLister(ctrl)
	identity := models.Identity{UserID: uuid.New()}

	mockSvc.EXPECT().ListMine(gomock.Any(), identity).Return([]models.ImageDB{{ImageID: uuid.New(), Status: models.StatusPending}}, nil)
	w := httptest.NewRecorder()
	NewListMyImagesHandler(mockSvc).ServeHTTP(w, withIdentity(httptest.NewRequest(http.MethodGet, "/api/images/me", nil), identity))

	require.Equal(t, http.StatusOK, w.Code)
	var resp ImagesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Images, 1)
}

func TestSetVisibilityHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockVisibilitySetter(ctrl)
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
			body: `{"visibility":"private"}`,
			mockSetup: func() {
				mockSvc.EXPECT().SetVisibility(gomock.Any(), identity, imageID, models.VisibilityPrivate).
					Return(&models.ImageDB{ImageID: imageID, Visibility: models.VisibilityPrivate}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "bad id",
			id:            "invalid-id",
			body:          `{"visibility":"private"}`,
			mockSetup:     func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid identifier",
		},
		{
			name:          "bad value",
			id:            imageID.String(),
			body:          `{"visibility":"friends"}`,
			mockSetup:     func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Visibility must be public or private",
		},
		{
			name: "not owner",
			id:   imageID.String(),
			body: `{"visibility":"public"}`,
			mockSetup: func() {
				mockSvc.EXPECT().SetVisibility(gomock.Any(), identity, imageID, models.VisibilityPublic).
					Return(nil, services.ErrForbidden)
			},
			expectedCode:  http.StatusForbidden,
			expectedError: "Forbidden",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest(http.MethodPatch, "/api/images/"+tt.id+"/visibility", strings.NewReader(tt.body))
			req = withIdentity(withURLParam(req, "imageId", tt.id), identity)
			w := httptest.NewRecorder()
			NewSetVisibilityHandler(mockSvc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, decodeError(t, w.Body.Bytes()))
			}
		})
	}
}

func TestDeleteImageHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockImageDeleter(ctrl)
	identity := models.Identity{UserID: uuid.New()}
	imageID := uuid.New()

	mockSvc.EXPECT().Delete(gomock.Any(), identity, imageID).Return(nil)
	req := withIdentity(withURLParam(httptest.NewRequest(http.MethodDelete, "/", nil), "imageId", imageID.String()), identity)
	w := httptest.NewRecorder()
	NewDeleteImageHandler(mockSvc).ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	mockSvc.EXPECT().Delete(gomock.Any(), identity, imageID).Return(services.ErrImageNotFound)
	w = httptest.NewRecorder()
	NewDeleteImageHandler(mockSvc).ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Image not found", decodeError(t, w.Body.Bytes()))
}
