package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-image-gallery/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestToggleLikeHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockLikeToggler(ctrl)
	identity := models.Identity{UserID: uuid.New()}
	imageID := uuid.New()

	tests := []struct {
		name         string
		id           string
		mockSetup    func()
		expectedCode int
		expectedBody string
	}{
		{
			name: "like",
			id:   imageID.String(),
			mockSetup: func() {
				mockSvc.EXPECT().Toggle(gomock.Any(), identity, imageID).Return(true, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"liked":true}`,
		},
		{
			name: "unlike",
			id:   imageID.String(),
			mockSetup: func() {
				mockSvc.EXPECT().Toggle(gomock.Any(), identity, imageID).Return(false, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"liked":false}`,
		},
		{
			name:         "invalid id",
			id:           "invalid-id",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Invalid identifier"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := withIdentity(withURLParam(httptest.NewRequest(http.MethodPost, "/", nil), "imageId", tt.id), identity)
			w := httptest.NewRecorder()
			NewToggleLikeHandler(mockSvc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestLikeStatusHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockLikeStatusGetter(ctrl)
	identity := models.Identity{UserID: uuid.New()}
	imageID := uuid.New()

	mockSvc.EXPECT().Status(gomock.Any(), identity, imageID).Return(2, true, nil)
	req := withIdentity(withURLParam(httptest.NewRequest(http.MethodGet, "/", nil), "imageId", imageID.String()), identity)
	w := httptest.NewRecorder()
	NewLikeStatusHandler(mockSvc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"count":2,"liked":true}`, w.Body.String())
}
