package handlers

import (
	"bytes"
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

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockRegisterer(ctrl)
	user := &models.UserDB{UserID: uuid.New(), Name: "John", Email: "john@example.com", PasswordHash: "hash", Role: models.RoleUser}

	tests := []struct {
		name            string
		inputBody       interface{}
		mockSetup       func()
		expectedCode    int
		expectedMessage string
	}{
		{
			name:      "success",
			inputBody: RegisterRequest{Name: "John", Email: "john@example.com", Password: "secret123"},
			mockSetup: func() {
				mockSvc.EXPECT().
					Register(gomock.Any(), "John", "john@example.com", "secret123").
					Return(user, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:            "invalid JSON",
			inputBody:       "{invalid json}",
			mockSetup:       func() {},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "Invalid request body",
		},
		{
			name:            "bad email",
			inputBody:       RegisterRequest{Name: "John", Email: "not-an-email", Password: "secret123"},
			mockSetup:       func() {},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "Name, valid email and password of 6 to 72 characters are required",
		},
		{
			name:            "short password",
			inputBody:       RegisterRequest{Name: "John", Email: "john@example.com", Password: "123"},
			mockSetup:       func() {},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "Name, valid email and password of 6 to 72 characters are required",
		},
		{
			name:            "password over 72 characters",
			inputBody:       RegisterRequest{Name: "John", Email: "john@example.com", Password: strings.Repeat("p", 80)},
			mockSetup:       func() {},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "Name, valid email and password of 6 to 72 characters are required",
		},
		{
			name:      "multibyte password over 72 bytes",
			inputBody: RegisterRequest{Name: "John", Email: "john@example.com", Password: strings.Repeat("é", 40)},
			mockSetup: func() {
				mockSvc.EXPECT().
					Register(gomock.Any(), "John", "john@example.com", strings.Repeat("é", 40)).
					Return(nil, services.ErrPasswordTooLong)
			},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "Password must not exceed 72 bytes",
		},
		{
			name:      "duplicate email",
			inputBody: RegisterRequest{Name: "John", Email: "john@example.com", Password: "secret123"},
			mockSetup: func() {
				mockSvc.EXPECT().
					Register(gomock.Any(), "John", "john@example.com", "secret123").
					Return(nil, services.ErrDuplicateEmail)
			},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "Email already exists",
		},
		{
			name:      "internal error",
			inputBody: RegisterRequest{Name: "John", Email: "john@example.com", Password: "secret123"},
			mockSetup: func() {
				mockSvc.EXPECT().
					Register(gomock.Any(), "John", "john@example.com", "secret123").
					Return(nil, errors.New("db error"))
			},
			expectedCode:    http.StatusInternalServerError,
			expectedMessage: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			var bodyBytes []byte
			switch v := tt.inputBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				bodyBytes, _ = json.Marshal(v)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(bodyBytes))
			w := httptest.NewRecorder()

			NewRegisterHandler(mockSvc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)

			if tt.expectedCode == http.StatusCreated {
				var resp map[string]map[string]interface{}
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, "john@example.com", resp["user"]["email"])
				assert.Equal(t, user.UserID.String(), resp["user"]["id"])
				assert.NotContains(t, resp["user"], "password_hash")
				assert.NotContains(t, w.Body.String(), "hash")
				return
			}

			var resp MessageResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedMessage, resp.Message)
		})
	}
}
