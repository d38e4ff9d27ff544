package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/okhuysen/peturnidad-api/internal/services"
)

func TestProfilePictureHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	body := `{"email":"maria@example.com","imageUrl":"https://img.example.com/p.jpg"}`

	tests := []struct {
		name          string
		body          string
		mockSetup     func(m *MockProfilePictureSetter)
		expectedCode  int
		expectedError string
	}{
		{
			name: "updated",
			body: body,
			mockSetup: func(m *MockProfilePictureSetter) {
				m.EXPECT().
					SetPicture(gomock.Any(), "maria@example.com", "https://img.example.com/p.jpg").
					Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "profile not found",
			body: body,
			mockSetup: func(m *MockProfilePictureSetter) {
				m.EXPECT().
					SetPicture(gomock.Any(), "maria@example.com", "https://img.example.com/p.jpg").
					Return(services.ErrProfileNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "Perfil no encontrado",
		},
		{
			name:          "missing image url",
			body:          `{"email":"maria@example.com"}`,
			expectedCode:  http.StatusBadRequest,
			expectedError: "Email e imageUrl son obligatorios",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockProfilePictureSetter(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewProfilePictureHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPut, "/api/user-profile-picture", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp ErrorResponse
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Error)
			} else {
				var resp MessageResponse
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, "Foto de perfil actualizada", resp.Message)
			}
		})
	}
}
