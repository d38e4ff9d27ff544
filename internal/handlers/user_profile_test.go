package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/okhuysen/peturnidad-api/internal/models"
	"github.com/okhuysen/peturnidad-api/internal/services"
)

func TestUserProfileHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	profile := &models.ProfileDB{
		ProfileID: uuid.New(),
		FirstName: "María",
		LastName:  "García",
		Address:   "Roma Norte",
	}

	tests := []struct {
		name          string
		target        string
		mockSetup     func(m *MockProfileGetter)
		expectedCode  int
		expectedError string
	}{
		{
			name:   "found",
			target: "/api/user-profile?email=maria@example.com",
			mockSetup: func(m *MockProfileGetter) {
				m.EXPECT().
					Get(gomock.Any(), "maria@example.com").
					Return(profile, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "profile not found",
			target: "/api/user-profile?email=maria@example.com",
			mockSetup: func(m *MockProfileGetter) {
				m.EXPECT().
					Get(gomock.Any(), "maria@example.com").
					Return(nil, services.ErrProfileNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "Perfil no encontrado",
		},
		{
			name:          "missing email",
			target:        "/api/user-profile",
			expectedCode:  http.StatusBadRequest,
			expectedError: "El email es requerido",
		},
		{
			name:   "internal server error",
			target: "/api/user-profile?email=maria@example.com",
			mockSetup: func(m *MockProfileGetter) {
				m.EXPECT().
					Get(gomock.Any(), "maria@example.com").
					Return(nil, errors.New("database failure"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Error al obtener perfil",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockProfileGetter(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewUserProfileHandler(mockSvc)

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp ErrorResponse
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Error)
			} else {
				var resp models.ProfileDB
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, profile.FirstName, resp.FirstName)
				assert.Equal(t, profile.Address, resp.Address)
			}
		})
	}
}
