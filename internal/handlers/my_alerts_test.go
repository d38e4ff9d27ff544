package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/okhuysen/peturnidad-api/internal/models"
	"github.com/okhuysen/peturnidad-api/internal/services"
)

func TestMyAlertsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	alerts := []models.EmergencyAlertDB{
		{AlertID: uuid.New(), PetName: "Firulais", PetType: models.PetTypeDog},
	}

	tests := []struct {
		name          string
		target        string
		mockSetup     func(m *MockOwnerAlertsLister)
		expectedCode  int
		expectedLen   int
		expectedError string
	}{
		{
			name:   "one alert",
			target: "/api/my-alerts?email=maria@example.com",
			mockSetup: func(m *MockOwnerAlertsLister) {
				m.EXPECT().
					OwnerFeed(gomock.Any(), "maria@example.com").
					Return(alerts, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  1,
		},
		{
			name:   "unknown email",
			target: "/api/my-alerts?email=nobody@example.com",
			mockSetup: func(m *MockOwnerAlertsLister) {
				m.EXPECT().
					OwnerFeed(gomock.Any(), "nobody@example.com").
					Return(nil, services.ErrUserNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "Usuario no encontrado",
		},
		{
			name:          "missing email",
			target:        "/api/my-alerts",
			expectedCode:  http.StatusBadRequest,
			expectedError: "El email es requerido",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockOwnerAlertsLister(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewMyAlertsHandler(mockSvc)

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp ErrorResponse
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Error)
			} else {
				var resp []models.EmergencyAlertDB
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Len(t, resp, tt.expectedLen)
			}
		})
	}
}
