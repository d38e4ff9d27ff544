package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestFoundPetHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	alertID := uuid.New()
	finderID := uuid.New()
	body := fmt.Sprintf(`{"pet_id":"%s","user_id":"%s"}`, alertID, finderID)

	tests := []struct {
		name          string
		body          string
		mockSetup     func(m *MockFindAcknowledger)
		expectedCode  int
		expectedError string
	}{
		{
			name: "acknowledgment recorded",
			body: body,
			mockSetup: func(m *MockFindAcknowledger) {
				m.EXPECT().
					Acknowledge(gomock.Any(), alertID, finderID).
					Return(uuid.New(), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "internal server error",
			body: body,
			mockSetup: func(m *MockFindAcknowledger) {
				m.EXPECT().
					Acknowledge(gomock.Any(), alertID, finderID).
					Return(uuid.Nil, errors.New("database failure"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Error al registrar el aviso",
		},
		{
			name:          "malformed alert id",
			body:          fmt.Sprintf(`{"pet_id":"not-a-uuid","user_id":"%s"}`, finderID),
			expectedCode:  http.StatusBadRequest,
			expectedError: "pet_id y user_id son obligatorios",
		},
		{
			name:          "missing finder id",
			body:          fmt.Sprintf(`{"pet_id":"%s"}`, alertID),
			expectedCode:  http.StatusBadRequest,
			expectedError: "pet_id y user_id son obligatorios",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockFindAcknowledger(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewFoundPetHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/api/i-found-a-pet", bytes.NewBufferString(tt.body))
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
				assert.Equal(t, "¡Gracias por avisar! El dueño podrá contactarte.", resp.Message)
			}
		})
	}
}
