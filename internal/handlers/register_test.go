package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/okhuysen/peturnidad-api/internal/services"
)

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	tests := []struct {
		name          string
		body          string
		mockSetup     func(m *MockRegisterer)
		expectedCode  int
		expectedError string
	}{
		{
			name: "success",
			body: `{"email":"maria@example.com","password":"secret123"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "maria@example.com", "secret123").
					Return(userID, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "email already registered",
			body: `{"email":"maria@example.com","password":"secret123"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "maria@example.com", "secret123").
					Return(uuid.Nil, services.ErrUserAlreadyExists)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "El usuario ya existe",
		},
		{
			name: "internal server error",
			body: `{"email":"maria@example.com","password":"secret123"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "maria@example.com", "secret123").
					Return(uuid.Nil, errors.New("database failure"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Error interno del servidor",
		},
		{
			name:          "invalid json",
			body:          `{invalid`,
			expectedCode:  http.StatusBadRequest,
			expectedError: "Email y password son obligatorios",
		},
		{
			name:          "missing password",
			body:          `{"email":"maria@example.com"}`,
			expectedCode:  http.StatusBadRequest,
			expectedError: "Email y password son obligatorios",
		},
		{
			name:          "malformed email",
			body:          `{"email":"not-an-email","password":"secret123"}`,
			expectedCode:  http.StatusBadRequest,
			expectedError: "Email y password son obligatorios",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockRegisterer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewRegisterHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/api/register", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp ErrorResponse
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Error)
			} else {
				var resp RegisterResponse
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, "Usuario registrado correctamente", resp.Message)
				assert.Equal(t, userID.String(), resp.UserID)
				assert.True(t, resp.RequiresProfile)
			}
		})
	}
}
