package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/okhuysen/peturnidad-api/internal/logger"
	"github.com/okhuysen/peturnidad-api/internal/services"
)

// PushTokenSaver defines the interface that the profile service must implement.
type PushTokenSaver interface {
	SavePushToken(ctx context.Context, email, token string) error
}

// SavePushTokenRequest represents the JSON body for registering a device token
// swagger:model SavePushTokenRequest
type SavePushTokenRequest struct {
	// Email
	// required: true
	Email string `json:"email" validate:"required"`

	// Opaque device token for the push gateway
	// required: true
	PushToken string `json:"push_token" validate:"required"`
}

// NewSavePushTokenHandler returns an HTTP handler that registers a device push token.
// @Summary Register a device push token
// @Tags devices
// @Accept json
// @Produce json
// @Param savePushTokenRequest body handlers.SavePushTokenRequest true "Token registration request"
// @Success 200 {object} handlers.MessageResponse "Token saved"
// @Failure 400 {object} handlers.ErrorResponse "Missing fields"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /save-push-token [put]
func NewSavePushTokenHandler(svc PushTokenSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SavePushTokenRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "Email y push_token son obligatorios",
			})
			return
		}
		if err := validate.Struct(req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "Email y push_token son obligatorios",
			})
			return
		}

		if err := svc.SavePushToken(r.Context(), req.Email, req.PushToken); err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{
					Error: "Usuario no encontrado",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{
					Error: "Error al guardar push token",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(MessageResponse{
			Message: "Push token guardado",
		})
	}
}
