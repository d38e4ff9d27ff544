package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/okhuysen/peturnidad-api/internal/logger"
	"github.com/okhuysen/peturnidad-api/internal/services"
)

// AlertResolver defines the interface that the alerts service must implement.
type AlertResolver interface {
	Resolve(ctx context.Context, email, petName, petType string) (services.NotifyOutcome, error)
}

// DeleteEmergencyAlertRequest represents the JSON body for marking a pet recovered.
// The pet name and type form the lookup key; there is no alert id in this flow.
// swagger:model DeleteEmergencyAlertRequest
type DeleteEmergencyAlertRequest struct {
	// Reporter email
	// required: true
	Email string `json:"email" validate:"required"`

	// Pet name as reported
	// required: true
	PetName string `json:"petName" validate:"required"`

	// Pet type as reported
	// required: true
	PetType string `json:"petType" validate:"required"`
}

// DeleteEmergencyAlertResponse represents a successful resolution
// swagger:model DeleteEmergencyAlertResponse
type DeleteEmergencyAlertResponse struct {
	// Success message
	Message string `json:"message"`

	// example: true
	Success bool `json:"success"`
}

// NewDeleteEmergencyAlertHandler returns an HTTP handler that marks a pet recovered.
// @Summary Mark a pet recovered
// @Description Deletes every alert matching the reporter and the pet name/type, then re-notifies the reporter's colonia with the recovered template.
// @Tags alerts
// @Accept json
// @Produce json
// @Param deleteEmergencyAlertRequest body handlers.DeleteEmergencyAlertRequest true "Resolution request"
// @Success 200 {object} handlers.DeleteEmergencyAlertResponse "Alert removed"
// @Failure 400 {object} handlers.ErrorResponse "Missing fields"
// @Failure 404 {object} handlers.ErrorResponse "No matching alert"
// @Router /emergency-alert [delete]
func NewDeleteEmergencyAlertHandler(svc AlertResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req DeleteEmergencyAlertRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "Email, petName y petType son obligatorios",
			})
			return
		}
		if err := validate.Struct(req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "Email, petName y petType son obligatorios",
			})
			return
		}

		outcome, err := svc.Resolve(r.Context(), req.Email, req.PetName, req.PetType)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrAlertNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{
					Error: "No se encontró la alerta",
				})
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{
					Error: "Usuario no encontrado",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{
					Error: "Error al eliminar la alerta",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(DeleteEmergencyAlertResponse{
			Message: notifyMessage(outcome, "Alerta eliminada"),
			Success: true,
		})
	}
}
