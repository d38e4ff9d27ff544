package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/okhuysen/peturnidad-api/internal/logger"
	"github.com/okhuysen/peturnidad-api/internal/services"
)

// AlertReporter defines the interface that the alerts service must implement.
type AlertReporter interface {
	Report(ctx context.Context, email, colonia string, pet services.AlertPetInput) (services.NotifyOutcome, error)
}

// EmergencyPet is the pet snapshot inside a lost-pet report
// swagger:model EmergencyPet
type EmergencyPet struct {
	// Pet name
	// required: true
	Name string `json:"name" validate:"required"`

	// Pet type, perro or gato
	// required: true
	Type string `json:"type" validate:"required"`

	// Free-text description or features
	Description *string `json:"description"`

	// Public photo URL
	PhotoURL *string `json:"photoUrl"`

	// Disappearance date, RFC 3339; defaults to today
	LostDate *time.Time `json:"lostDate"`
}

// SendEmergencyRequest represents the JSON body for reporting a lost pet
// swagger:model SendEmergencyRequest
type SendEmergencyRequest struct {
	// Reporter email
	// required: true
	Email string `json:"email" validate:"required"`

	// Last-seen colonia
	// required: true
	Colonia string `json:"colonia" validate:"required"`

	// Pet snapshot
	// required: true
	Pet EmergencyPet `json:"pet" validate:"required"`
}

// SendEmergencyResponse represents a successful lost-pet report
// swagger:model SendEmergencyResponse
type SendEmergencyResponse struct {
	// Success message; the wording reflects how the neighbor
	// notification went, but the alert itself is always saved
	Message string `json:"message"`
}

// notifyMessage maps a fan-out outcome to the success wording.
func notifyMessage(outcome services.NotifyOutcome, saved string) string {
	switch outcome {
	case services.NotifyDelivered:
		return saved + " y vecinos notificados"
	case services.NotifyNoRecipients:
		return saved + ", ningún vecino con notificaciones activas"
	default:
		return saved + ", pero falló el envío de notificaciones"
	}
}

// NewSendEmergencyHandler returns an HTTP handler that reports a lost pet.
// @Summary Report a lost pet
// @Description Saves an emergency alert and notifies neighbors in the same colonia, excluding the reporter. Notification failure is reported inside a success response; only the alert insert can fail the request.
// @Tags alerts
// @Accept json
// @Produce json
// @Param sendEmergencyRequest body handlers.SendEmergencyRequest true "Lost-pet report"
// @Success 201 {object} handlers.SendEmergencyResponse "Alert saved"
// @Failure 400 {object} handlers.ErrorResponse "Missing fields"
// @Failure 404 {object} handlers.ErrorResponse "Reporter not found"
// @Router /send-emergency [post]
func NewSendEmergencyHandler(svc AlertReporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SendEmergencyRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "Email, colonia y mascota son obligatorios",
			})
			return
		}
		if err := validate.Struct(req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "Email, colonia y mascota son obligatorios",
			})
			return
		}

		outcome, err := svc.Report(r.Context(), req.Email, req.Colonia, services.AlertPetInput{
			Name:        req.Pet.Name,
			Type:        req.Pet.Type,
			Description: req.Pet.Description,
			PhotoURL:    req.Pet.PhotoURL,
			LostDate:    req.Pet.LostDate,
		})
		if err != nil {
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
					Error: "Error al guardar la alerta",
				})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(SendEmergencyResponse{
			Message: notifyMessage(outcome, "Alerta enviada"),
		})
	}
}
