package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/okhuysen/peturnidad-api/internal/logger"
)

// FindAcknowledger defines the interface that the found-pets service must implement.
type FindAcknowledger interface {
	Acknowledge(ctx context.Context, alertID, finderID uuid.UUID) (uuid.UUID, error)
}

// FoundPetRequest represents the JSON body for a finder acknowledgment.
// pet_id is the emergency alert id; the field name comes from the mobile client.
// swagger:model FoundPetRequest
type FoundPetRequest struct {
	// Emergency alert id
	// required: true
	PetID string `json:"pet_id" validate:"required,uuid"`

	// Finder user id
	// required: true
	UserID string `json:"user_id" validate:"required,uuid"`
}

// NewFoundPetHandler returns an HTTP handler that records a finder acknowledgment.
// @Summary Acknowledge a found pet
// @Description Links the finder to the alert. The alert is not checked for existence or resolution; the owner discovers acknowledgments through the found-pets listing.
// @Tags found
// @Accept json
// @Produce json
// @Param foundPetRequest body handlers.FoundPetRequest true "Acknowledgment request"
// @Success 200 {object} handlers.MessageResponse "Acknowledgment recorded"
// @Failure 400 {object} handlers.ErrorResponse "Missing or malformed ids"
// @Router /i-found-a-pet [post]
func NewFoundPetHandler(svc FindAcknowledger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req FoundPetRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "pet_id y user_id son obligatorios",
			})
			return
		}
		if err := validate.Struct(req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "pet_id y user_id son obligatorios",
			})
			return
		}

		alertID, _ := uuid.Parse(req.PetID)
		finderID, _ := uuid.Parse(req.UserID)

		if _, err := svc.Acknowledge(r.Context(), alertID, finderID); err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "Error al registrar el aviso",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(MessageResponse{
			Message: "¡Gracias por avisar! El dueño podrá contactarte.",
		})
	}
}
