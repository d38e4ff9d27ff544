package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/okhuysen/peturnidad-api/internal/logger"
	"github.com/okhuysen/peturnidad-api/internal/services"
)

// ProfilePictureSetter defines the interface that the profile service must implement.
type ProfilePictureSetter interface {
	SetPicture(ctx context.Context, email, url string) error
}

// ProfilePictureRequest represents the JSON body for a profile photo update
// swagger:model ProfilePictureRequest
type ProfilePictureRequest struct {
	// Email
	// required: true
	Email string `json:"email" validate:"required"`

	// Public URL returned by the upload endpoint
	// required: true
	ImageURL string `json:"imageUrl" validate:"required"`
}

// MessageResponse represents a plain success message
// swagger:model MessageResponse
type MessageResponse struct {
	// Success message
	Message string `json:"message"`
}

// NewProfilePictureHandler returns an HTTP handler that sets the profile photo URL.
// @Summary Update profile photo
// @Tags profile
// @Accept json
// @Produce json
// @Param profilePictureRequest body handlers.ProfilePictureRequest true "Photo update request"
// @Success 200 {object} handlers.MessageResponse "Photo updated"
// @Failure 400 {object} handlers.ErrorResponse "Missing fields"
// @Failure 404 {object} handlers.ErrorResponse "Profile not found"
// @Router /user-profile-picture [put]
func NewProfilePictureHandler(svc ProfilePictureSetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ProfilePictureRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "Email e imageUrl son obligatorios",
			})
			return
		}
		if err := validate.Struct(req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "Email e imageUrl son obligatorios",
			})
			return
		}

		if err := svc.SetPicture(r.Context(), req.Email, req.ImageURL); err != nil {
			switch {
			case errors.Is(err, services.ErrProfileNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{
					Error: "Perfil no encontrado",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{
					Error: "Error al actualizar foto de perfil",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(MessageResponse{
			Message: "Foto de perfil actualizada",
		})
	}
}
