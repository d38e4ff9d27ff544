package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/okhuysen/peturnidad-api/internal/logger"
	"github.com/okhuysen/peturnidad-api/internal/services"
)

// PetCreator defines the interface that the pets service must implement.
type PetCreator interface {
	Create(ctx context.Context, email, petType, name, color, size string, features, photoURL *string) (uuid.UUID, error)
}

// PetRegisterRequest represents the JSON body for registering a pet
// swagger:model PetRegisterRequest
type PetRegisterRequest struct {
	// Owner email
	// required: true
	Email string `json:"email" validate:"required"`

	// Pet type, perro or gato
	// required: true
	Type string `json:"type" validate:"required"`

	// Pet name
	// required: true
	Name string `json:"name" validate:"required"`

	// Coat color
	// required: true
	Color string `json:"color" validate:"required"`

	// Size
	// required: true
	Size string `json:"size" validate:"required"`

	// Free-text distinguishing features
	Features *string `json:"features"`

	// Public photo URL from the upload endpoint
	PhotoURL *string `json:"photoUrl"`
}

// PetRegisterResponse represents a successful pet registration
// swagger:model PetRegisterResponse
type PetRegisterResponse struct {
	// Success message
	// example: Mascota registrada correctamente
	Message string `json:"message"`

	PetID string `json:"petId"`
}

// NewPetRegisterHandler returns an HTTP handler that registers a pet.
// @Summary Register a pet
// @Tags pets
// @Accept json
// @Produce json
// @Param petRegisterRequest body handlers.PetRegisterRequest true "Pet registration request"
// @Success 201 {object} handlers.PetRegisterResponse "Pet registered"
// @Failure 400 {object} handlers.ErrorResponse "Missing fields or invalid pet type"
// @Failure 404 {object} handlers.ErrorResponse "Owner not found"
// @Router /pet [post]
func NewPetRegisterHandler(svc PetCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PetRegisterRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "Faltan campos obligatorios de la mascota",
			})
			return
		}
		if err := validate.Struct(req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "Faltan campos obligatorios de la mascota",
			})
			return
		}

		petID, err := svc.Create(r.Context(), req.Email, req.Type, req.Name, req.Color, req.Size, req.Features, req.PhotoURL)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidPetType):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{
					Error: "Tipo de mascota inválido",
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
					Error: "Error al registrar mascota",
				})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(PetRegisterResponse{
			Message: "Mascota registrada correctamente",
			PetID:   petID.String(),
		})
	}
}
