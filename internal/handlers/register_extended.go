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

// ProfileCompleter defines the interface that the profile service must implement.
type ProfileCompleter interface {
	Complete(ctx context.Context, email, firstName, lastName, phone, birthDate, postalCode, address, city string) (userID, profileID uuid.UUID, err error)
}

// RegisterExtendedRequest represents the JSON body for profile completion
// swagger:model RegisterExtendedRequest
type RegisterExtendedRequest struct {
	// Email of the account to complete
	// required: true
	Email string `json:"email" validate:"required"`

	// First name
	// required: true
	FirstName string `json:"firstName" validate:"required"`

	// Last name
	// required: true
	LastName string `json:"lastName" validate:"required"`

	// Phone
	// required: true
	Phone string `json:"phone" validate:"required"`

	// Birth date, DD/MM/YYYY
	BirthDate string `json:"birthDate"`

	// Postal code
	PostalCode string `json:"postalCode"`

	// Colonia (neighborhood), the neighbor-matching key
	Address string `json:"address"`

	// City
	City string `json:"city"`
}

// RegisterExtendedResponse represents a successful profile completion
// swagger:model RegisterExtendedResponse
type RegisterExtendedResponse struct {
	// Success message
	// example: Registro completado exitosamente
	Message string `json:"message"`

	UserID    string `json:"userId"`
	ProfileID string `json:"profileId"`
}

// NewRegisterExtendedHandler returns an HTTP handler for profile completion.
// The route runs under the transaction middleware: the profile insert and
// the completion-flag update land together or not at all.
// @Summary Complete an account profile
// @Description Attaches a profile to an account and marks it complete, atomically.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerExtendedRequest body handlers.RegisterExtendedRequest true "Profile completion request"
// @Success 201 {object} handlers.RegisterExtendedResponse "Profile created"
// @Failure 400 {object} handlers.ErrorResponse "Missing fields"
// @Failure 404 {object} handlers.ErrorResponse "Account not found"
// @Router /register-extended [post]
func NewRegisterExtendedHandler(svc ProfileCompleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterExtendedRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "Email, nombre, apellido y teléfono son obligatorios",
			})
			return
		}
		if err := validate.Struct(req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "Email, nombre, apellido y teléfono son obligatorios",
			})
			return
		}

		userID, profileID, err := svc.Complete(r.Context(),
			req.Email, req.FirstName, req.LastName, req.Phone,
			req.BirthDate, req.PostalCode, req.Address, req.City)
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
					Error: "Error al completar registro",
				})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(RegisterExtendedResponse{
			Message:   "Registro completado exitosamente",
			UserID:    userID.String(),
			ProfileID: profileID.String(),
		})
	}
}
