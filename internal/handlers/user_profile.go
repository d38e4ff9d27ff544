package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/okhuysen/peturnidad-api/internal/logger"
	"github.com/okhuysen/peturnidad-api/internal/models"
	"github.com/okhuysen/peturnidad-api/internal/services"
)

// ProfileGetter defines the interface that the profile service must implement.
type ProfileGetter interface {
	Get(ctx context.Context, email string) (*models.ProfileDB, error)
}

// NewUserProfileHandler returns an HTTP handler that fetches a profile by email.
// @Summary Fetch a user profile
// @Tags profile
// @Produce json
// @Param email query string true "Account email"
// @Success 200 {object} models.ProfileDB "Profile row"
// @Failure 400 {object} handlers.ErrorResponse "Missing email"
// @Failure 404 {object} handlers.ErrorResponse "Profile not found"
// @Router /user-profile [get]
func NewUserProfileHandler(svc ProfileGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email := r.URL.Query().Get("email")
		if email == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "El email es requerido",
			})
			return
		}

		profile, err := svc.Get(r.Context(), email)
		if err != nil {
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
					Error: "Error al obtener perfil",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(profile)
	}
}
