package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/okhuysen/peturnidad-api/internal/logger"
	"github.com/okhuysen/peturnidad-api/internal/models"
)

// PetsLister defines the interface that the pets service must implement.
type PetsLister interface {
	List(ctx context.Context, email string) ([]models.PetDB, error)
}

// NewPetsListHandler returns an HTTP handler that lists an owner's pets.
// @Summary List an owner's pets
// @Tags pets
// @Produce json
// @Param email query string true "Owner email"
// @Success 200 {array} models.PetDB "Pets, newest first"
// @Failure 400 {object} handlers.ErrorResponse "Missing email"
// @Router /pets [get]
func NewPetsListHandler(svc PetsLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email := r.URL.Query().Get("email")
		if email == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "El email es requerido",
			})
			return
		}

		pets, err := svc.List(r.Context(), email)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "Error al obtener mascotas",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(pets)
	}
}
