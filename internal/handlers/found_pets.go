package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/okhuysen/peturnidad-api/internal/logger"
	"github.com/okhuysen/peturnidad-api/internal/models"
)

// FoundLister defines the interface that the found-pets service must implement.
type FoundLister interface {
	ListForOwner(ctx context.Context, ownerID uuid.UUID) ([]models.FoundPetContact, error)
}

// NewFoundPetsHandler returns an HTTP handler that lists acknowledgments for a pet owner.
// @Summary List acknowledgments for an owner
// @Description Returns acknowledgments for the owner's alerts joined with each finder's contact details, newest first.
// @Tags found
// @Produce json
// @Param owner_id path string true "Owner user id"
// @Success 200 {array} models.FoundPetContact "Acknowledgments"
// @Failure 400 {object} handlers.ErrorResponse "Malformed owner id"
// @Router /found-pets/{owner_id} [get]
func NewFoundPetsHandler(svc FoundLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, err := uuid.Parse(chi.URLParam(r, "owner_id"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "owner_id inválido",
			})
			return
		}

		contacts, err := svc.ListForOwner(r.Context(), ownerID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "Error al obtener avisos",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(contacts)
	}
}
