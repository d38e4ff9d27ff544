package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/okhuysen/peturnidad-api/internal/logger"
)

// Sweeper defines the interface that the maintenance service must implement.
type Sweeper interface {
	CleanupIncompleteUsers(ctx context.Context) (int64, error)
}

// CleanupResponse represents a cleanup sweep result
// swagger:model CleanupResponse
type CleanupResponse struct {
	// Success message
	// example: Limpieza completada
	Message string `json:"message"`

	// Number of deleted accounts
	DeletedUsers int64 `json:"deletedUsers"`
}

// NewCleanupHandler returns an HTTP handler for the incomplete-account sweep.
// @Summary Delete stale incomplete accounts
// @Description Removes accounts that never completed their profile within the retention window. Idempotent.
// @Tags maintenance
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.CleanupResponse "Sweep finished"
// @Failure 401 "Missing or invalid token"
// @Router /cleanup-incomplete-users [delete]
func NewCleanupHandler(svc Sweeper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		deleted, err := svc.CleanupIncompleteUsers(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "Error en limpieza",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(CleanupResponse{
			Message:      "Limpieza completada",
			DeletedUsers: deleted,
		})
	}
}
