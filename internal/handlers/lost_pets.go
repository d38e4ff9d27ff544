package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/okhuysen/peturnidad-api/internal/logger"
	"github.com/okhuysen/peturnidad-api/internal/models"
)

// AlertFeeder defines the interface that the alerts service must implement.
type AlertFeeder interface {
	Feed(ctx context.Context, colonia string) ([]models.EmergencyAlertDB, error)
}

// NewLostPetsHandler returns an HTTP handler for the colony lost-pets feed.
// @Summary Colony lost-pets feed
// @Description Lists alerts whose last-seen colonia exactly matches the query, newest first.
// @Tags alerts
// @Produce json
// @Param colonia query string true "Colonia"
// @Success 200 {array} models.EmergencyAlertDB "Alerts, newest first"
// @Failure 400 {object} handlers.ErrorResponse "Missing colonia"
// @Router /lost-pets [get]
func NewLostPetsHandler(svc AlertFeeder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		colonia := r.URL.Query().Get("colonia")
		if colonia == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "La colonia es requerida",
			})
			return
		}

		alerts, err := svc.Feed(r.Context(), colonia)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "Error al obtener mascotas perdidas",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(alerts)
	}
}
