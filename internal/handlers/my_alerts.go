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

// OwnerAlertsLister defines the interface that the alerts service must implement.
type OwnerAlertsLister interface {
	OwnerFeed(ctx context.Context, email string) ([]models.EmergencyAlertDB, error)
}

// NewMyAlertsHandler returns an HTTP handler listing a reporter's own alerts.
// @Summary List a reporter's own alerts
// @Tags alerts
// @Produce json
// @Param email query string true "Reporter email"
// @Success 200 {array} models.EmergencyAlertDB "Alerts, newest first"
// @Failure 400 {object} handlers.ErrorResponse "Missing email"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /my-alerts [get]
func NewMyAlertsHandler(svc OwnerAlertsLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email := r.URL.Query().Get("email")
		if email == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "El email es requerido",
			})
			return
		}

		alerts, err := svc.OwnerFeed(r.Context(), email)
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
					Error: "Error al obtener alertas",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(alerts)
	}
}
