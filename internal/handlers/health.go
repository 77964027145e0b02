package handlers

//go:generate mockgen -source=health.go -destination=health_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-storefront/internal/logger"
)

// Pinger checks the database connection. *sqlx.DB implements it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthResponse reports service status
// swagger:model HealthResponse
type HealthResponse struct {
	// default: OK
	Status  string `json:"status"`
	Message string `json:"message"`
}

// NewHealthHandler returns an HTTP handler reporting whether the database is reachable.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} handlers.HealthResponse "Healthy"
// @Failure 503 {object} handlers.HealthResponse "Database unreachable"
// @Router /health [get]
func NewHealthHandler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			logger.Log.Errorw("health check failed", "err", err)
			writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status:  "Unavailable",
				Message: "Database is unreachable",
			})
			return
		}

		writeJSON(w, http.StatusOK, HealthResponse{
			Status:  "OK",
			Message: "Server is running",
		})
	}
}
