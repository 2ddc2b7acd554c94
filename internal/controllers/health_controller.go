package controllers

import (
	"context"
	"net/http"

	"github.com/thegrihome/grihome-api/internal/dtos"
	"github.com/thegrihome/grihome-api/internal/utils"
)

// Pinger is the slice of the pool the health check needs.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthController struct {
	db Pinger
}

func NewHealthController(db Pinger) *HealthController {
	return &HealthController{db: db}
}

func (c *HealthController) HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	if err := c.db.Ping(r.Context()); err != nil {
		utils.Logger.WithError(err).Error("Database unreachable")
		utils.RespondError(w, http.StatusServiceUnavailable, "Database unreachable", err, false)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.HealthCheckResponse{Status: "OK"})
}
