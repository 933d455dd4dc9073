package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"bloodlifesaver/api/internal/respond"
)

type healthData struct {
	Database    string `json:"database"`
	Environment string `json:"environment"`
}

func (h HandlerSet) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	dbStatus := "ok"
	if h.db != nil {
		if err := h.db.Ping(ctx); err != nil {
			dbStatus = "error"
			h.log.Error().Err(err).Msg("database ping failed")
		}
	}

	respond.Success(c, http.StatusOK, "BloodLifeSaver API is running", healthData{
		Database:    dbStatus,
		Environment: h.cfg.Environment,
	})
}
