package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bloodlifesaver/api/internal/respond"
)

func (h HandlerSet) Stats(c *gin.Context) {
	stats, err := h.admin.Statistics(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	respond.Success(c, http.StatusOK, "Statistics fetched successfully", stats)
}

func (h HandlerSet) BloodDistribution(c *gin.Context) {
	distribution, err := h.admin.BloodTypeDistribution(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	respond.Success(c, http.StatusOK, "Blood type distribution fetched successfully", distribution)
}

func (h HandlerSet) RecentActivity(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			limit = v
		}
	}

	activity, err := h.admin.RecentActivity(c.Request.Context(), limit)
	if err != nil {
		h.respondError(c, err)
		return
	}

	respond.Success(c, http.StatusOK, "Recent activity fetched successfully", activity)
}
