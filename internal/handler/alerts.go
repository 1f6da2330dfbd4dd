package handler

import (
	"net/http"
	"strconv"

	"whale-watch/internal/watch"

	"github.com/gin-gonic/gin"
)

// PreviewAlerts godoc
// @Summary      Evaluate alert thresholds right now
// @Description  Builds a fresh snapshot and returns the alert lines it would dispatch, without dispatching them
// @Tags         alerts
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      503  {object}  map[string]string
// @Router       /api/alerts/preview [get]
func (h *Handler) PreviewAlerts(c *gin.Context) {
	if h.snapshots == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "snapshot service unavailable"})
		return
	}

	ctx, span := h.tracer.Start(c.Request.Context(), "handler.preview-alerts")
	defer span.End()

	alerts := watch.EvaluateAlerts(h.snapshots.BuildSnapshot(ctx))
	if alerts == nil {
		alerts = []string{}
	}
	c.JSON(http.StatusOK, gin.H{
		"alerts": alerts,
		"count":  len(alerts),
	})
}

// GetRecentAlerts godoc
// @Summary      Recently dispatched alert batches
// @Description  Lists the audit trail of dispatched alerts, newest first
// @Tags         alerts
// @Produce      json
// @Param        limit  query     int  false  "Maximum batches to return"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /api/alerts/recent [get]
func (h *Handler) GetRecentAlerts(c *gin.Context) {
	if h.auditLog == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "alert history unavailable"})
		return
	}

	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-recent-alerts")
	defer span.End()

	limit := 20
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	records, err := h.auditLog.Recent(ctx, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"alerts": records})
}
