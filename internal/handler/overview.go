package handler

import (
	"net/http"
	"time"

	"whale-watch/internal/watch"

	"github.com/gin-gonic/gin"
)

// GetOverview godoc
// @Summary      Aggregated dashboard snapshot
// @Description  Builds a fresh snapshot of all four telemetry sections, substituting fallback data per section on upstream failure
// @Tags         overview
// @Produce      json
// @Success      200  {object}  domain.Snapshot
// @Failure      503  {object}  map[string]string
// @Router       /api/overview [get]
func (h *Handler) GetOverview(c *gin.Context) {
	if h.snapshots == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "snapshot service unavailable"})
		return
	}

	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-overview")
	defer span.End()

	c.JSON(http.StatusOK, h.snapshots.BuildSnapshot(ctx))
}

// GetInsight godoc
// @Summary      Qualitative market interpretation
// @Description  Derives the ordered sentiment insight lines from a fresh snapshot
// @Tags         insight
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      503  {object}  map[string]string
// @Router       /api/insight [get]
func (h *Handler) GetInsight(c *gin.Context) {
	if h.snapshots == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "snapshot service unavailable"})
		return
	}

	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-insight")
	defer span.End()

	snapshot := h.snapshots.BuildSnapshot(ctx)
	c.JSON(http.StatusOK, gin.H{
		"lines": watch.DeriveInsight(snapshot, time.Now()),
	})
}
