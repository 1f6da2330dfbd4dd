package handler

import (
	"context"

	"whale-watch/internal/domain"
	"whale-watch/internal/history"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"
)

type SnapshotBuilder interface {
	BuildSnapshot(ctx context.Context) domain.Snapshot
}

type HistoryReader interface {
	Recent(ctx context.Context, n int) ([]history.Record, error)
}

type Handler struct {
	tracer    trace.Tracer
	snapshots SnapshotBuilder
	auditLog  HistoryReader
}

func New(tracer trace.Tracer, snapshots SnapshotBuilder, auditLog HistoryReader) *Handler {
	return &Handler{
		tracer:    tracer,
		snapshots: snapshots,
		auditLog:  auditLog,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", h.Health)
	r.GET("/api/overview", h.GetOverview)
	r.GET("/api/insight", h.GetInsight)
	r.GET("/api/alerts/preview", h.PreviewAlerts)
	r.GET("/api/alerts/recent", h.GetRecentAlerts)
}
