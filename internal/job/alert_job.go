package job

import (
	"context"
	"strings"
	"time"

	"whale-watch/internal/domain"
	"whale-watch/internal/history"
	"whale-watch/internal/watch"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/trace"
)

type SnapshotBuilder interface {
	BuildSnapshot(ctx context.Context) domain.Snapshot
}

// Dispatcher sends one text message to the operator channel.
type Dispatcher interface {
	Dispatch(ctx context.Context, text string) error
}

type HistoryRecorder interface {
	Record(ctx context.Context, rec history.Record)
}

// AlertJob runs the aggregate-evaluate-dispatch cycle on a fixed
// interval. Ticks are consumed on a single loop, so one cycle always
// finishes before the next begins.
type AlertJob struct {
	tracer       trace.Tracer
	builder      SnapshotBuilder
	dispatcher   Dispatcher
	auditLog     HistoryRecorder
	pollInterval time.Duration
}

func NewAlertJob(tracer trace.Tracer, builder SnapshotBuilder, dispatcher Dispatcher, auditLog HistoryRecorder, pollInterval time.Duration) *AlertJob {
	if pollInterval <= 0 {
		pollInterval = 5 * time.Minute
	}
	return &AlertJob{
		tracer:       tracer,
		builder:      builder,
		dispatcher:   dispatcher,
		auditLog:     auditLog,
		pollInterval: pollInterval,
	}
}

// Start blocks until ctx is cancelled.
func (j *AlertJob) Start(ctx context.Context) {
	if j.builder == nil || j.dispatcher == nil {
		log.Info().Msg("alert job disabled: no snapshot builder or operator channel configured")
		<-ctx.Done()
		return
	}

	j.runOnce(ctx)
	ticker := time.NewTicker(j.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			j.runOnce(ctx)
		}
	}
}

func (j *AlertJob) runOnce(ctx context.Context) {
	ctx, span := j.tracer.Start(ctx, "alert-job.run-once")
	defer span.End()

	snapshot := j.builder.BuildSnapshot(ctx)
	alerts := watch.EvaluateAlerts(snapshot)
	if len(alerts) == 0 {
		return
	}

	if err := j.dispatcher.Dispatch(ctx, strings.Join(alerts, "\n")); err != nil {
		log.Error().Err(err).Int("alerts", len(alerts)).Msg("alert dispatch failed")
		return
	}
	log.Info().Int("alerts", len(alerts)).Msg("alerts dispatched")

	if j.auditLog != nil {
		j.auditLog.Record(ctx, history.Record{SentAt: time.Now().UTC(), Lines: alerts})
	}
}
