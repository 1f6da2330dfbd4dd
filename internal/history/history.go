// Package history keeps a capped audit trail of dispatched alert
// batches in Redis. It is write-after-dispatch only: nothing in the
// snapshot or alert evaluation path ever reads it.
package history

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/trace"
)

const historyKey = "alerts:history"

type RedisClient interface {
	LPush(ctx context.Context, key string, values ...interface{}) *redis.IntCmd
	LTrim(ctx context.Context, key string, start, stop int64) *redis.StatusCmd
	LRange(ctx context.Context, key string, start, stop int64) *redis.StringSliceCmd
}

// Record is one dispatched alert batch.
type Record struct {
	SentAt time.Time `json:"sent_at"`
	Lines  []string  `json:"lines"`
}

// Log records and lists alert batches. A nil Redis client disables it
// silently so deployments without Redis keep working.
type Log struct {
	tracer trace.Tracer
	redis  RedisClient
	limit  int64
}

func NewLog(tracer trace.Tracer, redisClient RedisClient, limit int) *Log {
	if limit <= 0 {
		limit = 100
	}
	return &Log{tracer: tracer, redis: redisClient, limit: int64(limit)}
}

// Record appends a batch to the trail and trims it to the configured
// cap. Failures are logged, never surfaced: losing an audit row must
// not affect alert dispatch.
func (l *Log) Record(ctx context.Context, rec Record) {
	if l == nil || l.redis == nil {
		return
	}
	_, span := l.tracer.Start(ctx, "history.record")
	defer span.End()

	data, err := json.Marshal(rec)
	if err != nil {
		log.Warn().Err(err).Msg("alert history encode failed")
		return
	}
	if err := l.redis.LPush(ctx, historyKey, data).Err(); err != nil {
		log.Warn().Err(err).Msg("alert history write failed")
		return
	}
	if err := l.redis.LTrim(ctx, historyKey, 0, l.limit-1).Err(); err != nil {
		log.Warn().Err(err).Msg("alert history trim failed")
	}
}

// Recent returns up to n batches, newest first. Rows that no longer
// decode are skipped.
func (l *Log) Recent(ctx context.Context, n int) ([]Record, error) {
	if l == nil || l.redis == nil {
		return []Record{}, nil
	}
	_, span := l.tracer.Start(ctx, "history.recent")
	defer span.End()

	if n <= 0 || int64(n) > l.limit {
		n = int(l.limit)
	}
	rows, err := l.redis.LRange(ctx, historyKey, 0, int64(n)-1).Result()
	if err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		var rec Record
		if err := json.Unmarshal([]byte(row), &rec); err != nil {
			log.Warn().Err(err).Msg("skipping undecodable alert history row")
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}
