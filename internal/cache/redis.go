package cache

import (
	"context"
	"strings"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

var (
	newRedisClient = func(opts *redis.Options) *redis.Client {
		return redis.NewClient(opts)
	}
	pingRedis = func(ctx context.Context, client *redis.Client) error {
		return client.Ping(ctx).Err()
	}
	parseRedisURL = redis.ParseURL
)

// InitRedis connects to the given address or URL. Redis only backs the
// alert audit trail here, so an unreachable server degrades to a nil
// client instead of failing startup.
func InitRedis(ctx context.Context, addr string) *redis.Client {
	if addr == "" {
		addr = "localhost:6379"
	}

	opts := &redis.Options{Addr: addr}
	if strings.HasPrefix(addr, "redis://") || strings.HasPrefix(addr, "rediss://") {
		parsed, err := parseRedisURL(addr)
		if err != nil {
			log.Warn().Err(err).Msg("failed to parse REDIS_URL, alert history disabled")
			return nil
		}
		opts = parsed
	}

	client := newRedisClient(opts)
	if err := pingRedis(ctx, client); err != nil {
		log.Warn().Err(err).Msg("failed to connect to Redis, alert history disabled")
		return nil
	}
	log.Info().Msg("Connected to Redis")
	return client
}
