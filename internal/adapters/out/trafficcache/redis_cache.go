// Package trafficcache keeps recent traffic durations in Redis so repeated
// quotes for the same address do not hit the routing API each time.
package trafficcache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/core/domain/model/kernel"
	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

const (
	DefaultTTL = 5 * time.Minute
	keyPrefix  = "traffic:"
)

var _ ports.TrafficService = (*RedisCache)(nil)

// RedisCache decorates a TrafficService. Redis failures are logged and the
// wrapped service answers instead; errors from the wrapped service are
// returned unchanged and never cached.
type RedisCache struct {
	client redis.Cmdable
	next   ports.TrafficService
	ttl    time.Duration
	logger *slog.Logger
}

func NewRedisCache(client redis.Cmdable, next ports.TrafficService, ttl time.Duration, logger *slog.Logger) (*RedisCache, error) {
	if client == nil {
		return nil, errors.New("redis client is nil")
	}
	if next == nil {
		return nil, errors.New("wrapped traffic service is nil")
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &RedisCache{
		client: client,
		next:   next,
		ttl:    ttl,
		logger: logger.With("component", "traffic_cache"),
	}, nil
}

func (c *RedisCache) DurationForRoute(ctx context.Context, origin, destination kernel.Location) (time.Duration, error) {
	key := Key(origin, destination)

	cached, err := c.client.Get(ctx, key).Result()
	switch {
	case err == nil:
		ms, parseErr := strconv.ParseInt(cached, 10, 64)
		if parseErr == nil && ms >= 0 {
			return time.Duration(ms) * time.Millisecond, nil
		}
		c.logger.WarnContext(ctx, "discarding malformed cache entry", "key", key, "value", cached)
	case errors.Is(err, redis.Nil):
	default:
		c.logger.WarnContext(ctx, "traffic cache read failed", "key", key, "error", err)
	}

	d, err := c.next.DurationForRoute(ctx, origin, destination)
	if err != nil {
		return 0, err
	}

	if d >= 0 {
		if setErr := c.client.Set(ctx, key, strconv.FormatInt(d.Milliseconds(), 10), c.ttl).Err(); setErr != nil {
			c.logger.WarnContext(ctx, "traffic cache write failed", "key", key, "error", setErr)
		}
	}

	return d, nil
}

// Key rounds both ends to 5 decimals (about one metre) so nearby lookups
// share an entry.
func Key(origin, destination kernel.Location) string {
	return fmt.Sprintf("%s%.5f,%.5f:%.5f,%.5f", keyPrefix,
		origin.Latitude(), origin.Longitude(),
		destination.Latitude(), destination.Longitude())
}
