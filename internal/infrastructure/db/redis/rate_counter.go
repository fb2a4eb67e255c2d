package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateCounter implements a fixed-window request counter backed by Redis.
// Key format: ratelimit:<scope>:<client>:<window_start_unix>
type RateCounter struct {
	client *redis.Client
}

func NewRateCounter(client *redis.Client) *RateCounter {
	return &RateCounter{client: client}
}

// Incr bumps the counter for the client in the current window and returns
// the running total. The key expires with the window so stale counters
// clean themselves up.
func (r *RateCounter) Incr(ctx context.Context, scope, client string, window time.Duration) (int64, error) {
	windowStart := time.Now().Unix() / int64(window.Seconds()) * int64(window.Seconds())
	key := fmt.Sprintf("ratelimit:%s:%s:%d", scope, client, windowStart)

	pipe := r.client.TxPipeline()
	count := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("rate counter: %w", err)
	}
	return count.Val(), nil
}
