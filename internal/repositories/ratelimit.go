package repositories

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/gw-gift-cards/internal/logger"
)

// RateLimitRepository implements a fixed-window counter in Redis.
// Gift card codes are guessable secrets, so the code-bearing endpoints
// are throttled per client.
type RateLimitRepository struct {
	client *redis.Client
}

func NewRateLimitRepository(client *redis.Client) *RateLimitRepository {
	return &RateLimitRepository{client: client}
}

// Allow increments the counter for key and reports whether the caller is
// still within limit for the current window. The first increment in a
// window sets the window expiry.
func (r *RateLimitRepository) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	count, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}

	if count == 1 {
		if err := r.client.Expire(ctx, key, window).Err(); err != nil {
			return false, err
		}
	}

	allowed := count <= int64(limit)

	logger.Log.Infow("rate limit check",
		"key", key,
		"count", count,
		"limit", limit,
		"allowed", allowed,
	)

	return allowed, nil
}
