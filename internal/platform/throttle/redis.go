package throttle

import (
	"context"
	"fmt"
	"time"

	"copilot_accounts/internal/platform/config"

	"github.com/redis/go-redis/v9"
)

func ConnectRedis(cfg *config.Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("connecting to redis: %w", err)
	}
	return rdb, nil
}

// LoginLimiter counts login attempts per key in a fixed window. It sits in
// front of the credential check to slow down online password guessing; the
// credential logic itself never consults it.
type LoginLimiter struct {
	rdb    *redis.Client
	max    int
	window time.Duration
}

func NewLoginLimiter(rdb *redis.Client, max int, window time.Duration) *LoginLimiter {
	return &LoginLimiter{rdb: rdb, max: max, window: window}
}

// Allow reports whether another attempt for key is permitted. A nil limiter
// or a limiter without a redis connection always allows; throttling is
// hardening, not a prerequisite for logging in.
func (l *LoginLimiter) Allow(ctx context.Context, key string) (bool, error) {
	if l == nil || l.rdb == nil {
		return true, nil
	}

	redisKey := "login_attempts:" + key
	count, err := l.rdb.Incr(ctx, redisKey).Result()
	if err != nil {
		return false, fmt.Errorf("LoginLimiter.Allow: %w", err)
	}
	if count == 1 {
		// First attempt in the window owns the expiry.
		if err := l.rdb.Expire(ctx, redisKey, l.window).Err(); err != nil {
			return false, fmt.Errorf("LoginLimiter.Allow: %w", err)
		}
	}

	return count <= int64(l.max), nil
}
