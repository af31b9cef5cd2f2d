package redis

import (
	"context"
	"time"
)

// WindowCount is the state of a fixed rate-limit window after one hit.
type WindowCount struct {
	Count int64
	TTL   time.Duration
}

// IncrWindow increments key and starts its expiry on the first hit of a window.
func IncrWindow(ctx context.Context, key string, window time.Duration) (WindowCount, error) {
	if client == nil {
		return WindowCount{}, ErrNotInitialized
	}

	pipe := client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	ttl := pipe.PTTL(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return WindowCount{}, err
	}

	// A key without expiry is a fresh window (or one whose EXPIRE was lost).
	remaining := ttl.Val()
	if remaining < 0 {
		if err := client.PExpire(ctx, key, window).Err(); err != nil {
			return WindowCount{}, err
		}
		remaining = window
	}
	return WindowCount{Count: incr.Val(), TTL: remaining}, nil
}
