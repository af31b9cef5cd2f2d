package repositories

import (
	"context"
	"time"
)

// Locker provides short-lived keyed mutual exclusion across instances.
type Locker interface {
	// Acquire takes key for at most ttl and returns the func that frees it.
	Acquire(ctx context.Context, key string, ttl time.Duration) (release func(), err error)
}
