package repositories

import (
	"context"
)

// UnitOfWork defines the interface for atomic operations
type UnitOfWork interface {
	// Do executes fn within a transaction scope; repositories called with
	// the ctx passed to fn take part in that transaction.
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
