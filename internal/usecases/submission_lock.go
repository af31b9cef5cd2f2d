package usecases

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"club-site.backend/internal/domain/repositories"
	"club-site.backend/pkg/logger"
	"club-site.backend/pkg/metrics"
	redispkg "club-site.backend/pkg/redis"
)

// errSubmissionInFlight means another submission for the same email holds
// the lock.
var errSubmissionInFlight = errors.New("submission already in flight")

// withEmailLock runs fn while holding the per-email lock for form. When the
// lock backend itself is unavailable fn still runs, unserialised.
func withEmailLock(ctx context.Context, locker repositories.Locker, form, email string, fn func() error) error {
	if locker == nil {
		return fn()
	}
	release, err := locker.Acquire(ctx, form+":"+email, submissionLockTTL)
	switch {
	case errors.Is(err, redispkg.ErrLockHeld):
		metrics.RecordRejection(form, metrics.ReasonLockHeld)
		return errSubmissionInFlight
	case err != nil:
		logger.Warn(ctx, "Submission lock unavailable, continuing without it",
			zap.String("form", form), zap.Error(err))
		return fn()
	}
	defer release()
	return fn()
}
