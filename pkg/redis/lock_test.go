package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocker_AcquireAndRelease(t *testing.T) {
	srv := useMiniredis(t)
	locker := NewLocker("lock:test:")
	ctx := context.Background()

	release, err := locker.Acquire(ctx, "jane@gatech.edu", time.Minute)
	require.NoError(t, err)
	assert.True(t, srv.Exists("lock:test:jane@gatech.edu"))

	_, err = locker.Acquire(ctx, "jane@gatech.edu", time.Minute)
	assert.ErrorIs(t, err, ErrLockHeld)

	release()
	release()
	assert.False(t, srv.Exists("lock:test:jane@gatech.edu"))

	release2, err := locker.Acquire(ctx, "jane@gatech.edu", time.Minute)
	require.NoError(t, err)
	release2()
}

func TestLocker_AcquireBeforeInit(t *testing.T) {
	prev := client
	client = nil
	t.Cleanup(func() { client = prev })

	release, err := NewLocker("lock:test:").Acquire(context.Background(), "e@f.co", time.Minute)
	assert.ErrorIs(t, err, ErrNotInitialized)
	assert.Nil(t, release)
}

func TestLocker_ReleaseDoesNotDropForeignLock(t *testing.T) {
	srv := useMiniredis(t)
	locker := NewLocker("lock:test:")
	ctx := context.Background()

	release, err := locker.Acquire(ctx, "a@b.co", time.Second)
	require.NoError(t, err)

	// Our lock expires and someone else takes the key.
	srv.FastForward(2 * time.Second)
	require.NoError(t, srv.Set("lock:test:a@b.co", "someone-else"))

	release()
	got, err := srv.Get("lock:test:a@b.co")
	require.NoError(t, err)
	assert.Equal(t, "someone-else", got)
}

func TestLocker_ReleaseAfterContextCanceled(t *testing.T) {
	srv := useMiniredis(t)
	locker := NewLocker("lock:test:")
	ctx, cancel := context.WithCancel(context.Background())

	release, err := locker.Acquire(ctx, "c@d.co", time.Minute)
	require.NoError(t, err)
	cancel()
	release()
	assert.False(t, srv.Exists("lock:test:c@d.co"))
}

func TestIncrWindow(t *testing.T) {
	srv := useMiniredis(t)
	ctx := context.Background()

	first, err := IncrWindow(ctx, "rl:1.2.3.4", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.Count)
	assert.Greater(t, first.TTL, time.Duration(0))

	second, err := IncrWindow(ctx, "rl:1.2.3.4", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.Count)

	srv.FastForward(2 * time.Minute)
	reset, err := IncrWindow(ctx, "rl:1.2.3.4", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), reset.Count)
}
