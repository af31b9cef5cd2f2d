package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	srv := miniredis.RunT(t)
	prev := client
	SetClient(goredis.NewClient(&goredis.Options{Addr: srv.Addr()}))
	t.Cleanup(func() {
		_ = client.Close()
		client = prev
	})
	return srv
}

func TestInitInvalidURL(t *testing.T) {
	err := Init("://invalid-url", "")
	assert.Error(t, err)
}

func TestInitWithMiniredis(t *testing.T) {
	srv := miniredis.RunT(t)
	prev := client
	t.Cleanup(func() {
		_ = Close()
		client = prev
	})

	require.NoError(t, Init("redis://"+srv.Addr(), ""))
	assert.NotNil(t, GetClient())
	assert.NoError(t, Ping(context.Background()))
}

func TestHelpersBeforeInit(t *testing.T) {
	prev := client
	client = nil
	t.Cleanup(func() { client = prev })

	ctx := context.Background()
	assert.ErrorIs(t, Ping(ctx), ErrNotInitialized)
	_, err := SetNX(ctx, "k", "v", time.Second)
	assert.ErrorIs(t, err, ErrNotInitialized)
	_, err = IncrWindow(ctx, "k", time.Second)
	assert.ErrorIs(t, err, ErrNotInitialized)
	assert.NoError(t, Close())
}

func TestSetNX(t *testing.T) {
	srv := useMiniredis(t)
	ctx := context.Background()

	ok, err := SetNX(ctx, "k", "v", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, time.Minute, srv.TTL("k"))

	ok, err = SetNX(ctx, "k", "other", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)
	v, err := srv.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "v", v)
}

func TestSetClientAndBasicOpsWithUnreachableRedis(t *testing.T) {
	prev := client
	t.Cleanup(func() { client = prev })

	SetClient(goredis.NewClient(&goredis.Options{
		Addr:         "127.0.0.1:0",
		DialTimeout:  50 * time.Millisecond,
		ReadTimeout:  50 * time.Millisecond,
		WriteTimeout: 50 * time.Millisecond,
	}))

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	_, err := SetNX(ctx, "k", "v", time.Second)
	assert.Error(t, err)
	_, err = IncrWindow(ctx, "k", time.Second)
	assert.Error(t, err)
}

func TestPingClient_WrapperExecutes(t *testing.T) {
	c := goredis.NewClient(&goredis.Options{Addr: "127.0.0.1:0"})
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	if err := pingClient(ctx, c); err == nil {
		t.Fatal("expected ping error for invalid redis endpoint")
	}
}
