package database

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/Taeppir/Link/internal/pkg/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedis(t *testing.T) (*miniredis.Miniredis, *RedisClient) {
	t.Helper()
	mr := miniredis.RunT(t)
	client, err := NewRedisClient(models.RedisConfig{
		Host:     mr.Host(),
		Port:     mustPort(t, mr.Port()),
		PoolSize: 2,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func mustPort(t *testing.T, port string) int {
	t.Helper()
	var p int
	_, err := fmt.Sscanf(port, "%d", &p)
	require.NoError(t, err)
	return p
}

func TestNewRedisClient_ConnectionError(t *testing.T) {
	client, err := NewRedisClient(models.RedisConfig{Host: "127.0.0.1", Port: 1})

	assert.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "failed to connect to redis")
}

func TestRedisClient_SetGetDelete(t *testing.T) {
	mr, client := setupRedis(t)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "k", "v", time.Minute))
	got, err := client.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", got)

	mr.FastForward(2 * time.Minute)
	_, err = client.Get(ctx, "k")
	assert.ErrorIs(t, err, redis.Nil)

	require.NoError(t, client.Set(ctx, "k2", "v", 0))
	require.NoError(t, client.Delete(ctx, "k2"))
	assert.False(t, mr.Exists("k2"))
	assert.NoError(t, client.Delete(ctx))
}

func TestRedisClient_DeleteByPattern(t *testing.T) {
	mr, client := setupRedis(t)
	ctx := context.Background()

	for i := 0; i < 150; i++ {
		require.NoError(t, mr.Set(fmt.Sprintf("route:result:%d", i), "x"))
	}
	require.NoError(t, mr.Set("other", "x"))

	removed, err := client.DeleteByPattern(ctx, "route:result:*")

	require.NoError(t, err)
	assert.Equal(t, 150, removed)
	assert.True(t, mr.Exists("other"))
	assert.NoError(t, client.Ping(ctx))
}
