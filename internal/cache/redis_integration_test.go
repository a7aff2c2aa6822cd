//go:build integration

package cache

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startRedis(t *testing.T) *redis.Client {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping integration test in short mode (requires Docker)")
	}

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379")
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: fmt.Sprintf("%s:%s", host, port.Port())})
	require.NoError(t, client.Ping(ctx).Err())
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestRedis_BehavesLikeMemory(t *testing.T) {
	ctx := context.Background()
	c := NewRedis(startRedis(t), "zoo-test", map[Region]RegionConfig{
		RegionAnimals:   {TTL: time.Minute},
		RegionFavorites: {TTL: time.Second},
	})

	require.NoError(t, c.Set(ctx, RegionAnimals, "a1", []byte(`"x"`)))
	v, ok, err := c.Get(ctx, RegionAnimals, "a1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `"x"`, string(v))

	require.NoError(t, c.Evict(ctx, RegionAnimals, "a1"))
	_, ok, err = c.Get(ctx, RegionAnimals, "a1")
	require.NoError(t, err)
	assert.False(t, ok)

	for i := 0; i < 1200; i++ {
		require.NoError(t, c.Set(ctx, RegionFavorites, fmt.Sprintf("k%d", i), []byte(`1`)))
	}
	require.NoError(t, c.Set(ctx, RegionAnimals, "keep", []byte(`1`)))
	require.NoError(t, c.EvictAll(ctx, RegionFavorites))

	_, ok, err = c.Get(ctx, RegionFavorites, "k7")
	require.NoError(t, err)
	assert.False(t, ok)
	_, ok, err = c.Get(ctx, RegionAnimals, "keep")
	require.NoError(t, err)
	assert.True(t, ok, "EvictAll must not leak into other regions")

	require.NoError(t, c.Set(ctx, RegionFavorites, "ttl", []byte(`1`)))
	time.Sleep(1500 * time.Millisecond)
	_, ok, err = c.Get(ctx, RegionFavorites, "ttl")
	require.NoError(t, err)
	assert.False(t, ok)
}
