package cache

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_SetGetEvict(t *testing.T) {
	ctx := context.Background()
	c := NewMemory(DefaultRegions())

	require.NoError(t, c.Set(ctx, RegionAnimals, "a1", []byte(`"x"`)))

	v, ok, err := c.Get(ctx, RegionAnimals, "a1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `"x"`, string(v))

	// Las regiones son independientes.
	_, ok, err = c.Get(ctx, RegionRooms, "a1")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Evict(ctx, RegionAnimals, "a1"))
	_, ok, err = c.Get(ctx, RegionAnimals, "a1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemory_EvictAll_OnlyTouchesRegion(t *testing.T) {
	ctx := context.Background()
	c := NewMemory(DefaultRegions())

	require.NoError(t, c.Set(ctx, RegionFavorites, "byTitle", []byte(`{}`)))
	require.NoError(t, c.Set(ctx, RegionFavorites, "other", []byte(`{}`)))
	require.NoError(t, c.Set(ctx, RegionRooms, "r1", []byte(`{}`)))

	require.NoError(t, c.EvictAll(ctx, RegionFavorites))

	assert.Equal(t, 0, c.Len(RegionFavorites))
	assert.Equal(t, 1, c.Len(RegionRooms))
}

func TestMemory_TTLExpires(t *testing.T) {
	ctx := context.Background()
	c := NewMemory(map[Region]RegionConfig{
		RegionFavorites: {Capacity: 10, TTL: 20 * time.Millisecond},
	})

	require.NoError(t, c.Set(ctx, RegionFavorites, "k", []byte(`1`)))
	time.Sleep(80 * time.Millisecond)

	_, ok, err := c.Get(ctx, RegionFavorites, "k")
	require.NoError(t, err)
	assert.False(t, ok, "entry should have expired")
}

func TestMemory_CapacityBound(t *testing.T) {
	ctx := context.Background()
	c := NewMemory(map[Region]RegionConfig{
		RegionRooms: {Capacity: 2, TTL: time.Minute},
	})

	require.NoError(t, c.Set(ctx, RegionRooms, "r1", []byte(`1`)))
	require.NoError(t, c.Set(ctx, RegionRooms, "r2", []byte(`2`)))
	require.NoError(t, c.Set(ctx, RegionRooms, "r3", []byte(`3`)))

	assert.Equal(t, 2, c.Len(RegionRooms))
	_, ok, _ := c.Get(ctx, RegionRooms, "r1")
	assert.False(t, ok, "least recently used entry should be gone")
}

func TestMemory_UnknownRegion(t *testing.T) {
	c := NewMemory(DefaultRegions())
	_, _, err := c.Get(context.Background(), Region("nope"), "k")
	assert.Error(t, err)
}

func TestGetJSON_RoundTripAndCorruptEntry(t *testing.T) {
	ctx := context.Background()
	c := NewMemory(DefaultRegions())

	require.NoError(t, SetJSON(ctx, c, RegionFavorites, "byTitle", map[string]int64{"Blue": 2}))
	got, ok, err := GetJSON[map[string]int64](ctx, c, RegionFavorites, "byTitle")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, map[string]int64{"Blue": 2}, got)

	require.NoError(t, c.Set(ctx, RegionFavorites, "byTitle", []byte("{not json")))
	_, ok, err = GetJSON[map[string]int64](ctx, c, RegionFavorites, "byTitle")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len(RegionFavorites), "corrupt entry should be evicted")
}

func TestInstrumented_Counters(t *testing.T) {
	ctx := context.Background()
	reg := prometheus.NewRegistry()
	c := Instrument(NewMemory(DefaultRegions()), reg)

	_, _, _ = c.Get(ctx, RegionRooms, "r1")
	_ = c.Set(ctx, RegionRooms, "r1", []byte(`1`))
	_, _, _ = c.Get(ctx, RegionRooms, "r1")
	_ = c.EvictAll(ctx, RegionRooms)
	_, _, _ = c.Get(ctx, Region("nope"), "x")

	assert.Equal(t, 1.0, testutil.ToFloat64(c.hits.WithLabelValues(string(RegionRooms))))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.misses.WithLabelValues(string(RegionRooms))))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.evictions.WithLabelValues(string(RegionRooms), "all")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.errors.WithLabelValues("nope", "get")))
}
