package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Region agrupa entradas con la misma política de capacidad y TTL.
type Region string

const (
	RegionAnimals   Region = "animalsById"
	RegionRooms     Region = "roomsById"
	RegionFavorites Region = "favoriteRoomsAggByTitle"
)

// RegionConfig define capacidad máxima y TTL de una región.
// Capacity <= 0 significa "sin límite" (solo aplica al backend en memoria).
type RegionConfig struct {
	Capacity int
	TTL      time.Duration
}

// DefaultRegions son los valores por defecto del servicio (ver config).
func DefaultRegions() map[Region]RegionConfig {
	return map[Region]RegionConfig{
		RegionAnimals:   {Capacity: 5000, TTL: 10 * time.Minute},
		RegionRooms:     {Capacity: 2000, TTL: 10 * time.Minute},
		RegionFavorites: {Capacity: 100, TTL: 60 * time.Second},
	}
}

// Cache es un cache key-value por regiones.
// Los valores se guardan serializados para que memoria y redis se comporten igual
// (nadie comparte punteros con lo cacheado).
type Cache interface {
	Get(ctx context.Context, region Region, key string) ([]byte, bool, error)
	Set(ctx context.Context, region Region, key string, value []byte) error
	Evict(ctx context.Context, region Region, key string) error
	EvictAll(ctx context.Context, region Region) error
}

// GetJSON lee y decodifica una entrada. ok=false en miss.
func GetJSON[T any](ctx context.Context, c Cache, region Region, key string) (T, bool, error) {
	var zero T

	raw, ok, err := c.Get(ctx, region, key)
	if err != nil || !ok {
		return zero, false, err
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		// Entrada corrupta: se trata como miss y se limpia.
		_ = c.Evict(ctx, region, key)
		return zero, false, nil
	}
	return v, true, nil
}

// SetJSON serializa v y lo guarda en la región.
func SetJSON(ctx context.Context, c Cache, region Region, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("cache: marshal %s/%s: %w", region, key, err)
	}
	return c.Set(ctx, region, key, raw)
}
