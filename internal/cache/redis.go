package cache

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
)

const evictScanCount = 500

// Redis es el backend compartido para despliegues multi-instancia.
// Claves: "<prefix>:<region>:<key>". La capacidad no se aplica acá;
// el límite de memoria lo maneja la política maxmemory del servidor.
type Redis struct {
	client  *redis.Client
	prefix  string
	regions map[Region]RegionConfig
}

func NewRedis(client *redis.Client, prefix string, regions map[Region]RegionConfig) *Redis {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = "zoo"
	}
	return &Redis{
		client:  client,
		prefix:  prefix,
		regions: regions,
	}
}

func (r *Redis) key(region Region, key string) string {
	return r.prefix + ":" + string(region) + ":" + key
}

func (r *Redis) config(region Region) (RegionConfig, error) {
	rc, ok := r.regions[region]
	if !ok {
		return RegionConfig{}, fmt.Errorf("cache: unknown region %q", region)
	}
	return rc, nil
}

func (r *Redis) Get(ctx context.Context, region Region, key string) ([]byte, bool, error) {
	if _, err := r.config(region); err != nil {
		return nil, false, err
	}
	v, err := r.client.Get(ctx, r.key(region, key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache: redis get: %w", err)
	}
	return v, true, nil
}

func (r *Redis) Set(ctx context.Context, region Region, key string, value []byte) error {
	rc, err := r.config(region)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, r.key(region, key), value, rc.TTL).Err(); err != nil {
		return fmt.Errorf("cache: redis set: %w", err)
	}
	return nil
}

func (r *Redis) Evict(ctx context.Context, region Region, key string) error {
	if _, err := r.config(region); err != nil {
		return err
	}
	if err := r.client.Del(ctx, r.key(region, key)).Err(); err != nil {
		return fmt.Errorf("cache: redis del: %w", err)
	}
	return nil
}

// EvictAll borra todas las claves de la región con SCAN + UNLINK (no bloquea como KEYS).
func (r *Redis) EvictAll(ctx context.Context, region Region) error {
	if _, err := r.config(region); err != nil {
		return err
	}

	match := r.prefix + ":" + string(region) + ":*"
	var cursor uint64
	for {
		keys, next, err := r.client.Scan(ctx, cursor, match, evictScanCount).Result()
		if err != nil {
			return fmt.Errorf("cache: redis scan: %w", err)
		}
		if len(keys) > 0 {
			if err := r.client.Unlink(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("cache: redis unlink: %w", err)
			}
		}
		if next == 0 {
			return nil
		}
		cursor = next
	}
}
