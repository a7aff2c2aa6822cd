package cache

import (
	"context"
	"fmt"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Memory es el backend in-process: un LRU con expiración por región.
// Sirve para despliegues de una sola instancia.
type Memory struct {
	regions map[Region]*expirable.LRU[string, []byte]
}

func NewMemory(regions map[Region]RegionConfig) *Memory {
	m := &Memory{regions: make(map[Region]*expirable.LRU[string, []byte], len(regions))}
	for name, rc := range regions {
		size := rc.Capacity
		if size < 0 {
			size = 0
		}
		m.regions[name] = expirable.NewLRU[string, []byte](size, nil, rc.TTL)
	}
	return m
}

func (m *Memory) region(r Region) (*expirable.LRU[string, []byte], error) {
	lru, ok := m.regions[r]
	if !ok {
		return nil, fmt.Errorf("cache: unknown region %q", r)
	}
	return lru, nil
}

func (m *Memory) Get(_ context.Context, region Region, key string) ([]byte, bool, error) {
	lru, err := m.region(region)
	if err != nil {
		return nil, false, err
	}
	v, ok := lru.Get(key)
	return v, ok, nil
}

func (m *Memory) Set(_ context.Context, region Region, key string, value []byte) error {
	lru, err := m.region(region)
	if err != nil {
		return err
	}
	lru.Add(key, value)
	return nil
}

func (m *Memory) Evict(_ context.Context, region Region, key string) error {
	lru, err := m.region(region)
	if err != nil {
		return err
	}
	lru.Remove(key)
	return nil
}

func (m *Memory) EvictAll(_ context.Context, region Region) error {
	lru, err := m.region(region)
	if err != nil {
		return err
	}
	lru.Purge()
	return nil
}

// Len devuelve la cantidad de entradas vivas de una región (tests/diagnóstico).
func (m *Memory) Len(region Region) int {
	lru, ok := m.regions[region]
	if !ok {
		return 0
	}
	return lru.Len()
}
