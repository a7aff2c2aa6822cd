package cache

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
)

// Instrumented decora un Cache con contadores de Prometheus por región.
type Instrumented struct {
	next Cache

	hits      *prometheus.CounterVec
	misses    *prometheus.CounterVec
	evictions *prometheus.CounterVec
	errors    *prometheus.CounterVec
}

// Instrument registra los contadores en reg y devuelve el decorador.
// Si reg es nil no se registra nada (útil en tests).
func Instrument(next Cache, reg prometheus.Registerer) *Instrumented {
	c := &Instrumented{
		next: next,
		hits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "zoo",
			Subsystem: "cache",
			Name:      "hits_total",
			Help:      "Cache hits by region.",
		}, []string{"region"}),
		misses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "zoo",
			Subsystem: "cache",
			Name:      "misses_total",
			Help:      "Cache misses by region.",
		}, []string{"region"}),
		evictions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "zoo",
			Subsystem: "cache",
			Name:      "evictions_total",
			Help:      "Explicit evictions by region and kind (key|all).",
		}, []string{"region", "kind"}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "zoo",
			Subsystem: "cache",
			Name:      "errors_total",
			Help:      "Backend errors by region and operation.",
		}, []string{"region", "op"}),
	}
	if reg != nil {
		reg.MustRegister(c.hits, c.misses, c.evictions, c.errors)
	}
	return c
}

func (c *Instrumented) Get(ctx context.Context, region Region, key string) ([]byte, bool, error) {
	v, ok, err := c.next.Get(ctx, region, key)
	switch {
	case err != nil:
		c.errors.WithLabelValues(string(region), "get").Inc()
	case ok:
		c.hits.WithLabelValues(string(region)).Inc()
	default:
		c.misses.WithLabelValues(string(region)).Inc()
	}
	return v, ok, err
}

func (c *Instrumented) Set(ctx context.Context, region Region, key string, value []byte) error {
	err := c.next.Set(ctx, region, key, value)
	if err != nil {
		c.errors.WithLabelValues(string(region), "set").Inc()
	}
	return err
}

func (c *Instrumented) Evict(ctx context.Context, region Region, key string) error {
	err := c.next.Evict(ctx, region, key)
	if err != nil {
		c.errors.WithLabelValues(string(region), "evict").Inc()
		return err
	}
	c.evictions.WithLabelValues(string(region), "key").Inc()
	return nil
}

func (c *Instrumented) EvictAll(ctx context.Context, region Region) error {
	err := c.next.EvictAll(ctx, region)
	if err != nil {
		c.errors.WithLabelValues(string(region), "evict_all").Inc()
		return err
	}
	c.evictions.WithLabelValues(string(region), "all").Inc()
	return nil
}
