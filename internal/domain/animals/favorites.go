package animals

import (
	"context"
	"maps"
	"slices"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"zoo-rooms/internal/cache"
)

const (
	favoritesKey        = "byTitle"
	defaultResolveLimit = 8
)

// TitleResolver resuelve el título de un room. ok=false si el room no existe o no tiene título.
type TitleResolver interface {
	TitleOf(ctx context.Context, roomID string) (title string, ok bool, err error)
}

// FavoriteAggregator cuenta cuántos animales marcan cada room como favorito, agrupado por título.
// El resultado completo se cachea en la región favoriteRoomsAggByTitle; cualquier cambio de
// favoritos invalida la región entera.
type FavoriteAggregator struct {
	repo   Repository
	titles TitleResolver
	cache  cache.Cache
	log    *zap.Logger

	resolveLimit int
	duration     prometheus.Histogram

	// generation cambia en cada Invalidate. Un cálculo solo se guarda en cache si
	// la generación no cambió mientras corría.
	generation atomic.Uint64
	group      singleflight.Group
}

// NewFavoriteAggregator crea el agregador. reg puede ser nil.
func NewFavoriteAggregator(repo Repository, titles TitleResolver, c cache.Cache, log *zap.Logger, reg prometheus.Registerer) *FavoriteAggregator {
	if log == nil {
		log = zap.NewNop()
	}
	f := &FavoriteAggregator{
		repo:         repo,
		titles:       titles,
		cache:        c,
		log:          log,
		resolveLimit: defaultResolveLimit,
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "zoo",
			Subsystem: "favorites",
			Name:      "aggregation_duration_seconds",
			Help:      "Time spent recomputing the favorite rooms aggregate.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	if reg != nil {
		reg.MustRegister(f.duration)
	}
	return f
}

// CountsByTitle devuelve título -> cantidad de animales que lo tienen como favorito.
// Nunca devuelve nil. Rooms borrados o sin título se omiten.
func (f *FavoriteAggregator) CountsByTitle(ctx context.Context) (map[string]int64, error) {
	gen := f.generation.Load()

	cached, ok, err := cache.GetJSON[map[string]int64](ctx, f.cache, cache.RegionFavorites, favoritesKey)
	if err != nil {
		return nil, err
	}
	if ok && cached != nil {
		return cached, nil
	}

	// Llamadas concurrentes de la misma generación comparten un único cálculo. Corre sin la
	// cancelación del primer llamador: si su request se corta, los demás siguen esperando el resultado.
	shared := context.WithoutCancel(ctx)
	v, err, _ := f.group.Do(strconv.FormatUint(gen, 10), func() (any, error) {
		counts, err := f.compute(shared)
		if err != nil {
			return nil, err
		}
		if err := f.store(shared, gen, counts); err != nil {
			return nil, err
		}
		return counts, nil
	})
	if err != nil {
		return nil, err
	}
	return maps.Clone(v.(map[string]int64)), nil
}

// CountsByRoomID cuenta favoritos por id de room, sin resolver títulos ni cachear.
func (f *FavoriteAggregator) CountsByRoomID(ctx context.Context) (map[string]int64, error) {
	counts := make(map[string]int64)
	err := f.repo.ScanFavorites(ctx, func(_ string, roomIDs []string) error {
		for _, id := range NormalizeFavorites(roomIDs) {
			counts[id]++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return counts, nil
}

// Invalidate descarta el agregado cacheado.
func (f *FavoriteAggregator) Invalidate(ctx context.Context) error {
	f.generation.Add(1)
	return f.cache.EvictAll(ctx, cache.RegionFavorites)
}

// RoomChanged implementa rooms.ChangeListener: un room renombrado o borrado cambia las claves.
func (f *FavoriteAggregator) RoomChanged(ctx context.Context, roomID string) error {
	f.log.Debug("room changed, invalidating favorites aggregate", zap.String("room_id", roomID))
	return f.Invalidate(ctx)
}

func (f *FavoriteAggregator) compute(ctx context.Context) (map[string]int64, error) {
	start := time.Now()
	defer func() { f.duration.Observe(time.Since(start).Seconds()) }()

	byID, err := f.CountsByRoomID(ctx)
	if err != nil {
		return nil, err
	}

	ids := slices.Sorted(maps.Keys(byID))
	titles := make([]string, len(ids))
	found := make([]bool, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(f.resolveLimit)
	for i, id := range ids {
		g.Go(func() error {
			t, ok, err := f.titles.TitleOf(gctx, id)
			if err != nil {
				return err
			}
			titles[i], found[i] = t, ok
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[string]int64, len(ids))
	for i, id := range ids {
		if !found[i] {
			f.log.Debug("skipping favorite of unknown room", zap.String("room_id", id))
			continue
		}
		out[titles[i]] += byID[id]
	}
	return out, nil
}

func (f *FavoriteAggregator) store(ctx context.Context, gen uint64, counts map[string]int64) error {
	if f.generation.Load() != gen {
		return nil
	}
	if err := cache.SetJSON(ctx, f.cache, cache.RegionFavorites, favoritesKey, counts); err != nil {
		return err
	}
	// Invalidate pudo correr entre el chequeo y el Set.
	if f.generation.Load() != gen {
		return f.cache.EvictAll(ctx, cache.RegionFavorites)
	}
	return nil
}
