package router

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"zoo-rooms/internal/adapters/storage/dynamo"
	mem "zoo-rooms/internal/adapters/storage/memory"
	pg "zoo-rooms/internal/adapters/storage/postgres"
	"zoo-rooms/internal/adapters/storage/sqlite"
	"zoo-rooms/internal/cache"
	"zoo-rooms/internal/domain/animals"
	"zoo-rooms/internal/domain/rooms"
	"zoo-rooms/internal/platform/config"
)

// Backends agrupa los stores y el cache elegidos por config.
type Backends struct {
	Animals animals.Repository
	Rooms   rooms.Repository
	Cache   cache.Cache

	closers []func() error
}

// MemoryBackends es el modo dev/test: todo en proceso.
func MemoryBackends() *Backends {
	return &Backends{
		Animals: mem.NewAnimalRepo(),
		Rooms:   mem.NewRoomRepo(),
		Cache:   cache.NewMemory(cache.DefaultRegions()),
	}
}

func (b *Backends) Close() error {
	var errs []error
	for i := len(b.closers) - 1; i >= 0; i-- {
		errs = append(errs, b.closers[i]())
	}
	return errors.Join(errs...)
}

// OpenBackends abre store y cache según cfg. Ante error cierra lo que ya abrió.
func OpenBackends(ctx context.Context, cfg *config.Config, log *zap.Logger) (*Backends, error) {
	b := &Backends{}
	if err := b.openStore(ctx, cfg, log); err != nil {
		_ = b.Close()
		return nil, err
	}
	if err := b.openCache(ctx, cfg.Cache); err != nil {
		_ = b.Close()
		return nil, err
	}

	log.Info("backends ready",
		zap.String("store", cfg.Store.Driver),
		zap.String("cache", cfg.Cache.Type),
	)
	return b, nil
}

func (b *Backends) openStore(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	switch cfg.Store.Driver {
	case config.StoreMemory:
		b.Animals = mem.NewAnimalRepo()
		b.Rooms = mem.NewRoomRepo()

	case config.StorePostgres:
		if cfg.Store.AutoMigrate {
			if err := pg.Migrate(cfg.Store.DSN, log); err != nil {
				return err
			}
		}
		db, err := pg.Open(cfg.Store.DSN)
		if err != nil {
			return fmt.Errorf("open postgres: %w", err)
		}
		b.closers = append(b.closers, db.Close)
		b.Animals = pg.NewAnimalsRepo(db)
		b.Rooms = pg.NewRoomsRepo(db)

	case config.StoreSQLite:
		if cfg.Store.AutoMigrate {
			if err := sqlite.Migrate(cfg.Store.SQLitePath, log); err != nil {
				return err
			}
		}
		db, err := sqlite.Open(cfg.Store.SQLitePath)
		if err != nil {
			return fmt.Errorf("open sqlite: %w", err)
		}
		b.closers = append(b.closers, db.Close)
		b.Animals = sqlite.NewAnimalsRepo(db)
		b.Rooms = sqlite.NewRoomsRepo(db)

	case config.StoreDynamoDB:
		dcfg := cfg.DynamoDB.Client()
		client, err := dynamo.NewClient(ctx, dcfg)
		if err != nil {
			return fmt.Errorf("dynamodb client: %w", err)
		}
		if cfg.DynamoDB.CreateTables {
			if err := dynamo.EnsureTables(ctx, client, dcfg, log); err != nil {
				return err
			}
		}
		b.Animals = dynamo.NewAnimalsRepo(client, dcfg)
		b.Rooms = dynamo.NewRoomsRepo(client, dcfg)

	default:
		return fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
	return nil
}

func (b *Backends) openCache(ctx context.Context, cfg config.CacheConfig) error {
	switch cfg.Type {
	case config.CacheMemory:
		b.Cache = cache.NewMemory(cfg.Regions())

	case config.CacheRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return fmt.Errorf("ping redis %s: %w", cfg.RedisAddr, err)
		}
		b.closers = append(b.closers, client.Close)
		b.Cache = cache.NewRedis(client, cfg.Prefix, cfg.Regions())

	default:
		return fmt.Errorf("unknown cache type %q", cfg.Type)
	}
	return nil
}

// Migrate prepara el esquema del store configurado sin levantar el server.
func Migrate(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	switch cfg.Store.Driver {
	case config.StorePostgres:
		return pg.Migrate(cfg.Store.DSN, log)
	case config.StoreSQLite:
		return sqlite.Migrate(cfg.Store.SQLitePath, log)
	case config.StoreDynamoDB:
		dcfg := cfg.DynamoDB.Client()
		client, err := dynamo.NewClient(ctx, dcfg)
		if err != nil {
			return fmt.Errorf("dynamodb client: %w", err)
		}
		return dynamo.EnsureTables(ctx, client, dcfg, log)
	default:
		log.Info("nothing to migrate", zap.String("store", cfg.Store.Driver))
		return nil
	}
}
