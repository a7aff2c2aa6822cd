package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zoo-rooms/internal/cache"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, StoreMemory, cfg.Store.Driver)
	assert.Equal(t, CacheMemory, cfg.Cache.Type)

	regions := cfg.Cache.Regions()
	assert.Equal(t, cache.RegionConfig{Capacity: 5000, TTL: 10 * time.Minute}, regions[cache.RegionAnimals])
	assert.Equal(t, cache.RegionConfig{Capacity: 2000, TTL: 10 * time.Minute}, regions[cache.RegionRooms])
	assert.Equal(t, cache.RegionConfig{Capacity: 100, TTL: 60 * time.Second}, regions[cache.RegionFavorites])
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yamlContent := `
port: "9000"
store:
  driver: sqlite
  sqlite_path: /tmp/zoo-from-yaml.db
cache:
  type: redis
  favorites_ttl: 5s
dynamodb:
  animals_table: zoo-animals
`
	require.NoError(t, os.WriteFile(path, []byte(yamlContent), 0o644))

	t.Setenv("PORT", "9100")
	t.Setenv("CACHE_FAVORITES_TTL", "15s")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9100", cfg.Port)
	assert.Equal(t, StoreSQLite, cfg.Store.Driver)
	assert.Equal(t, "/tmp/zoo-from-yaml.db", cfg.Store.SQLitePath)
	assert.Equal(t, CacheRedis, cfg.Cache.Type)
	assert.Equal(t, 15*time.Second, cfg.Cache.FavoritesTTL)
	assert.Equal(t, "zoo-animals", cfg.DynamoDB.Client().AnimalsTable)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Setenv("STORE_DRIVER", "cassandra")
	_, err := Load("")
	assert.ErrorContains(t, err, "STORE_DRIVER")

	t.Setenv("STORE_DRIVER", "Postgres")
	t.Setenv("DB_DSN", "")
	_, err = Load("")
	assert.ErrorContains(t, err, "DB_DSN")

	t.Setenv("DB_DSN", "postgres://zoo@localhost/zoo")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, StorePostgres, cfg.Store.Driver)

	t.Setenv("CACHE_TYPE", "memcached")
	_, err = Load("")
	assert.ErrorContains(t, err, "CACHE_TYPE")

	t.Setenv("CACHE_TYPE", "memory")
	t.Setenv("CACHE_ROOMS_TTL", "0s")
	_, err = Load("")
	assert.ErrorContains(t, err, "CACHE_ROOMS_TTL")
}
