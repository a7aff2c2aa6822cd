package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"zoo-rooms/internal/adapters/storage/dynamo"
	"zoo-rooms/internal/cache"
)

const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
	StoreSQLite   = "sqlite"
	StoreDynamoDB = "dynamodb"

	CacheMemory = "memory"
	CacheRedis  = "redis"
)

// Config se lee de un YAML opcional; las variables de entorno siempre pisan al YAML.
// Los secretos (passwords, claves) solo vienen de entorno.
type Config struct {
	Port         string        `yaml:"port" env:"PORT" env-default:"8080"`
	AppName      string        `yaml:"app_name" env:"APP_NAME" env-default:"zoo-rooms"`
	ReadTimeout  time.Duration `yaml:"read_timeout" env:"HTTP_READ_TIMEOUT" env-default:"5s"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"HTTP_WRITE_TIMEOUT" env-default:"10s"`

	Log      LogConfig      `yaml:"log"`
	Store    StoreConfig    `yaml:"store"`
	DynamoDB DynamoDBConfig `yaml:"dynamodb"`
	Cache    CacheConfig    `yaml:"cache"`
}

type LogConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

type StoreConfig struct {
	Driver     string `yaml:"driver" env:"STORE_DRIVER" env-default:"memory"`
	DSN        string `yaml:"-" env:"DB_DSN"` // Secret - not in YAML
	SQLitePath string `yaml:"sqlite_path" env:"SQLITE_PATH" env-default:"zoo.db"`
	// AutoMigrate aplica las migraciones SQL al arrancar.
	AutoMigrate bool `yaml:"auto_migrate" env:"DB_AUTO_MIGRATE" env-default:"true"`
}

type DynamoDBConfig struct {
	Endpoint              string `yaml:"endpoint" env:"DYNAMODB_ENDPOINT"`
	Region                string `yaml:"region" env:"DYNAMODB_REGION" env-default:"us-west-2"`
	AccessKey             string `yaml:"-" env:"DYNAMODB_ACCESS_KEY"`
	SecretKey             string `yaml:"-" env:"DYNAMODB_SECRET_KEY"`
	UseDefaultCredentials bool   `yaml:"use_default_credentials" env:"DYNAMODB_USE_DEFAULT_CREDENTIALS" env-default:"false"`
	AnimalsTable          string `yaml:"animals_table" env:"DYNAMODB_ANIMALS_TABLE" env-default:"animals"`
	RoomsTable            string `yaml:"rooms_table" env:"DYNAMODB_ROOMS_TABLE" env-default:"rooms"`
	ConsistentRead        bool   `yaml:"consistent_read" env:"DYNAMODB_CONSISTENT_READ" env-default:"false"`
	CreateTables          bool   `yaml:"create_tables" env:"DYNAMODB_CREATE_TABLES" env-default:"false"`
}

type CacheConfig struct {
	Type          string `yaml:"type" env:"CACHE_TYPE" env-default:"memory"`
	Prefix        string `yaml:"prefix" env:"CACHE_PREFIX" env-default:"zoo"`
	RedisAddr     string `yaml:"redis_addr" env:"REDIS_ADDR" env-default:"localhost:6379"`
	RedisPassword string `yaml:"-" env:"REDIS_PASSWORD"`
	RedisDB       int    `yaml:"redis_db" env:"REDIS_DB" env-default:"0"`

	AnimalsTTL    time.Duration `yaml:"animals_ttl" env:"CACHE_ANIMALS_TTL" env-default:"10m"`
	AnimalsSize   int           `yaml:"animals_size" env:"CACHE_ANIMALS_SIZE" env-default:"5000"`
	RoomsTTL      time.Duration `yaml:"rooms_ttl" env:"CACHE_ROOMS_TTL" env-default:"10m"`
	RoomsSize     int           `yaml:"rooms_size" env:"CACHE_ROOMS_SIZE" env-default:"2000"`
	FavoritesTTL  time.Duration `yaml:"favorites_ttl" env:"CACHE_FAVORITES_TTL" env-default:"60s"`
	FavoritesSize int           `yaml:"favorites_size" env:"CACHE_FAVORITES_SIZE" env-default:"100"`
}

// Load lee path si existe (vacío = solo entorno) y valida.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	path = strings.TrimSpace(path)
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file: %w", err)
		}
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	c.Store.Driver = strings.ToLower(strings.TrimSpace(c.Store.Driver))
	c.Cache.Type = strings.ToLower(strings.TrimSpace(c.Cache.Type))

	switch c.Store.Driver {
	case StoreMemory, StoreDynamoDB:
	case StorePostgres:
		if strings.TrimSpace(c.Store.DSN) == "" {
			return errors.New("DB_DSN is required for the postgres store")
		}
	case StoreSQLite:
		if strings.TrimSpace(c.Store.SQLitePath) == "" {
			return errors.New("SQLITE_PATH is required for the sqlite store")
		}
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q (memory|postgres|sqlite|dynamodb)", c.Store.Driver)
	}

	switch c.Cache.Type {
	case CacheMemory, CacheRedis:
	default:
		return fmt.Errorf("unknown CACHE_TYPE %q (memory|redis)", c.Cache.Type)
	}

	for name, ttl := range map[string]time.Duration{
		"CACHE_ANIMALS_TTL":   c.Cache.AnimalsTTL,
		"CACHE_ROOMS_TTL":     c.Cache.RoomsTTL,
		"CACHE_FAVORITES_TTL": c.Cache.FavoritesTTL,
	} {
		if ttl <= 0 {
			return fmt.Errorf("%s must be positive", name)
		}
	}
	return nil
}

// Regions traduce la config a la de cada región del cache.
func (c CacheConfig) Regions() map[cache.Region]cache.RegionConfig {
	return map[cache.Region]cache.RegionConfig{
		cache.RegionAnimals:   {Capacity: c.AnimalsSize, TTL: c.AnimalsTTL},
		cache.RegionRooms:     {Capacity: c.RoomsSize, TTL: c.RoomsTTL},
		cache.RegionFavorites: {Capacity: c.FavoritesSize, TTL: c.FavoritesTTL},
	}
}

func (c DynamoDBConfig) Client() dynamo.Config {
	return dynamo.Config{
		Endpoint:              c.Endpoint,
		Region:                c.Region,
		AccessKey:             c.AccessKey,
		SecretKey:             c.SecretKey,
		UseDefaultCredentials: c.UseDefaultCredentials,
		AnimalsTable:          c.AnimalsTable,
		RoomsTable:            c.RoomsTable,
		ConsistentRead:        c.ConsistentRead,
	}
}
