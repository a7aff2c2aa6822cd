// Package sqlite guarda animals y rooms en un archivo SQLite (driver puro Go).
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	sqlitemigrate "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"zoo-rooms/internal/adapters/storage/sqlstore"
	"zoo-rooms/internal/domain/animals"
	"zoo-rooms/internal/domain/rooms"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Open abre (o crea) la base en path. Una sola conexión: los PRAGMA son por conexión
// y SQLite serializa las escrituras de todos modos.
func Open(path string) (*sql.DB, error) {
	if path == "" {
		return nil, errors.New("sqlite path is required")
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}
	db.SetMaxOpenConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	for _, pragma := range []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
	} {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("%s: %w", pragma, err)
		}
	}

	return db, nil
}

// Migrate aplica las migraciones embebidas sobre el archivo path. Usa su propia
// conexión: el driver de migrate cierra la *sql.DB al terminar.
func Migrate(path string, log *zap.Logger) error {
	db, err := Open(path)
	if err != nil {
		return err
	}
	driver, err := sqlitemigrate.WithInstance(db, &sqlitemigrate.Config{})
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("create migration driver: %w", err)
	}
	src, err := iofs.New(migrations, "migrations")
	if err != nil {
		_ = driver.Close()
		return fmt.Errorf("open embedded migrations: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		_ = driver.Close()
		return fmt.Errorf("create migration instance: %w", err)
	}
	return sqlstore.RunMigrations(m, log)
}

func NewAnimalsRepo(db *sql.DB) animals.Repository {
	return sqlstore.NewAnimalsRepo(db, sqlstore.SQLite)
}

func NewRoomsRepo(db *sql.DB) rooms.Repository {
	return sqlstore.NewRoomsRepo(db, sqlstore.SQLite)
}
