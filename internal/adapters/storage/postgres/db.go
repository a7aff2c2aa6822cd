package postgres

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	pgmigrate "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"

	"zoo-rooms/internal/adapters/storage/sqlstore"
	"zoo-rooms/internal/domain/animals"
	"zoo-rooms/internal/domain/rooms"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Open abre una conexión pool a Postgres usando pgx (database/sql).
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	// defaults razonables (ajustable luego)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// Migrate aplica las migraciones embebidas. Usa su propia conexión:
// el driver de migrate cierra la *sql.DB al terminar.
func Migrate(dsn string, log *zap.Logger) error {
	db, err := Open(dsn)
	if err != nil {
		return err
	}
	driver, err := pgmigrate.WithInstance(db, &pgmigrate.Config{})
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("create migration driver: %w", err)
	}
	src, err := iofs.New(migrations, "migrations")
	if err != nil {
		_ = driver.Close()
		return fmt.Errorf("open embedded migrations: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		_ = driver.Close()
		return fmt.Errorf("create migration instance: %w", err)
	}
	return sqlstore.RunMigrations(m, log)
}

func NewAnimalsRepo(db *sql.DB) animals.Repository {
	return sqlstore.NewAnimalsRepo(db, sqlstore.Postgres)
}

func NewRoomsRepo(db *sql.DB) rooms.Repository {
	return sqlstore.NewRoomsRepo(db, sqlstore.Postgres)
}
