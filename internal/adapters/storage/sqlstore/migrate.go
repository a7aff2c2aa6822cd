package sqlstore

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"go.uber.org/zap"
)

// RunMigrations aplica las migraciones pendientes y cierra m. Es idempotente.
func RunMigrations(m *migrate.Migrate, log *zap.Logger) error {
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil {
			log.Warn("failed to close migration source", zap.Error(srcErr))
		}
		if dbErr != nil {
			log.Warn("failed to close migration database", zap.Error(dbErr))
		}
	}()

	err := m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		log.Info("no migrations to apply (database up-to-date)")
		return nil
	}
	if err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	version, _, _ := m.Version()
	log.Info("applied migrations", zap.Uint("version", version))
	return nil
}
