//go:build integration

package postgres

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"

	"zoo-rooms/internal/adapters/storage/storetest"
)

func startPostgres(t *testing.T) string {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping integration test in short mode (requires Docker)")
	}

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_DB":       "zoo",
				"POSTGRES_USER":     "zoo",
				"POSTGRES_PASSWORD": "zoo",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://zoo:zoo@%s:%s/zoo?sslmode=disable", host, port.Port())
	require.NoError(t, Migrate(dsn, zap.NewNop()))
	require.NoError(t, Migrate(dsn, zap.NewNop()))
	return dsn
}

func TestPostgres_RepoContracts(t *testing.T) {
	db, err := Open(startPostgres(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	storetest.AnimalRepo(t, NewAnimalsRepo(db))
	storetest.RoomRepo(t, NewRoomsRepo(db))
}
