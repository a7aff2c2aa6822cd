package sqlstore_test

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"zoo-rooms/internal/adapters/storage/sqlite"
	"zoo-rooms/internal/adapters/storage/sqlstore"
	"zoo-rooms/internal/domain/animals"
)

func TestListByRoom_LoadsFavoritesAcrossBatches(t *testing.T) {
	defer sqlstore.SetFavoritesBatchSize(2)()

	path := filepath.Join(t.TempDir(), "zoo.db")
	require.NoError(t, sqlite.Migrate(path, zap.NewNop()))
	db, err := sqlite.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := sqlite.NewAnimalsRepo(db)
	ctx := context.Background()
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Create(ctx, animals.Animal{
			ID:              fmt.Sprintf("a%d", i),
			Title:           fmt.Sprintf("t%d", i),
			RoomID:          "big",
			FavoriteRoomIDs: []string{"fav", fmt.Sprintf("only-%d", i)},
			CreatedAt:       created,
		}))
	}

	got, err := repo.ListByRoom(ctx, "big", 10, animals.Ordering{Field: animals.SortByTitle})
	require.NoError(t, err)
	require.Len(t, got, 5)
	for i, a := range got {
		assert.Equal(t, []string{"fav", fmt.Sprintf("only-%d", i)}, a.FavoriteRoomIDs, a.ID)
	}
}
