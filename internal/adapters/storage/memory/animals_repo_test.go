package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zoo-rooms/internal/domain/animals"
)

func TestAnimalRepo_RoomIndexFollowsUpdates(t *testing.T) {
	ctx := context.Background()
	repo := NewAnimalRepo()
	d := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Create(ctx, animals.Animal{ID: "a1", Title: "Leo", RoomID: "r1", Located: &d}))
	require.NoError(t, repo.Create(ctx, animals.Animal{ID: "a2", Title: "Mia", RoomID: "r1", Located: &d}))

	byTitle := animals.Ordering{Field: animals.SortByTitle, Order: animals.Asc}
	got, err := repo.ListByRoom(ctx, "r1", 10, byTitle)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	// Mover a1 a r2 lo saca del índice de r1.
	require.NoError(t, repo.Update(ctx, animals.Animal{ID: "a1", Title: "Leo", RoomID: "r2", Located: &d}))
	got, err = repo.ListByRoom(ctx, "r1", 10, byTitle)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "a2", got[0].ID)

	require.NoError(t, repo.Delete(ctx, "a2"))
	got, err = repo.ListByRoom(ctx, "r1", 10, byTitle)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestAnimalRepo_ListByRoomHonorsLimitAndOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewAnimalRepo()
	for _, a := range []animals.Animal{
		{ID: "1", Title: "cat", RoomID: "r"},
		{ID: "2", Title: "Ant", RoomID: "r"},
		{ID: "3", Title: "Bear", RoomID: "r"},
	} {
		require.NoError(t, repo.Create(ctx, a))
	}

	got, err := repo.ListByRoom(ctx, "r", 2, animals.Ordering{Field: animals.SortByTitle, Order: animals.Desc})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "cat", got[0].Title)
	assert.Equal(t, "Bear", got[1].Title)
}

func TestAnimalRepo_NotFoundAndTitleIndex(t *testing.T) {
	ctx := context.Background()
	repo := NewAnimalRepo()

	_, err := repo.GetByID(ctx, "nope")
	assert.ErrorIs(t, err, animals.ErrNotFound)
	assert.ErrorIs(t, repo.Update(ctx, animals.Animal{ID: "nope"}), animals.ErrNotFound)

	require.NoError(t, repo.Create(ctx, animals.Animal{ID: "a1", Title: "Leo"}))
	require.NoError(t, repo.Create(ctx, animals.Animal{ID: "a2", Title: "Leo"}))
	assert.Error(t, repo.Create(ctx, animals.Animal{ID: "a1", Title: "dup"}))

	got, err := repo.ListByTitle(ctx, "Leo")
	require.NoError(t, err)
	assert.Len(t, got, 2)

	require.NoError(t, repo.Update(ctx, animals.Animal{ID: "a2", Title: "Max"}))
	got, err = repo.ListByTitle(ctx, "Leo")
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestAnimalRepo_ScanFavoritesAndIsolation(t *testing.T) {
	ctx := context.Background()
	repo := NewAnimalRepo()

	fav := []string{"r2", "r1", "r2"}
	require.NoError(t, repo.Create(ctx, animals.Animal{ID: "a1", Title: "Leo", FavoriteRoomIDs: fav}))
	fav[0] = "mutated"

	seen := map[string][]string{}
	require.NoError(t, repo.ScanFavorites(ctx, func(id string, roomIDs []string) error {
		seen[id] = roomIDs
		return nil
	}))
	assert.Equal(t, map[string][]string{"a1": {"r1", "r2"}}, seen)
}
