// Package storetest tiene las pruebas de contrato que todo backend de storage debe pasar.
package storetest

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zoo-rooms/internal/domain/animals"
	"zoo-rooms/internal/domain/rooms"
)

func day(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

var created = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func titles(items []animals.Animal) []string {
	out := make([]string, 0, len(items))
	for _, a := range items {
		out = append(out, a.Title)
	}
	return out
}

// AnimalRepo corre el contrato de animals.Repository. repo debe estar vacío.
func AnimalRepo(t *testing.T, repo animals.Repository) {
	ctx := context.Background()

	t.Run("create and get", func(t *testing.T) {
		a := animals.Animal{
			ID:              "get-1",
			Title:           "Leo",
			RoomID:          "get-room",
			Located:         day(2024, 2, 3),
			FavoriteRoomIDs: []string{"f2", "f1"},
			CreatedAt:       created,
		}
		require.NoError(t, repo.Create(ctx, a))

		got, err := repo.GetByID(ctx, "get-1")
		require.NoError(t, err)
		assert.Equal(t, "Leo", got.Title)
		assert.Equal(t, "get-room", got.RoomID)
		require.NotNil(t, got.Located)
		assert.True(t, got.Located.Equal(*day(2024, 2, 3)))
		assert.Equal(t, []string{"f1", "f2"}, got.FavoriteRoomIDs)
		assert.True(t, got.CreatedAt.Equal(created))
		assert.Nil(t, got.UpdatedAt)

		_, err = repo.GetByID(ctx, "missing")
		assert.ErrorIs(t, err, animals.ErrNotFound)
	})

	t.Run("update replaces row and favorites", func(t *testing.T) {
		a := animals.Animal{ID: "upd-1", Title: "Mia", FavoriteRoomIDs: []string{"x"}, CreatedAt: created}
		require.NoError(t, repo.Create(ctx, a))

		now := created.Add(time.Hour)
		a.RoomID, a.Located = "upd-room", day(2024, 3, 1)
		a.FavoriteRoomIDs = []string{"y", "z"}
		a.UpdatedAt = &now
		require.NoError(t, repo.Update(ctx, a))

		got, err := repo.GetByID(ctx, "upd-1")
		require.NoError(t, err)
		assert.Equal(t, "upd-room", got.RoomID)
		assert.Equal(t, []string{"y", "z"}, got.FavoriteRoomIDs)
		require.NotNil(t, got.UpdatedAt)
		assert.True(t, got.UpdatedAt.Equal(now))

		// Sacar del room limpia ambos campos.
		a.RoomID, a.Located, a.FavoriteRoomIDs = "", nil, nil
		require.NoError(t, repo.Update(ctx, a))
		got, err = repo.GetByID(ctx, "upd-1")
		require.NoError(t, err)
		assert.Equal(t, "", got.RoomID)
		assert.Nil(t, got.Located)
		assert.Empty(t, got.FavoriteRoomIDs)

		err = repo.Update(ctx, animals.Animal{ID: "missing", Title: "x", CreatedAt: created})
		assert.ErrorIs(t, err, animals.ErrNotFound)
	})

	t.Run("list by room is bounded and ordered", func(t *testing.T) {
		for _, a := range []animals.Animal{
			{ID: "lr-1", Title: "cat", RoomID: "lr", Located: day(2024, 1, 1)},
			{ID: "lr-2", Title: "Ant", RoomID: "lr"},
			{ID: "lr-3", Title: "Bear", RoomID: "lr", Located: day(2024, 1, 5)},
			{ID: "lr-4", Title: "Aardvark", RoomID: "other"},
		} {
			a.CreatedAt = created
			require.NoError(t, repo.Create(ctx, a))
		}

		got, err := repo.ListByRoom(ctx, "lr", 2, animals.Ordering{Field: animals.SortByTitle, Order: animals.Asc})
		require.NoError(t, err)
		assert.Equal(t, []string{"Ant", "Bear"}, titles(got))

		got, err = repo.ListByRoom(ctx, "lr", 2, animals.Ordering{Field: animals.SortByTitle, Order: animals.Desc})
		require.NoError(t, err)
		assert.Equal(t, []string{"cat", "Bear"}, titles(got))

		got, err = repo.ListByRoom(ctx, "lr", 10, animals.Ordering{Field: animals.SortByLocated, Order: animals.Asc})
		require.NoError(t, err)
		assert.Equal(t, []string{"cat", "Bear", "Ant"}, titles(got))

		got, err = repo.ListByRoom(ctx, "lr", 1, animals.Ordering{Field: animals.SortByLocated, Order: animals.Desc})
		require.NoError(t, err)
		assert.Equal(t, []string{"Ant"}, titles(got))

		got, err = repo.ListByRoom(ctx, "nobody-here", 10, animals.Ordering{})
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("list by room folds case beyond ASCII", func(t *testing.T) {
		for _, a := range []animals.Animal{
			{ID: "acc-1", Title: "Ébc", RoomID: "acc"},
			{ID: "acc-2", Title: "éa", RoomID: "acc"},
			{ID: "acc-3", Title: "Zed", RoomID: "acc"},
			{ID: "acc-4", Title: "abc", RoomID: "acc"},
		} {
			a.CreatedAt = created
			require.NoError(t, repo.Create(ctx, a))
		}

		asc := animals.Ordering{Field: animals.SortByTitle, Order: animals.Asc}
		want := []string{"abc", "Zed", "éa", "Ébc"}

		// Cada corte debe ser prefijo del orden completo: si no, páginas consecutivas repiten o pierden animales.
		for n := 1; n <= len(want); n++ {
			got, err := repo.ListByRoom(ctx, "acc", n, asc)
			require.NoError(t, err)
			assert.Equal(t, want[:n], titles(got), "limit %d", n)
		}

		got, err := repo.ListByRoom(ctx, "acc", 1, animals.Ordering{Field: animals.SortByTitle, Order: animals.Desc})
		require.NoError(t, err)
		assert.Equal(t, []string{"Ébc"}, titles(got))

		// Update recalcula la clave de orden.
		now := created.Add(time.Hour)
		require.NoError(t, repo.Update(ctx, animals.Animal{ID: "acc-4", Title: "Ñu", RoomID: "acc", CreatedAt: created, UpdatedAt: &now}))
		got, err = repo.ListByRoom(ctx, "acc", 4, asc)
		require.NoError(t, err)
		assert.Equal(t, []string{"Zed", "éa", "Ébc", "Ñu"}, titles(got))
	})

	t.Run("list by title is exact", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, animals.Animal{ID: "t-1", Title: "Zed", CreatedAt: created}))
		require.NoError(t, repo.Create(ctx, animals.Animal{ID: "t-2", Title: "Zed", CreatedAt: created}))
		require.NoError(t, repo.Create(ctx, animals.Animal{ID: "t-3", Title: "zed", CreatedAt: created}))

		got, err := repo.ListByTitle(ctx, "Zed")
		require.NoError(t, err)
		ids := []string{}
		for _, a := range got {
			ids = append(ids, a.ID)
		}
		sort.Strings(ids)
		assert.Equal(t, []string{"t-1", "t-2"}, ids)
	})

	t.Run("scan favorites and delete", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, animals.Animal{ID: "sf-1", Title: "A", FavoriteRoomIDs: []string{"sf-r1", "sf-r2"}, CreatedAt: created}))
		require.NoError(t, repo.Create(ctx, animals.Animal{ID: "sf-2", Title: "B", FavoriteRoomIDs: []string{"sf-r2"}, CreatedAt: created}))

		count := func() map[string]int {
			counts := map[string]int{}
			seen := map[string]bool{}
			require.NoError(t, repo.ScanFavorites(ctx, func(id string, roomIDs []string) error {
				assert.False(t, seen[id], "animal %s visited twice", id)
				seen[id] = true
				for _, r := range roomIDs {
					if r == "sf-r1" || r == "sf-r2" {
						counts[r]++
					}
				}
				return nil
			}))
			return counts
		}
		assert.Equal(t, map[string]int{"sf-r1": 1, "sf-r2": 2}, count())

		require.NoError(t, repo.Delete(ctx, "sf-2"))
		require.NoError(t, repo.Delete(ctx, "sf-2"))
		_, err := repo.GetByID(ctx, "sf-2")
		assert.ErrorIs(t, err, animals.ErrNotFound)
		assert.Equal(t, map[string]int{"sf-r1": 1, "sf-r2": 1}, count())
	})
}

// RoomRepo corre el contrato de rooms.Repository.
func RoomRepo(t *testing.T, repo rooms.Repository) {
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, rooms.Room{ID: "room-1", Title: "Aviary", CreatedAt: created}))

	got, err := repo.GetByID(ctx, "room-1")
	require.NoError(t, err)
	assert.Equal(t, "Aviary", got.Title)
	assert.True(t, got.CreatedAt.Equal(created))
	assert.Nil(t, got.UpdatedAt)

	now := created.Add(time.Minute)
	require.NoError(t, repo.Update(ctx, rooms.Room{ID: "room-1", Title: "Big Aviary", CreatedAt: created, UpdatedAt: &now}))
	got, err = repo.GetByID(ctx, "room-1")
	require.NoError(t, err)
	assert.Equal(t, "Big Aviary", got.Title)
	require.NotNil(t, got.UpdatedAt)
	assert.True(t, got.UpdatedAt.Equal(now))

	assert.ErrorIs(t, repo.Update(ctx, rooms.Room{ID: "missing", Title: "x", CreatedAt: created}), rooms.ErrNotFound)

	require.NoError(t, repo.Delete(ctx, "room-1"))
	require.NoError(t, repo.Delete(ctx, "room-1"))
	_, err = repo.GetByID(ctx, "room-1")
	assert.ErrorIs(t, err, rooms.ErrNotFound)
}
