package animals

import (
	"slices"
	"time"
)

const DateLayout = "2006-01-02"

// Animal puede ocupar un room (RoomID) y marcar cualquier cantidad de rooms como favoritos.
// Invariante: Located != nil sii RoomID != "".
type Animal struct {
	ID    string
	Title string

	RoomID  string     // "" = sin ubicar
	Located *time.Time // fecha (medianoche UTC)

	FavoriteRoomIDs []string // conjunto: ordenado, sin duplicados

	CreatedAt time.Time
	UpdatedAt *time.Time // nil hasta la primera modificación
}

func (a Animal) Placed() bool {
	return a.RoomID != ""
}

func (a Animal) HasFavorite(roomID string) bool {
	_, ok := slices.BinarySearch(a.FavoriteRoomIDs, roomID)
	return ok
}

// DateOf trunca t al día calendario (UTC).
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// NormalizeFavorites devuelve una copia ordenada y sin duplicados ni vacíos.
func NormalizeFavorites(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id != "" {
			out = append(out, id)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}

func addFavorite(set []string, roomID string) []string {
	i, ok := slices.BinarySearch(set, roomID)
	if ok {
		return set
	}
	return slices.Insert(slices.Clone(set), i, roomID)
}

func removeFavorite(set []string, roomID string) []string {
	i, ok := slices.BinarySearch(set, roomID)
	if !ok {
		return set
	}
	return slices.Delete(slices.Clone(set), i, i+1)
}
