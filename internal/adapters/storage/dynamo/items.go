package dynamo

import (
	"fmt"
	"strings"
	"time"

	"zoo-rooms/internal/domain/animals"
	"zoo-rooms/internal/domain/rooms"
)

const (
	attrID             = "id"
	attrTitle          = "title"
	attrRoomID         = "roomId"
	attrFavorites      = "favoriteRoomIds"
	attrRoomTitleKey   = "roomTitleKey"
	attrRoomLocatedKey = "roomLocatedKey"
)

// Claves de orden derivadas para los índices por room. DynamoDB compara strings por bytes
// UTF-8, así que las claves se arman para que ese orden coincida con animals.Ordering en asc:
// nulos al final y desempate por id en minúsculas.
const (
	keySep         = "\x00"
	nullLocatedKey = "~" // mayor que cualquier dígito
)

type animalItem struct {
	ID              string   `dynamodbav:"id"`
	Title           string   `dynamodbav:"title"`
	RoomID          string   `dynamodbav:"roomId,omitempty"`
	Located         string   `dynamodbav:"located,omitempty"` // YYYY-MM-DD
	FavoriteRoomIDs []string `dynamodbav:"favoriteRoomIds,stringset,omitempty"`
	Created         string   `dynamodbav:"created"`
	Updated         string   `dynamodbav:"updated,omitempty"`

	// Solo presentes si el animal tiene room: los índices por room son dispersos.
	RoomTitleKey   string `dynamodbav:"roomTitleKey,omitempty"`
	RoomLocatedKey string `dynamodbav:"roomLocatedKey,omitempty"`
}

type roomItem struct {
	ID      string `dynamodbav:"id"`
	Title   string `dynamodbav:"title"`
	Created string `dynamodbav:"created"`
	Updated string `dynamodbav:"updated,omitempty"`
}

func roomTitleKey(a animals.Animal) string {
	return animals.TitleSortKey(a)
}

func roomLocatedKey(a animals.Animal) string {
	located := nullLocatedKey
	if a.Located != nil {
		located = a.Located.Format(animals.DateLayout)
	}
	return located + keySep + strings.ToLower(a.ID)
}

func toAnimalItem(a animals.Animal) animalItem {
	it := animalItem{
		ID:              a.ID,
		Title:           a.Title,
		RoomID:          a.RoomID,
		FavoriteRoomIDs: animals.NormalizeFavorites(a.FavoriteRoomIDs),
		Created:         formatTime(a.CreatedAt),
	}
	// Un string set vacío se serializa como NULL; sin favoritos el atributo no se escribe.
	if len(it.FavoriteRoomIDs) == 0 {
		it.FavoriteRoomIDs = nil
	}
	if a.Located != nil {
		it.Located = a.Located.Format(animals.DateLayout)
	}
	if a.UpdatedAt != nil {
		it.Updated = formatTime(*a.UpdatedAt)
	}
	if a.RoomID != "" {
		it.RoomTitleKey = roomTitleKey(a)
		it.RoomLocatedKey = roomLocatedKey(a)
	}
	return it
}

func (it animalItem) toAnimal() (animals.Animal, error) {
	a := animals.Animal{
		ID:              it.ID,
		Title:           it.Title,
		RoomID:          it.RoomID,
		FavoriteRoomIDs: animals.NormalizeFavorites(it.FavoriteRoomIDs),
	}

	var err error
	if a.CreatedAt, err = parseTime(it.Created); err != nil {
		return animals.Animal{}, err
	}
	if it.Updated != "" {
		u, err := parseTime(it.Updated)
		if err != nil {
			return animals.Animal{}, err
		}
		a.UpdatedAt = &u
	}
	if it.Located != "" {
		d, err := time.Parse(animals.DateLayout, it.Located)
		if err != nil {
			return animals.Animal{}, fmt.Errorf("animal %s: invalid located %q: %w", it.ID, it.Located, err)
		}
		a.Located = &d
	}
	return a, nil
}

func toRoomItem(r rooms.Room) roomItem {
	it := roomItem{ID: r.ID, Title: r.Title, Created: formatTime(r.CreatedAt)}
	if r.UpdatedAt != nil {
		it.Updated = formatTime(*r.UpdatedAt)
	}
	return it
}

func (it roomItem) toRoom() (rooms.Room, error) {
	r := rooms.Room{ID: it.ID, Title: it.Title}

	var err error
	if r.CreatedAt, err = parseTime(it.Created); err != nil {
		return rooms.Room{}, err
	}
	if it.Updated != "" {
		u, err := parseTime(it.Updated)
		if err != nil {
			return rooms.Room{}, err
		}
		r.UpdatedAt = &u
	}
	return r, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	return t.UTC(), nil
}
