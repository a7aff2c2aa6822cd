package memory

import (
	"testing"

	"zoo-rooms/internal/adapters/storage/storetest"
)

func TestAnimalRepo_Contract(t *testing.T) {
	storetest.AnimalRepo(t, NewAnimalRepo())
}

func TestRoomRepo_Contract(t *testing.T) {
	storetest.RoomRepo(t, NewRoomRepo())
}
