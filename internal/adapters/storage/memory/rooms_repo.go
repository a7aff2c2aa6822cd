package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"zoo-rooms/internal/domain/rooms"
)

type roomRepo struct {
	mu   sync.RWMutex
	byID map[string]rooms.Room
}

func NewRoomRepo() rooms.Repository {
	return &roomRepo{
		byID: make(map[string]rooms.Room),
	}
}

func (r *roomRepo) Create(ctx context.Context, room rooms.Room) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(room.ID) == "" {
		return errors.New("room id required")
	}
	if _, exists := r.byID[room.ID]; exists {
		return errors.New("room already exists")
	}
	r.byID[room.ID] = room
	return nil
}

func (r *roomRepo) Update(ctx context.Context, room rooms.Room) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[room.ID]; !exists {
		return rooms.ErrNotFound
	}
	r.byID[room.ID] = room
	return nil
}

func (r *roomRepo) GetByID(ctx context.Context, id string) (rooms.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	room, ok := r.byID[id]
	if !ok {
		return rooms.Room{}, rooms.ErrNotFound
	}
	return room, nil
}

func (r *roomRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.byID, id)
	return nil
}
