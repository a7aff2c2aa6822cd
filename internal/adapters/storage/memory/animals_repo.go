package memory

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"

	"zoo-rooms/internal/domain/animals"
)

// animalRepo mantiene índices secundarios por room y por título, como haría el store real.
type animalRepo struct {
	mu      sync.RWMutex
	byID    map[string]animals.Animal
	byRoom  map[string]map[string]struct{}
	byTitle map[string]map[string]struct{}
}

func NewAnimalRepo() animals.Repository {
	return &animalRepo{
		byID:    make(map[string]animals.Animal),
		byRoom:  make(map[string]map[string]struct{}),
		byTitle: make(map[string]map[string]struct{}),
	}
}

func (r *animalRepo) Create(ctx context.Context, a animals.Animal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(a.ID) == "" {
		return errors.New("animal id required")
	}
	if _, exists := r.byID[a.ID]; exists {
		return errors.New("animal already exists")
	}
	r.put(a)
	return nil
}

func (r *animalRepo) Update(ctx context.Context, a animals.Animal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev, exists := r.byID[a.ID]
	if !exists {
		return animals.ErrNotFound
	}
	r.unindex(prev)
	r.put(a)
	return nil
}

func (r *animalRepo) GetByID(ctx context.Context, id string) (animals.Animal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return animals.Animal{}, animals.ErrNotFound
	}
	return clone(a), nil
}

func (r *animalRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if a, ok := r.byID[id]; ok {
		r.unindex(a)
		delete(r.byID, id)
	}
	return nil
}

func (r *animalRepo) ListByRoom(ctx context.Context, roomID string, limit int, ord animals.Ordering) ([]animals.Animal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]animals.Animal, 0, len(r.byRoom[roomID]))
	for id := range r.byRoom[roomID] {
		out = append(out, clone(r.byID[id]))
	}
	ord.Sort(out)
	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *animalRepo) ListByTitle(ctx context.Context, title string) ([]animals.Animal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]animals.Animal, 0, len(r.byTitle[title]))
	for id := range r.byTitle[title] {
		out = append(out, clone(r.byID[id]))
	}
	// Orden estable por id (solo para consistencia en dev)
	slices.SortFunc(out, func(a, b animals.Animal) int { return strings.Compare(a.ID, b.ID) })
	return out, nil
}

func (r *animalRepo) ScanFavorites(ctx context.Context, fn func(string, []string) error) error {
	// Snapshot para no llamar a fn con el lock tomado.
	r.mu.RLock()
	type row struct {
		id  string
		fav []string
	}
	rows := make([]row, 0, len(r.byID))
	for id, a := range r.byID {
		rows = append(rows, row{id: id, fav: slices.Clone(a.FavoriteRoomIDs)})
	}
	r.mu.RUnlock()

	for _, rw := range rows {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := fn(rw.id, rw.fav); err != nil {
			return err
		}
	}
	return nil
}

func (r *animalRepo) put(a animals.Animal) {
	a = clone(a)
	r.byID[a.ID] = a
	if a.RoomID != "" {
		addTo(r.byRoom, a.RoomID, a.ID)
	}
	addTo(r.byTitle, a.Title, a.ID)
}

func (r *animalRepo) unindex(a animals.Animal) {
	removeFrom(r.byRoom, a.RoomID, a.ID)
	removeFrom(r.byTitle, a.Title, a.ID)
}

func clone(a animals.Animal) animals.Animal {
	a.FavoriteRoomIDs = animals.NormalizeFavorites(a.FavoriteRoomIDs)
	if a.Located != nil {
		d := *a.Located
		a.Located = &d
	}
	if a.UpdatedAt != nil {
		u := *a.UpdatedAt
		a.UpdatedAt = &u
	}
	return a
}

func addTo(idx map[string]map[string]struct{}, key, id string) {
	set, ok := idx[key]
	if !ok {
		set = make(map[string]struct{})
		idx[key] = set
	}
	set[id] = struct{}{}
}

func removeFrom(idx map[string]map[string]struct{}, key, id string) {
	set, ok := idx[key]
	if !ok {
		return
	}
	delete(set, id)
	if len(set) == 0 {
		delete(idx, key)
	}
}
