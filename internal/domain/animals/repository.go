package animals

import "context"

type Repository interface {
	Create(ctx context.Context, a Animal) error
	// Update es last-write-wins. ErrNotFound si no existe.
	Update(ctx context.Context, a Animal) error
	GetByID(ctx context.Context, id string) (Animal, error)
	Delete(ctx context.Context, id string) error

	// ListByRoom devuelve como mucho limit animales del room usando el índice por room_id,
	// tomando los primeros según ord. Nunca recorre todo el room.
	ListByRoom(ctx context.Context, roomID string, limit int, ord Ordering) ([]Animal, error)
	ListByTitle(ctx context.Context, title string) ([]Animal, error)

	// ScanFavorites recorre todos los animales leyendo solo id + favoritos.
	// Si fn devuelve error el recorrido se corta y ese error se propaga.
	ScanFavorites(ctx context.Context, fn func(animalID string, roomIDs []string) error) error
}
