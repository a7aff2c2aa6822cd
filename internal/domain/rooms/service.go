package rooms

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"zoo-rooms/internal/cache"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("room not found")
)

// ChangeListener se notifica cuando un room cambia de título o se borra.
// Lo usa el agregado de favoritos (que está indexado por título).
type ChangeListener interface {
	RoomChanged(ctx context.Context, roomID string) error
}

type Service struct {
	repo      Repository
	cache     cache.Cache
	log       *zap.Logger
	now       func() time.Time
	listeners []ChangeListener
}

func NewService(repo Repository, c cache.Cache, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		repo:  repo,
		cache: c,
		log:   log,
		now:   time.Now,
	}
}

// Subscribe registra un listener. Se llama durante el wiring, antes de servir tráfico.
func (s *Service) Subscribe(l ChangeListener) {
	s.listeners = append(s.listeners, l)
}

type CreateInput struct {
	Title string
}

type UpdateInput struct {
	Title string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Room, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return Room{}, ErrInvalidInput
	}

	r := Room{
		ID:        uuid.NewString(),
		Title:     title,
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.Create(ctx, r); err != nil {
		return Room{}, err
	}

	s.log.Info("room created", zap.String("room_id", r.ID))
	return r, nil
}

// GetByID es read-through sobre la región roomsById. Los "no encontrado" no se cachean.
func (s *Service) GetByID(ctx context.Context, id string) (Room, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Room{}, ErrNotFound
	}

	if r, ok, err := cache.GetJSON[Room](ctx, s.cache, cache.RegionRooms, id); err != nil {
		return Room{}, err
	} else if ok {
		return r, nil
	}

	r, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			s.log.Debug("room not found", zap.String("room_id", id))
		}
		return Room{}, err
	}

	if err := cache.SetJSON(ctx, s.cache, cache.RegionRooms, id, r); err != nil {
		return Room{}, err
	}
	return r, nil
}

// TitleOf resuelve el título de un room (vía cache).
// ok=false si el room no existe o el título está vacío.
func (s *Service) TitleOf(ctx context.Context, roomID string) (string, bool, error) {
	r, err := s.GetByID(ctx, roomID)
	if errors.Is(err, ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	title := strings.TrimSpace(r.Title)
	return title, title != "", nil
}

// Update reemplaza el título. Preserva CreatedAt.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Room, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return Room{}, ErrInvalidInput
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Room{}, err
	}

	now := s.now().UTC()
	updated := current
	updated.Title = title
	updated.UpdatedAt = &now

	if err := s.evict(ctx, id); err != nil {
		return Room{}, err
	}
	if err := s.repo.Update(ctx, updated); err != nil {
		return Room{}, err
	}
	if err := s.evict(ctx, id); err != nil {
		return Room{}, err
	}

	if current.Title != updated.Title {
		if err := s.notify(ctx, id); err != nil {
			return Room{}, err
		}
	}

	s.log.Info("room updated", zap.String("room_id", id))
	return updated, nil
}

// Delete es idempotente. No limpia favoritos de los animales (se ignoran al agregar).
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.evict(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.evict(ctx, id); err != nil {
		return err
	}
	if err := s.notify(ctx, id); err != nil {
		return err
	}

	s.log.Info("room deleted", zap.String("room_id", id))
	return nil
}

func (s *Service) evict(ctx context.Context, id string) error {
	return s.cache.Evict(ctx, cache.RegionRooms, id)
}

func (s *Service) notify(ctx context.Context, id string) error {
	for _, l := range s.listeners {
		if err := l.RoomChanged(ctx, id); err != nil {
			return err
		}
	}
	return nil
}
