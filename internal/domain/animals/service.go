package animals

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
	ErrNotFound     = errors.New("animal not found")
)

type Service struct {
	repo      Repository
	cache     cache.Cache
	favorites *FavoriteAggregator
	log       *zap.Logger
	now       func() time.Time
}

// NewService arma el servicio. favorites puede ser nil (no hay agregado que invalidar).
func NewService(repo Repository, c cache.Cache, favorites *FavoriteAggregator, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		repo:      repo,
		cache:     c,
		favorites: favorites,
		log:       log,
		now:       time.Now,
	}
}

type CreateInput struct {
	Title string
}

type UpdateInput struct {
	Title string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Animal, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return Animal{}, ErrInvalidInput
	}

	a := Animal{
		ID:              uuid.NewString(),
		Title:           title,
		FavoriteRoomIDs: []string{},
		CreatedAt:       s.now().UTC(),
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return Animal{}, err
	}

	s.log.Info("animal created", zap.String("animal_id", a.ID))
	return a, nil
}

// GetByID es read-through sobre la región animalsById.
func (s *Service) GetByID(ctx context.Context, id string) (Animal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Animal{}, ErrNotFound
	}

	if a, ok, err := cache.GetJSON[Animal](ctx, s.cache, cache.RegionAnimals, id); err != nil {
		return Animal{}, err
	} else if ok {
		return a, nil
	}

	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Animal{}, err
	}

	if err := cache.SetJSON(ctx, s.cache, cache.RegionAnimals, id, a); err != nil {
		return Animal{}, err
	}
	return a, nil
}

// Update cambia el título. Ocupación y favoritos no se tocan acá.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Animal, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return Animal{}, ErrInvalidInput
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Animal{}, err
	}

	current.Title = title
	if err := s.write(ctx, &current); err != nil {
		return Animal{}, err
	}

	s.log.Info("animal updated", zap.String("animal_id", id))
	return current, nil
}

// Delete es idempotente. Invalida el agregado porque sus favoritos dejan de contar.
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
	if err := s.invalidateFavorites(ctx); err != nil {
		return err
	}

	s.log.Info("animal deleted", zap.String("animal_id", id))
	return nil
}

func (s *Service) ListByTitle(ctx context.Context, title string) ([]Animal, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.ListByTitle(ctx, title)
}

// write marca UpdatedAt y persiste, desalojando la entrada cacheada antes y después.
func (s *Service) write(ctx context.Context, a *Animal) error {
	now := s.now().UTC()
	a.UpdatedAt = &now

	if err := s.evict(ctx, a.ID); err != nil {
		return err
	}
	if err := s.repo.Update(ctx, *a); err != nil {
		return err
	}
	return s.evict(ctx, a.ID)
}

func (s *Service) evict(ctx context.Context, id string) error {
	return s.cache.Evict(ctx, cache.RegionAnimals, id)
}

func (s *Service) invalidateFavorites(ctx context.Context) error {
	if s.favorites == nil {
		return nil
	}
	return s.favorites.Invalidate(ctx)
}
