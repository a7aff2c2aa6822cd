package animals

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Operaciones de relación. Todas devuelven (animal actualizado, true, nil) o
// (Animal{}, false, nil) si el animal no existe; en ese caso no se escribe nada.
// No hay control de concurrencia: dos escrituras sobre el mismo animal, gana la última.

// Place ubica al animal en roomID. Si located es nil usa la fecha actual del reloj.
// No valida que el room exista.
func (s *Service) Place(ctx context.Context, animalID, roomID string, located *time.Time) (Animal, bool, error) {
	roomID = strings.TrimSpace(roomID)
	if roomID == "" {
		return Animal{}, false, ErrInvalidInput
	}

	day := DateOf(s.now().UTC())
	if located != nil {
		day = DateOf(*located)
	}

	return s.mutate(ctx, animalID, false, func(a *Animal) {
		a.RoomID = roomID
		a.Located = &day
	})
}

// Move es un alias de Place; no exige que el animal tenga room.
func (s *Service) Move(ctx context.Context, animalID, roomID string, located *time.Time) (Animal, bool, error) {
	return s.Place(ctx, animalID, roomID, located)
}

func (s *Service) Remove(ctx context.Context, animalID string) (Animal, bool, error) {
	return s.mutate(ctx, animalID, false, func(a *Animal) {
		a.RoomID = ""
		a.Located = nil
	})
}

func (s *Service) AssignFavorite(ctx context.Context, animalID, roomID string) (Animal, bool, error) {
	roomID = strings.TrimSpace(roomID)
	if roomID == "" {
		return Animal{}, false, ErrInvalidInput
	}
	return s.mutate(ctx, animalID, true, func(a *Animal) {
		a.FavoriteRoomIDs = addFavorite(a.FavoriteRoomIDs, roomID)
	})
}

func (s *Service) UnassignFavorite(ctx context.Context, animalID, roomID string) (Animal, bool, error) {
	roomID = strings.TrimSpace(roomID)
	if roomID == "" {
		return Animal{}, false, ErrInvalidInput
	}
	return s.mutate(ctx, animalID, true, func(a *Animal) {
		a.FavoriteRoomIDs = removeFavorite(a.FavoriteRoomIDs, roomID)
	})
}

func (s *Service) mutate(ctx context.Context, animalID string, favorites bool, apply func(*Animal)) (Animal, bool, error) {
	a, err := s.GetByID(ctx, animalID)
	if errors.Is(err, ErrNotFound) {
		return Animal{}, false, nil
	}
	if err != nil {
		return Animal{}, false, err
	}

	a.FavoriteRoomIDs = NormalizeFavorites(a.FavoriteRoomIDs)
	apply(&a)

	if err := s.write(ctx, &a); err != nil {
		// Borrado entre la lectura y la escritura.
		if errors.Is(err, ErrNotFound) {
			return Animal{}, false, nil
		}
		return Animal{}, false, err
	}

	if favorites {
		if err := s.invalidateFavorites(ctx); err != nil {
			return Animal{}, false, err
		}
	}

	s.log.Debug("animal relationships updated",
		zap.String("animal_id", a.ID),
		zap.String("room_id", a.RoomID),
		zap.Int("favorites", len(a.FavoriteRoomIDs)),
	)
	return a, true, nil
}
