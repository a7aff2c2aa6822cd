package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"zoo-rooms/internal/domain/rooms"
)

type RoomsRepo struct {
	db *sql.DB
	d  Dialect
}

func NewRoomsRepo(db *sql.DB, d Dialect) *RoomsRepo {
	return &RoomsRepo{db: db, d: d}
}

func (r *RoomsRepo) Create(ctx context.Context, room rooms.Room) error {
	_, err := r.db.ExecContext(ctx, r.d.Rebind(`
		INSERT INTO rooms (id, title, created_at, updated_at)
		VALUES (?, ?, ?, ?)
	`),
		room.ID,
		room.Title,
		r.d.Timestamp(room.CreatedAt),
		r.d.NullTimestamp(room.UpdatedAt),
	)
	return err
}

func (r *RoomsRepo) Update(ctx context.Context, room rooms.Room) error {
	res, err := r.db.ExecContext(ctx, r.d.Rebind(`
		UPDATE rooms
		SET title = ?, updated_at = ?
		WHERE id = ?
	`),
		room.Title,
		r.d.NullTimestamp(room.UpdatedAt),
		room.ID,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return rooms.ErrNotFound
	}
	return nil
}

func (r *RoomsRepo) GetByID(ctx context.Context, id string) (rooms.Room, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return rooms.Room{}, rooms.ErrNotFound
	}

	var (
		room      rooms.Room
		createdAt nullTime
		updatedAt nullTime
	)
	err := r.db.QueryRowContext(ctx, r.d.Rebind(`
		SELECT id, title, created_at, updated_at
		FROM rooms
		WHERE id = ?
	`), id).Scan(&room.ID, &room.Title, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return rooms.Room{}, rooms.ErrNotFound
	}
	if err != nil {
		return rooms.Room{}, err
	}

	room.CreatedAt = createdAt.Time
	room.UpdatedAt = updatedAt.ptr()
	return room, nil
}

func (r *RoomsRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, r.d.Rebind(`DELETE FROM rooms WHERE id = ?`), id)
	return err
}
