package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"zoo-rooms/internal/domain/animals"
)

const animalColumns = `id, title, room_id, located, created_at, updated_at`

type AnimalsRepo struct {
	db *sql.DB
	d  Dialect
}

func NewAnimalsRepo(db *sql.DB, d Dialect) *AnimalsRepo {
	return &AnimalsRepo{db: db, d: d}
}

func (r *AnimalsRepo) Create(ctx context.Context, a animals.Animal) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, r.d.Rebind(`
			INSERT INTO animals (`+animalColumns+`, title_key)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`),
			a.ID,
			a.Title,
			nullString(a.RoomID),
			r.d.NullDate(a.Located),
			r.d.Timestamp(a.CreatedAt),
			r.d.NullTimestamp(a.UpdatedAt),
			animals.TitleSortKey(a),
		)
		if err != nil {
			return fmt.Errorf("insert animal: %w", err)
		}
		return r.insertFavorites(ctx, tx, a.ID, a.FavoriteRoomIDs)
	})
}

// Update reemplaza la fila y el conjunto de favoritos en una transacción.
func (r *AnimalsRepo) Update(ctx context.Context, a animals.Animal) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, r.d.Rebind(`
			UPDATE animals
			SET title = ?, title_key = ?, room_id = ?, located = ?, updated_at = ?
			WHERE id = ?
		`),
			a.Title,
			animals.TitleSortKey(a),
			nullString(a.RoomID),
			r.d.NullDate(a.Located),
			r.d.NullTimestamp(a.UpdatedAt),
			a.ID,
		)
		if err != nil {
			return fmt.Errorf("update animal: %w", err)
		}
		n, _ := res.RowsAffected()
		if n == 0 {
			return animals.ErrNotFound
		}

		if _, err := tx.ExecContext(ctx, r.d.Rebind(`DELETE FROM animal_favorite_rooms WHERE animal_id = ?`), a.ID); err != nil {
			return fmt.Errorf("clear favorites: %w", err)
		}
		return r.insertFavorites(ctx, tx, a.ID, a.FavoriteRoomIDs)
	})
}

func (r *AnimalsRepo) GetByID(ctx context.Context, id string) (animals.Animal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return animals.Animal{}, animals.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, r.d.Rebind(`SELECT `+animalColumns+` FROM animals WHERE id = ?`), id)
	a, err := scanAnimal(row)
	if errors.Is(err, sql.ErrNoRows) {
		return animals.Animal{}, animals.ErrNotFound
	}
	if err != nil {
		return animals.Animal{}, err
	}

	items := []animals.Animal{a}
	if err := r.loadFavorites(ctx, items); err != nil {
		return animals.Animal{}, err
	}
	return items[0], nil
}

func (r *AnimalsRepo) Delete(ctx context.Context, id string) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, r.d.Rebind(`DELETE FROM animal_favorite_rooms WHERE animal_id = ?`), id); err != nil {
			return fmt.Errorf("delete favorites: %w", err)
		}
		if _, err := tx.ExecContext(ctx, r.d.Rebind(`DELETE FROM animals WHERE id = ?`), id); err != nil {
			return fmt.Errorf("delete animal: %w", err)
		}
		return nil
	})
}

// ListByRoom usa los índices por room_id con ORDER BY + LIMIT.
func (r *AnimalsRepo) ListByRoom(ctx context.Context, roomID string, limit int, ord animals.Ordering) ([]animals.Animal, error) {
	if limit <= 0 {
		return []animals.Animal{}, nil
	}
	return r.query(ctx, `
		SELECT `+animalColumns+`
		FROM animals
		WHERE room_id = ?
		`+r.d.OrderBy(ord)+`
		LIMIT ?
	`, roomID, limit)
}

func (r *AnimalsRepo) ListByTitle(ctx context.Context, title string) ([]animals.Animal, error) {
	return r.query(ctx, `
		SELECT `+animalColumns+`
		FROM animals
		WHERE title = ?
		ORDER BY id
	`, title)
}

// ScanFavorites lee solo (id, room_id) con un LEFT JOIN ordenado por animal
// y agrupa las filas consecutivas.
func (r *AnimalsRepo) ScanFavorites(ctx context.Context, fn func(string, []string) error) error {
	rows, err := r.db.QueryContext(ctx, `
		SELECT a.id, f.room_id
		FROM animals a
		LEFT JOIN animal_favorite_rooms f ON f.animal_id = a.id
		ORDER BY a.id, f.room_id
	`)
	if err != nil {
		return err
	}
	defer rows.Close()

	var (
		current string
		favs    []string
		started bool
	)
	for rows.Next() {
		var id string
		var roomID sql.NullString
		if err := rows.Scan(&id, &roomID); err != nil {
			return err
		}
		if started && id != current {
			if err := fn(current, favs); err != nil {
				return err
			}
			favs = nil
		}
		current, started = id, true
		if roomID.Valid {
			favs = append(favs, roomID.String)
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}
	if started {
		return fn(current, favs)
	}
	return nil
}

func (r *AnimalsRepo) query(ctx context.Context, q string, args ...any) ([]animals.Animal, error) {
	rows, err := r.db.QueryContext(ctx, r.d.Rebind(q), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]animals.Animal, 0)
	for rows.Next() {
		a, err := scanAnimal(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.loadFavorites(ctx, out); err != nil {
		return nil, err
	}
	return out, nil
}

// favoritesBatchSize acota los placeholders del IN por query (SQLite admite 32766, Postgres 65535).
var favoritesBatchSize = 500

// loadFavorites completa FavoriteRoomIDs de items, un query por cada favoritesBatchSize animales.
func (r *AnimalsRepo) loadFavorites(ctx context.Context, items []animals.Animal) error {
	index := make(map[string]int, len(items))
	for i := range items {
		items[i].FavoriteRoomIDs = []string{}
		index[items[i].ID] = i
	}

	for from := 0; from < len(items); from += favoritesBatchSize {
		to := min(from+favoritesBatchSize, len(items))
		args := make([]any, 0, to-from)
		for _, a := range items[from:to] {
			args = append(args, a.ID)
		}
		if err := r.loadFavoritesBatch(ctx, items, index, args); err != nil {
			return err
		}
	}
	return nil
}

func (r *AnimalsRepo) loadFavoritesBatch(ctx context.Context, items []animals.Animal, index map[string]int, args []any) error {
	rows, err := r.db.QueryContext(ctx, r.d.Rebind(`
		SELECT animal_id, room_id
		FROM animal_favorite_rooms
		WHERE animal_id IN (`+placeholders(len(args))+`)
		ORDER BY animal_id, room_id
	`), args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var animalID, roomID string
		if err := rows.Scan(&animalID, &roomID); err != nil {
			return err
		}
		if i, ok := index[animalID]; ok {
			items[i].FavoriteRoomIDs = append(items[i].FavoriteRoomIDs, roomID)
		}
	}
	return rows.Err()
}

func (r *AnimalsRepo) insertFavorites(ctx context.Context, tx *sql.Tx, animalID string, roomIDs []string) error {
	for _, roomID := range animals.NormalizeFavorites(roomIDs) {
		if _, err := tx.ExecContext(ctx, r.d.Rebind(`
			INSERT INTO animal_favorite_rooms (animal_id, room_id) VALUES (?, ?)
		`), animalID, roomID); err != nil {
			return fmt.Errorf("insert favorite: %w", err)
		}
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAnimal(s rowScanner) (animals.Animal, error) {
	var (
		a         animals.Animal
		roomID    sql.NullString
		located   nullTime
		createdAt nullTime
		updatedAt nullTime
	)
	if err := s.Scan(&a.ID, &a.Title, &roomID, &located, &createdAt, &updatedAt); err != nil {
		return animals.Animal{}, err
	}

	a.RoomID = roomID.String
	if located.Valid {
		day := animals.DateOf(located.Time)
		a.Located = &day
	}
	a.CreatedAt = createdAt.Time
	a.UpdatedAt = updatedAt.ptr()
	return a, nil
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func withTx(ctx context.Context, db *sql.DB, fn func(*sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}
