package animals

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, favorites *FavoriteAggregator) {
	r.Route("/api/animals", func(ar chi.Router) {
		ar.Post("/", createAnimalHandler(svc))
		ar.Get("/", listAnimalsByTitleHandler(svc))

		// Consultas sobre la relación (rutas fijas antes que /{animalID})
		ar.Get("/in-room/{roomID}", listInRoomHandler(svc))
		ar.Get("/favorites/aggregation", favoritesAggregationHandler(favorites))

		ar.Get("/{animalID}", getAnimalHandler(svc))
		ar.Put("/{animalID}", updateAnimalHandler(svc))
		ar.Delete("/{animalID}", deleteAnimalHandler(svc))

		// Ocupación
		ar.Post("/{animalID}/place", placeHandler(svc.Place))
		ar.Post("/{animalID}/move", placeHandler(svc.Move))
		ar.Delete("/{animalID}/remove", removeHandler(svc))

		// Favoritos
		ar.Post("/{animalID}/favorites/assign", favoriteHandler(svc.AssignFavorite))
		ar.Delete("/{animalID}/favorites/unassign", favoriteHandler(svc.UnassignFavorite))
	})
}

type animalRequest struct {
	Title string `json:"title"`
}

type animalResponse struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	RoomID          *string    `json:"room_id"`
	Located         *string    `json:"located"` // YYYY-MM-DD
	FavoriteRoomIDs []string   `json:"favorite_room_ids"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty"`
}

// createAnimalHandler godoc
// @Summary Crear animal
// @Description Crea un animal sin room ni favoritos.
// @Tags animals
// @Accept json
// @Produce json
// @Param payload body animalRequest true "Datos del animal"
// @Success 201 {object} animalResponse
// @Failure 400 {string} string "invalid json / title requerido"
// @Failure 500 {string} string "internal error"
// @Router /api/animals [post]
func createAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req animalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		a, err := svc.Create(r.Context(), CreateInput{Title: req.Title})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toAnimalResponse(a))
	}
}

// listAnimalsByTitleHandler godoc
// @Summary Buscar animales por título
// @Description Coincidencia exacta sobre el índice de títulos.
// @Tags animals
// @Produce json
// @Param title query string true "Título exacto"
// @Success 200 {array} animalResponse
// @Failure 400 {string} string "title requerido"
// @Failure 500 {string} string "internal error"
// @Router /api/animals [get]
func listAnimalsByTitleHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListByTitle(r.Context(), r.URL.Query().Get("title"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toAnimalResponses(items))
	}
}

// getAnimalHandler godoc
// @Summary Obtener animal
// @Tags animals
// @Produce json
// @Param animalID path string true "ID del animal"
// @Success 200 {object} animalResponse
// @Failure 404 {string} string "animal not found"
// @Failure 500 {string} string "internal error"
// @Router /api/animals/{animalID} [get]
func getAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := svc.GetByID(r.Context(), chi.URLParam(r, "animalID"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toAnimalResponse(a))
	}
}

// updateAnimalHandler godoc
// @Summary Actualizar animal
// @Description Reemplaza el título. Room y favoritos se modifican con sus propios endpoints.
// @Tags animals
// @Accept json
// @Produce json
// @Param animalID path string true "ID del animal"
// @Param payload body animalRequest true "Nuevo título"
// @Success 200 {object} animalResponse
// @Failure 400 {string} string "invalid json / title requerido"
// @Failure 404 {string} string "animal not found"
// @Failure 500 {string} string "internal error"
// @Router /api/animals/{animalID} [put]
func updateAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req animalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		a, err := svc.Update(r.Context(), chi.URLParam(r, "animalID"), UpdateInput{Title: req.Title})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toAnimalResponse(a))
	}
}

// deleteAnimalHandler godoc
// @Summary Borrar animal
// @Tags animals
// @Param animalID path string true "ID del animal"
// @Success 204
// @Failure 500 {string} string "internal error"
// @Router /api/animals/{animalID} [delete]
func deleteAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "animalID")); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

type placeFunc func(ctx context.Context, animalID, roomID string, located *time.Time) (Animal, bool, error)

// placeHandler godoc
// @Summary Ubicar o mover un animal
// @Description Asigna el room del animal. Sin located se usa la fecha de hoy. /move es equivalente a /place.
// @Tags animals
// @Produce json
// @Param animalID path string true "ID del animal"
// @Param roomId query string true "ID del room"
// @Param located query string false "Fecha YYYY-MM-DD"
// @Success 200 {object} animalResponse
// @Failure 400 {string} string "roomId requerido / located inválido"
// @Failure 404 {string} string "animal not found"
// @Failure 500 {string} string "internal error"
// @Router /api/animals/{animalID}/place [post]
// @Router /api/animals/{animalID}/move [post]
func placeHandler(op placeFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		var located *time.Time
		if raw := strings.TrimSpace(q.Get("located")); raw != "" {
			t, err := time.Parse(DateLayout, raw)
			if err != nil {
				http.Error(w, "located must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			located = &t
		}

		a, found, err := op(r.Context(), chi.URLParam(r, "animalID"), q.Get("roomId"), located)
		writeMutation(w, a, found, err)
	}
}

// removeHandler godoc
// @Summary Sacar un animal de su room
// @Tags animals
// @Produce json
// @Param animalID path string true "ID del animal"
// @Success 200 {object} animalResponse
// @Failure 404 {string} string "animal not found"
// @Failure 500 {string} string "internal error"
// @Router /api/animals/{animalID}/remove [delete]
func removeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, found, err := svc.Remove(r.Context(), chi.URLParam(r, "animalID"))
		writeMutation(w, a, found, err)
	}
}

type favoriteFunc func(ctx context.Context, animalID, roomID string) (Animal, bool, error)

// favoriteHandler godoc
// @Summary Marcar o desmarcar un room favorito
// @Description assign es idempotente; unassign de un room que no es favorito no hace nada.
// @Tags animals
// @Produce json
// @Param animalID path string true "ID del animal"
// @Param roomId query string true "ID del room"
// @Success 200 {object} animalResponse
// @Failure 400 {string} string "roomId requerido"
// @Failure 404 {string} string "animal not found"
// @Failure 500 {string} string "internal error"
// @Router /api/animals/{animalID}/favorites/assign [post]
// @Router /api/animals/{animalID}/favorites/unassign [delete]
func favoriteHandler(op favoriteFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, found, err := op(r.Context(), chi.URLParam(r, "animalID"), r.URL.Query().Get("roomId"))
		writeMutation(w, a, found, err)
	}
}

// listInRoomHandler godoc
// @Summary Animales en un room (paginado)
// @Description Ordena por title (sin distinguir mayúsculas) o located. Página desde 0. size <= 0 o page < 0 devuelven [].
// @Tags animals
// @Produce json
// @Param roomID path string true "ID del room"
// @Param sortBy query string false "title | located (default title)"
// @Param order query string false "asc | desc (default asc)"
// @Param page query int false "Página, default 0"
// @Param size query int false "Tamaño de página, default 10"
// @Success 200 {array} animalResponse
// @Failure 400 {string} string "page/size deben ser enteros"
// @Failure 500 {string} string "internal error"
// @Router /api/animals/in-room/{roomID} [get]
func listInRoomHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		page, err := intParam(q.Get("page"), 0)
		if err != nil {
			http.Error(w, "page must be an integer", http.StatusBadRequest)
			return
		}
		size, err := intParam(q.Get("size"), 10)
		if err != nil {
			http.Error(w, "size must be an integer", http.StatusBadRequest)
			return
		}

		items, err := svc.ListInRoom(r.Context(),
			chi.URLParam(r, "roomID"),
			ParseSortField(q.Get("sortBy")),
			ParseSortOrder(q.Get("order")),
			page, size,
		)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toAnimalResponses(items))
	}
}

// favoritesAggregationHandler godoc
// @Summary Conteo de favoritos por título de room
// @Description Cacheado unos segundos; se invalida en cada cambio de favoritos.
// @Tags animals
// @Produce json
// @Success 200 {object} map[string]int64
// @Failure 500 {string} string "internal error"
// @Router /api/animals/favorites/aggregation [get]
func favoritesAggregationHandler(favorites *FavoriteAggregator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		counts, err := favorites.CountsByTitle(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, counts)
	}
}

func intParam(raw string, def int) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}

func writeMutation(w http.ResponseWriter, a Animal, found bool, err error) {
	if err != nil {
		writeError(w, err)
		return
	}
	if !found {
		http.Error(w, "animal not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, toAnimalResponse(a))
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "animal not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toAnimalResponse(a Animal) animalResponse {
	resp := animalResponse{
		ID:              a.ID,
		Title:           a.Title,
		FavoriteRoomIDs: NormalizeFavorites(a.FavoriteRoomIDs),
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
	if a.RoomID != "" {
		roomID := a.RoomID
		resp.RoomID = &roomID
	}
	if a.Located != nil {
		d := a.Located.Format(DateLayout)
		resp.Located = &d
	}
	return resp
}

func toAnimalResponses(items []Animal) []animalResponse {
	out := make([]animalResponse, 0, len(items))
	for _, a := range items {
		out = append(out, toAnimalResponse(a))
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
