package rooms

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/api/rooms", func(rr chi.Router) {
		rr.Post("/", createRoomHandler(svc))
		rr.Get("/{roomID}", getRoomHandler(svc))
		rr.Put("/{roomID}", updateRoomHandler(svc))
		rr.Delete("/{roomID}", deleteRoomHandler(svc))
	})
}

type roomRequest struct {
	Title string `json:"title"`
}

type roomResponse struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// createRoomHandler godoc
// @Summary Crear room
// @Description Crea un recinto. El título es obligatorio.
// @Tags rooms
// @Accept json
// @Produce json
// @Param payload body roomRequest true "Datos del room"
// @Success 201 {object} roomResponse
// @Failure 400 {string} string "invalid json / title requerido"
// @Failure 500 {string} string "internal error"
// @Router /api/rooms [post]
func createRoomHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req roomRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		room, err := svc.Create(r.Context(), CreateInput{Title: req.Title})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toRoomResponse(room))
	}
}

// getRoomHandler godoc
// @Summary Obtener room
// @Tags rooms
// @Produce json
// @Param roomID path string true "ID del room"
// @Success 200 {object} roomResponse
// @Failure 404 {string} string "room not found"
// @Failure 500 {string} string "internal error"
// @Router /api/rooms/{roomID} [get]
func getRoomHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		room, err := svc.GetByID(r.Context(), chi.URLParam(r, "roomID"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toRoomResponse(room))
	}
}

// updateRoomHandler godoc
// @Summary Actualizar room
// @Description Reemplaza el título. Invalida el agregado de favoritos si el título cambia.
// @Tags rooms
// @Accept json
// @Produce json
// @Param roomID path string true "ID del room"
// @Param payload body roomRequest true "Nuevo título"
// @Success 200 {object} roomResponse
// @Failure 400 {string} string "invalid json / title requerido"
// @Failure 404 {string} string "room not found"
// @Failure 500 {string} string "internal error"
// @Router /api/rooms/{roomID} [put]
func updateRoomHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req roomRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		room, err := svc.Update(r.Context(), chi.URLParam(r, "roomID"), UpdateInput{Title: req.Title})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toRoomResponse(room))
	}
}

// deleteRoomHandler godoc
// @Summary Borrar room
// @Description Idempotente. Los animales que lo referencian no se modifican.
// @Tags rooms
// @Param roomID path string true "ID del room"
// @Success 204
// @Failure 500 {string} string "internal error"
// @Router /api/rooms/{roomID} [delete]
func deleteRoomHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "roomID")); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func toRoomResponse(r Room) roomResponse {
	return roomResponse{
		ID:        r.ID,
		Title:     r.Title,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, "title is required", http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "room not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
