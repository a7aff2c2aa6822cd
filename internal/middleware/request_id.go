package middleware

import (
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
)

const RequestIDHeader = "X-Request-ID"

// RequestID devuelve en la respuesta el id que puso chimw.RequestID.
// Tiene que ir después de chimw.RequestID.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := chimw.GetReqID(r.Context()); id != "" {
			w.Header().Set(RequestIDHeader, id)
		}
		next.ServeHTTP(w, r)
	})
}
