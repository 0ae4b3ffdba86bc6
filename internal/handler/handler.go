package handler

import "net/http"

// Handler carries cross-cutting HTTP concerns shared by all routes.
type Handler struct {
	clientOrigin string
}

// New creates a Handler allowing the given client origin for CORS.
func New(clientOrigin string) *Handler {
	return &Handler{clientOrigin: clientOrigin}
}

// CORS allows the configured client origin and answers preflight
// requests directly.
func (h *Handler) CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", h.clientOrigin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
