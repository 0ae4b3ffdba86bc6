package handler

import (
	"net/http"
	"time"
)

type healthResponse struct {
	OK      bool   `json:"ok"`
	Service string `json:"service"`
	Time    string `json:"time"`
}

// Health handles GET /api/health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		OK:      true,
		Service: "contact",
		Time:    time.Now().UTC().Format(time.RFC3339),
	})
}
