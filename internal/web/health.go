package web

import (
	"net/http"

	"github.com/JonMunkholm/northwind/internal/store"
)

type healthResponse struct {
	Status string           `json:"status"`
	Pool   *store.PoolStats `json:"pool,omitempty"`
}

// handleHealth pings the store. It sits outside the API key check so load
// balancers can probe it.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.service.Ping(r.Context()); err != nil {
		respondError(w, r, err)
		return
	}

	resp := healthResponse{Status: "ok"}
	if stats, ok := s.service.Stats(); ok {
		resp.Pool = &stats
	}
	writeJSON(w, resp)
}
