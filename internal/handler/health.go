package handler

import (
	"net/http"
)

// rootResponse is the static welcome payload served at GET /.
type rootResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
	Docs    string `json:"docs"`
	Status  string `json:"status"`
}

// healthResponse is the body served at GET /health.
type healthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// Root handles GET /. It returns a static welcome payload.
func (s *Server) Root(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, rootResponse{
		Message: "Welcome to Wanderlust Travel API",
		Version: "1.0.0",
		Docs:    "/docs",
		Status:  "healthy",
	})
}

// Health handles GET /health. It pings the database and reports 503 when
// the database is unreachable, so load balancers stop routing traffic here.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	if s.db != nil {
		if err := s.db.Ping(r.Context()); err != nil {
			respondJSON(w, http.StatusServiceUnavailable, healthResponse{
				Status:   "unhealthy",
				Database: "disconnected",
			})
			return
		}
	}
	respondJSON(w, http.StatusOK, healthResponse{
		Status:   "healthy",
		Database: "connected",
	})
}
