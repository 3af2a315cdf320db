package endpoints

import (
	"net/http"

	"github.com/vantagehq/vantage/pkg/server"
	"github.com/vantagehq/vantage/pkg/server/store"
)

// StatusResponse represents the response from the health endpoints
type StatusResponse struct {
	Status   string `json:"status"`
	Database string `json:"database,omitempty"`
}

// RegisterStatusEndpoints registers the liveness endpoints (no auth required)
func RegisterStatusEndpoints(s *server.Server) {
	s.Router.HandleFunc("/", handleStatus(s.Health)).Methods("GET")
	s.Router.HandleFunc("/health", handleStatus(s.Health)).Methods("GET")
}

func handleStatus(health store.HealthStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := health.CheckConnectivity(); err != nil {
			respondWithJSON(w, http.StatusServiceUnavailable, StatusResponse{
				Status:   "error",
				Database: "unreachable",
			})
			return
		}
		respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok", Database: "ok"})
	}
}
