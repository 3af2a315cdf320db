package endpoints

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/vantagehq/vantage/pkg/config"
	"github.com/vantagehq/vantage/pkg/server"
	"github.com/vantagehq/vantage/pkg/server/store"
	"github.com/vantagehq/vantage/pkg/simulation"
)

// RegisterSimulationEndpoint registers the Monte Carlo simulation endpoint
func RegisterSimulationEndpoint(s *server.Server) {
	router := s.Router.PathPrefix("/api/v1/projects/{id}/simulation").Subrouter()
	router.Use(s.JWTMiddleware.Middleware)

	router.HandleFunc("", handleSimulation(s.Projects)).Methods("POST")
}

func handleSimulation(projects store.ProjectsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := currentPrincipal(w, r)
		if p == nil {
			return
		}

		if _, err := projects.GetProject(p.OrgID, mux.Vars(r)["id"]); err != nil {
			if errors.Is(err, store.ErrProjectNotFound) {
				respondWithError(w, http.StatusNotFound, "Project not found")
				return
			}
			respondWithError(w, http.StatusInternalServerError, "Failed to fetch project")
			return
		}

		var req simulation.Request
		if err := decodeJSON(r, &req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if err := req.Validate(); err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		result, err := simulation.Run(req, config.Get().SimulationIterationMax)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondWithJSON(w, http.StatusOK, result)
	}
}
