package endpoints

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/vantagehq/vantage/pkg/anomaly"
	"github.com/vantagehq/vantage/pkg/config"
	"github.com/vantagehq/vantage/pkg/server"
	"github.com/vantagehq/vantage/pkg/server/store"
)

// AnomaliesResponse is the response for the anomaly scan
type AnomaliesResponse struct {
	Threshold float64           `json:"threshold"`
	Anomalies []anomaly.Anomaly `json:"anomalies"`
}

// RegisterAnomaliesEndpoint registers the spend anomaly endpoint
func RegisterAnomaliesEndpoint(s *server.Server) {
	router := s.Router.PathPrefix("/api/v1/projects/{id}/anomalies").Subrouter()
	router.Use(s.JWTMiddleware.Middleware)

	router.HandleFunc("", handleAnomalies(s.Projects, s.Changes)).Methods("GET")
}

func handleAnomalies(projects store.ProjectsStore, changes store.ChangesStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := currentPrincipal(w, r)
		if p == nil {
			return
		}

		project, err := projects.GetProject(p.OrgID, mux.Vars(r)["id"])
		if err != nil {
			if errors.Is(err, store.ErrProjectNotFound) {
				respondWithError(w, http.StatusNotFound, "Project not found")
				return
			}
			respondWithError(w, http.StatusInternalServerError, "Failed to fetch project")
			return
		}

		threshold := config.Get().AnomalyThreshold
		if raw := r.URL.Query().Get("threshold"); raw != "" {
			threshold, err = strconv.ParseFloat(raw, 64)
			if err != nil || threshold <= 0 {
				respondWithError(w, http.StatusBadRequest, "threshold must be a positive number")
				return
			}
		}

		spend, err := changes.MonthlySpend(p.OrgID, project.ID)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to aggregate spend")
			return
		}

		anomalies := anomaly.Detect(spend, threshold)
		if anomalies == nil {
			anomalies = []anomaly.Anomaly{}
		}
		respondWithJSON(w, http.StatusOK, AnomaliesResponse{
			Threshold: threshold,
			Anomalies: anomalies,
		})
	}
}
