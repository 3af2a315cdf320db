package endpoints

import (
	"net/http"

	"github.com/vantagehq/vantage/pkg/distribution"
	"github.com/vantagehq/vantage/pkg/server"
)

// PreviewRequest is the body for POST /api/v1/distribution/preview
type PreviewRequest struct {
	Profile    string    `json:"profile"`
	Months     int       `json:"months"`
	TotalCents int64     `json:"total_cents"`
	Weights    []float64 `json:"weights,omitempty"` // custom profile only
}

// PreviewResponse is the per-month allocation of the total
type PreviewResponse struct {
	Profile     string                    `json:"profile"`
	TotalCents  int64                     `json:"total_cents"`
	Allocations []distribution.Allocation `json:"allocations"`
}

// RegisterDistributionEndpoints registers the distribution profile endpoints
func RegisterDistributionEndpoints(s *server.Server) {
	router := s.Router.PathPrefix("/api/v1/distribution").Subrouter()
	router.Use(s.JWTMiddleware.Middleware)

	router.HandleFunc("/suggestion", handleSuggestion()).Methods("GET")
	router.HandleFunc("/preview", handlePreview()).Methods("POST")
}

func handleSuggestion() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if p := currentPrincipal(w, r); p == nil {
			return
		}

		start, err := distribution.ParsePeriod(r.URL.Query().Get("start"))
		if err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		end, err := distribution.ParsePeriod(r.URL.Query().Get("end"))
		if err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		suggestion, err := distribution.Suggest(start, end)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondWithJSON(w, http.StatusOK, suggestion)
	}
}

func handlePreview() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if p := currentPrincipal(w, r); p == nil {
			return
		}

		var req PreviewRequest
		if err := decodeJSON(r, &req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.TotalCents < 0 {
			respondWithError(w, http.StatusBadRequest, "total_cents must not be negative")
			return
		}

		var weights []float64
		var err error
		if req.Profile == distribution.ProfileCustom {
			if err = distribution.ValidateCustomWeights(req.Weights, req.Months); err != nil {
				respondWithError(w, http.StatusBadRequest, err.Error())
				return
			}
			weights = req.Weights
		} else {
			weights, err = distribution.Weights(req.Profile, req.Months)
			if err != nil {
				respondWithError(w, http.StatusBadRequest, err.Error())
				return
			}
		}

		respondWithJSON(w, http.StatusOK, PreviewResponse{
			Profile:     req.Profile,
			TotalCents:  req.TotalCents,
			Allocations: distribution.Allocate(req.TotalCents, weights),
		})
	}
}
