package endpoints

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/vantagehq/vantage/pkg/audit"
	"github.com/vantagehq/vantage/pkg/cache"
	"github.com/vantagehq/vantage/pkg/config"
	"github.com/vantagehq/vantage/pkg/model"
	"github.com/vantagehq/vantage/pkg/server"
	"github.com/vantagehq/vantage/pkg/server/store"
)

// SetFeatureRequest is the body for PUT /api/features/{name}
type SetFeatureRequest struct {
	Enabled     bool   `json:"enabled"`
	Description string `json:"description"`
}

// RegisterFeaturesEndpoints registers the feature toggle endpoints
func RegisterFeaturesEndpoints(s *server.Server) {
	router := s.Router.PathPrefix("/api/features").Subrouter()
	router.Use(s.JWTMiddleware.Middleware)

	router.HandleFunc("", handleListFeatures(s.Features, s.Cache)).Methods("GET")
	router.HandleFunc("/{name}", handleSetFeature(s.Features, s.Cache)).Methods("PUT")
}

func featuresCacheKey(orgID string) string {
	return "features:" + orgID
}

func handleListFeatures(features store.FeaturesStore, c cache.Cache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := currentPrincipal(w, r)
		if p == nil {
			return
		}

		ctx := r.Context()
		if cached, ok := c.Get(ctx, featuresCacheKey(p.OrgID)); ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write(cached)
			return
		}

		toggles, err := features.ListToggles(p.OrgID)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to list features")
			return
		}

		resp := make(map[string]bool, len(toggles))
		for _, t := range toggles {
			resp[t.Name] = t.Enabled
		}

		body, _ := json.Marshal(resp)
		c.Set(ctx, featuresCacheKey(p.OrgID), body, config.Get().CacheTTL())

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(body)
	}
}

func handleSetFeature(features store.FeaturesStore, c cache.Cache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := mux.Vars(r)["name"]
		p := requireRole(w, r, model.RoleAdmin, "feature", name)
		if p == nil {
			return
		}

		var req SetFeatureRequest
		if err := decodeJSON(r, &req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		toggle := &model.FeatureToggle{
			OrgID:       p.OrgID,
			Name:        name,
			Enabled:     req.Enabled,
			Description: req.Description,
			UpdatedBy:   p.UserID,
		}
		if err := features.SetToggle(toggle); err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to set feature")
			return
		}

		c.Delete(r.Context(), featuresCacheKey(p.OrgID))

		audit.Log(audit.FeatureEvent{
			OrgID:    p.OrgID,
			UserID:   p.UserID,
			ClientIP: p.ClientIP(),
			Feature:  name,
			Enabled:  req.Enabled,
		})
		respondWithJSON(w, http.StatusOK, map[string]bool{name: req.Enabled})
	}
}
