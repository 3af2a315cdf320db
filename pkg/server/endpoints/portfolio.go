package endpoints

import (
	"encoding/json"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/vantagehq/vantage/pkg/cache"
	"github.com/vantagehq/vantage/pkg/config"
	"github.com/vantagehq/vantage/pkg/server"
	"github.com/vantagehq/vantage/pkg/server/store"
)

// PortfolioSummaryResponse is the response for GET /api/v1/portfolio/summary
type PortfolioSummaryResponse struct {
	ProjectsByStatus map[string]int64 `json:"projects_by_status"`
	TotalBudgetCents int64            `json:"total_budget_cents"`
	TotalSpendCents  int64            `json:"total_spend_cents"`
	RecentAuditCount int64            `json:"recent_audit_count"`
}

// RegisterPortfolioEndpoint registers the portfolio summary endpoint
func RegisterPortfolioEndpoint(s *server.Server) {
	router := s.Router.PathPrefix("/api/v1/portfolio").Subrouter()
	router.Use(s.JWTMiddleware.Middleware)

	router.HandleFunc("/summary", handlePortfolioSummary(s.Portfolio, s.Audit, s.Cache)).Methods("GET")
}

func portfolioCacheKey(orgID string) string {
	return "portfolio:" + orgID
}

func handlePortfolioSummary(portfolio store.PortfolioStore, auditStore store.AuditStore, c cache.Cache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := currentPrincipal(w, r)
		if p == nil {
			return
		}

		ctx := r.Context()
		if cached, ok := c.Get(ctx, portfolioCacheKey(p.OrgID)); ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write(cached)
			return
		}

		var resp PortfolioSummaryResponse
		g, _ := errgroup.WithContext(ctx)
		g.Go(func() error {
			counts, err := portfolio.CountProjectsByStatus(p.OrgID)
			resp.ProjectsByStatus = counts
			return err
		})
		g.Go(func() error {
			total, err := portfolio.TotalBudgetCents(p.OrgID)
			resp.TotalBudgetCents = total
			return err
		})
		g.Go(func() error {
			total, err := portfolio.TotalSpendCents(p.OrgID)
			resp.TotalSpendCents = total
			return err
		})
		g.Go(func() error {
			count, err := auditStore.CountSince(p.OrgID, 30)
			resp.RecentAuditCount = count
			return err
		})
		if err := g.Wait(); err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to build summary")
			return
		}

		body, _ := json.Marshal(resp)
		c.Set(ctx, portfolioCacheKey(p.OrgID), body, config.Get().CacheTTL())

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(body)
	}
}
