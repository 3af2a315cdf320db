package store

// PortfolioStats is an organization-wide aggregate snapshot.
type PortfolioStats struct {
	ProjectsByStatus map[string]int64 `json:"projects_by_status"`
	TotalBudgetCents int64            `json:"total_budget_cents"`
	TotalSpendCents  int64            `json:"total_spend_cents"`
}

// PortfolioStore abstracts portfolio-wide aggregation queries
type PortfolioStore interface {
	// CountProjectsByStatus returns project counts keyed by status name.
	CountProjectsByStatus(orgID string) (map[string]int64, error)

	// TotalBudgetCents sums budgets across the organization's projects.
	TotalBudgetCents(orgID string) (int64, error)

	// TotalSpendCents sums budget changes across the organization.
	TotalSpendCents(orgID string) (int64, error)
}
