package gorm

import (
	"gorm.io/gorm"

	"github.com/vantagehq/vantage/pkg/server/store"
)

// Ensure PortfolioStore implements store.PortfolioStore
var _ store.PortfolioStore = (*PortfolioStore)(nil)

// PortfolioStore implements store.PortfolioStore using GORM
type PortfolioStore struct {
	db *gorm.DB
}

// NewPortfolioStore creates a new PortfolioStore
func NewPortfolioStore(db *gorm.DB) *PortfolioStore {
	return &PortfolioStore{db: db}
}

// CountProjectsByStatus returns project counts keyed by status name.
func (s *PortfolioStore) CountProjectsByStatus(orgID string) (map[string]int64, error) {
	var rows []struct {
		Status string
		Count  int64
	}
	err := s.db.Raw(
		`SELECT status, COUNT(*) AS count FROM projects WHERE org_id = ? GROUP BY status`,
		orgID,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

// TotalBudgetCents sums budgets across the organization's projects.
func (s *PortfolioStore) TotalBudgetCents(orgID string) (int64, error) {
	var total int64
	err := s.db.Raw(
		`SELECT COALESCE(SUM(budget_cents), 0) FROM projects WHERE org_id = ?`,
		orgID,
	).Scan(&total).Error
	return total, err
}

// TotalSpendCents sums budget changes across the organization.
func (s *PortfolioStore) TotalSpendCents(orgID string) (int64, error) {
	var total int64
	err := s.db.Raw(
		`SELECT COALESCE(SUM(amount_cents), 0) FROM budget_changes WHERE org_id = ?`,
		orgID,
	).Scan(&total).Error
	return total, err
}
