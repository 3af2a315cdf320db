package gorm

import (
	"gorm.io/gorm"

	"github.com/vantagehq/vantage/pkg/anomaly"
	"github.com/vantagehq/vantage/pkg/model"
	"github.com/vantagehq/vantage/pkg/server/store"
)

// Ensure ChangesStore implements store.ChangesStore
var _ store.ChangesStore = (*ChangesStore)(nil)

// ChangesStore implements store.ChangesStore using GORM
type ChangesStore struct {
	db *gorm.DB
}

// NewChangesStore creates a new ChangesStore
func NewChangesStore(db *gorm.DB) *ChangesStore {
	return &ChangesStore{db: db}
}

// ListChanges returns a project's budget changes, newest entry date first.
func (s *ChangesStore) ListChanges(orgID, projectID string, limit, offset int) ([]model.BudgetChange, error) {
	var changes []model.BudgetChange
	tx := s.db.Where("org_id = ? AND project_id = ?", orgID, projectID).
		Order("entry_date desc, created_at desc").
		Limit(limit).Offset(offset).Find(&changes)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return changes, nil
}

// ListChangesForPeriod returns a project's changes in a YYYY-MM period, oldest first.
func (s *ChangesStore) ListChangesForPeriod(orgID, projectID, period string) ([]model.BudgetChange, error) {
	var changes []model.BudgetChange
	tx := s.db.Where(
		"org_id = ? AND project_id = ? AND to_char(entry_date, 'YYYY-MM') = ?",
		orgID, projectID, period,
	).Order("entry_date, created_at").Find(&changes)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return changes, nil
}

// CreateChange appends a budget change entry.
func (s *ChangesStore) CreateChange(change *model.BudgetChange) error {
	return s.db.Create(change).Error
}

// SpendCents returns the sum of a project's change amounts.
func (s *ChangesStore) SpendCents(orgID, projectID string) (int64, error) {
	var total int64
	err := s.db.Raw(
		`SELECT COALESCE(SUM(amount_cents), 0) FROM budget_changes WHERE org_id = ? AND project_id = ?`,
		orgID, projectID,
	).Scan(&total).Error
	return total, err
}

// MonthlySpend returns a project's spend aggregated by entry month, oldest first.
func (s *ChangesStore) MonthlySpend(orgID, projectID string) ([]anomaly.MonthlySpend, error) {
	var rows []anomaly.MonthlySpend
	err := s.db.Raw(
		`SELECT to_char(entry_date, 'YYYY-MM') AS month, SUM(amount_cents) AS amount_cents
		 FROM budget_changes
		 WHERE org_id = ? AND project_id = ?
		 GROUP BY 1 ORDER BY 1`,
		orgID, projectID,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
