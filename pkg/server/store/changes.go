package store

import (
	"github.com/vantagehq/vantage/pkg/anomaly"
	"github.com/vantagehq/vantage/pkg/model"
)

// ChangesStore abstracts budget change storage operations
type ChangesStore interface {
	// ListChanges returns a project's budget changes, newest entry date first.
	ListChanges(orgID, projectID string, limit, offset int) ([]model.BudgetChange, error)

	// ListChangesForPeriod returns a project's changes whose entry date
	// falls in the given YYYY-MM period, oldest first.
	ListChangesForPeriod(orgID, projectID, period string) ([]model.BudgetChange, error)

	// CreateChange appends a budget change entry.
	CreateChange(change *model.BudgetChange) error

	// SpendCents returns the sum of a project's change amounts.
	SpendCents(orgID, projectID string) (int64, error)

	// MonthlySpend returns a project's spend aggregated by entry month,
	// oldest first.
	MonthlySpend(orgID, projectID string) ([]anomaly.MonthlySpend, error)
}
