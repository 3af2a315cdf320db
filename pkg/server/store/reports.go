package store

import (
	"errors"

	"github.com/vantagehq/vantage/pkg/model"
)

// ErrReportNotFound is returned when no report exists for a project and period
var ErrReportNotFound = errors.New("report not found")

// ReportsStore abstracts generated report storage
type ReportsStore interface {
	// UpsertReport stores a report, replacing any existing one for the
	// same project and period.
	UpsertReport(report *model.Report) error

	// GetReport retrieves a stored report.
	// Returns ErrReportNotFound if none exists.
	GetReport(orgID, projectID, period string) (*model.Report, error)
}
