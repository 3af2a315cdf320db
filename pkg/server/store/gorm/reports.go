package gorm

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/vantagehq/vantage/pkg/model"
	"github.com/vantagehq/vantage/pkg/server/store"
)

// Ensure ReportsStore implements store.ReportsStore
var _ store.ReportsStore = (*ReportsStore)(nil)

// ReportsStore implements store.ReportsStore using GORM
type ReportsStore struct {
	db *gorm.DB
}

// NewReportsStore creates a new ReportsStore
func NewReportsStore(db *gorm.DB) *ReportsStore {
	return &ReportsStore{db: db}
}

// UpsertReport stores a report, replacing any existing one for the same
// project and period.
func (s *ReportsStore) UpsertReport(report *model.Report) error {
	return s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "project_id"}, {Name: "period"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"body_md", "body_html", "generated_by", "created_at",
		}),
	}).Create(report).Error
}

// GetReport retrieves a stored report.
func (s *ReportsStore) GetReport(orgID, projectID, period string) (*model.Report, error) {
	var report model.Report
	tx := s.db.Where("org_id = ? AND project_id = ? AND period = ?", orgID, projectID, period).
		First(&report)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, store.ErrReportNotFound
		}
		return nil, tx.Error
	}
	return &report, nil
}
