package gorm

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/vantagehq/vantage/pkg/model"
	"github.com/vantagehq/vantage/pkg/server/store"
)

// Ensure FeaturesStore implements store.FeaturesStore
var _ store.FeaturesStore = (*FeaturesStore)(nil)

// FeaturesStore implements store.FeaturesStore using GORM
type FeaturesStore struct {
	db *gorm.DB
}

// NewFeaturesStore creates a new FeaturesStore
func NewFeaturesStore(db *gorm.DB) *FeaturesStore {
	return &FeaturesStore{db: db}
}

// ListToggles returns an organization's toggles, sorted by name.
func (s *FeaturesStore) ListToggles(orgID string) ([]model.FeatureToggle, error) {
	var toggles []model.FeatureToggle
	if err := s.db.Where("org_id = ?", orgID).Order("name").Find(&toggles).Error; err != nil {
		return nil, err
	}
	return toggles, nil
}

// SetToggle sets or updates a toggle.
func (s *FeaturesStore) SetToggle(toggle *model.FeatureToggle) error {
	return s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "org_id"}, {Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"enabled", "description", "updated_by", "updated_at",
		}),
	}).Create(toggle).Error
}
