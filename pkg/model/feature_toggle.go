package model

import "time"

// FeatureToggle is a per-organization feature flag.
type FeatureToggle struct {
	OrgID       string    `gorm:"column:org_id;primaryKey;type:uuid"`
	Name        string    `gorm:"column:name;primaryKey"`
	Enabled     bool      `gorm:"column:enabled;not null;default:false"`
	Description string    `gorm:"column:description"`
	UpdatedBy   string    `gorm:"column:updated_by;type:uuid"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (FeatureToggle) TableName() string {
	return "feature_toggles"
}
