package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Report is a generated project monthly report (PMR). One row per project
// and period; regeneration replaces the row.
type Report struct {
	ID          string    `gorm:"column:id;primaryKey;type:uuid"`
	OrgID       string    `gorm:"column:org_id;not null;type:uuid;index"`
	ProjectID   string    `gorm:"column:project_id;not null;type:uuid"`
	Period      string    `gorm:"column:period;not null"` // YYYY-MM
	BodyMD      string    `gorm:"column:body_md;not null"`
	BodyHTML    string    `gorm:"column:body_html;not null"`
	GeneratedBy string    `gorm:"column:generated_by;type:uuid"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Report) TableName() string {
	return "reports"
}

func (r *Report) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
