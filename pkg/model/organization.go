package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Organization is a tenant. Every other row in the schema hangs off an
// organization and stores are expected to scope their queries by OrgID.
type Organization struct {
	ID        string    `gorm:"column:id;primaryKey;type:uuid"`
	Slug      string    `gorm:"column:slug;uniqueIndex;not null"`
	Name      string    `gorm:"column:name;not null"`
	Settings  string    `gorm:"column:settings;type:jsonb;default:'{}'"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Organization) TableName() string {
	return "organizations"
}

func (o *Organization) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}
