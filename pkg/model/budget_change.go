package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BudgetChange is an append-only spend entry against a project's budget.
// Spend for a project is the sum of its change amounts; negative amounts
// record credits.
type BudgetChange struct {
	ID          string    `gorm:"column:id;primaryKey;type:uuid"`
	OrgID       string    `gorm:"column:org_id;not null;type:uuid;index"`
	ProjectID   string    `gorm:"column:project_id;not null;type:uuid;index"`
	AmountCents int64     `gorm:"column:amount_cents;not null"`
	Category    string    `gorm:"column:category"`
	Memo        string    `gorm:"column:memo"`
	EntryDate   time.Time `gorm:"column:entry_date;type:date;not null"`
	CreatedBy   string    `gorm:"column:created_by;type:uuid"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (BudgetChange) TableName() string {
	return "budget_changes"
}

func (c *BudgetChange) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
