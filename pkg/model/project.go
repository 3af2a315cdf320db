package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectStatus is the lifecycle state of a project.
//
//go:generate enumer -type=ProjectStatus -transform=snake -trimprefix=Status -json -text -sql
type ProjectStatus int

const (
	StatusProposed ProjectStatus = iota
	StatusActive
	StatusOnHold
	StatusCompleted
	StatusCancelled
)

// validTransitions holds the allowed lifecycle edges. Completed and
// cancelled are terminal.
var validTransitions = map[ProjectStatus][]ProjectStatus{
	StatusProposed: {StatusActive, StatusCancelled},
	StatusActive:   {StatusOnHold, StatusCompleted, StatusCancelled},
	StatusOnHold:   {StatusActive, StatusCancelled},
}

// CanTransitionTo reports whether the status may move to next.
func (s ProjectStatus) CanTransitionTo(next ProjectStatus) bool {
	if s == next {
		return true
	}
	for _, allowed := range validTransitions[s] {
		if next == allowed {
			return true
		}
	}
	return false
}

// Project is a unit of portfolio work with a budget.
type Project struct {
	ID          string        `gorm:"column:id;primaryKey;type:uuid"`
	OrgID       string        `gorm:"column:org_id;not null;type:uuid;index"`
	Key         string        `gorm:"column:key;not null"`
	Name        string        `gorm:"column:name;not null"`
	Description string        `gorm:"column:description"`
	Status      ProjectStatus `gorm:"column:status;not null;default:'proposed'"`
	BudgetCents int64         `gorm:"column:budget_cents;not null;default:0"`
	StartDate   *time.Time    `gorm:"column:start_date;type:date"`
	EndDate     *time.Time    `gorm:"column:end_date;type:date"`
	CreatedAt   time.Time     `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time     `gorm:"column:updated_at;autoUpdateTime"`
}

func (Project) TableName() string {
	return "projects"
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
