package model

import "time"

// AuditLog is one link in an organization's tamper-evident audit chain.
// Hash covers the row's canonical form plus PreviousHash; see pkg/audit.
type AuditLog struct {
	ID           int64     `gorm:"column:id;primaryKey;autoIncrement"`
	OrgID        string    `gorm:"column:org_id;not null;type:uuid;index"`
	ActorID      *string   `gorm:"column:actor_id;type:uuid"` // NULL for pre-authn events
	Action       string    `gorm:"column:action;not null"`
	ResourceType string    `gorm:"column:resource_type;not null"`
	ResourceID   string    `gorm:"column:resource_id"`
	Details      string    `gorm:"column:details;type:jsonb;default:'{}'"`
	ClientIP     string    `gorm:"column:client_ip"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	PreviousHash string    `gorm:"column:previous_hash;not null"`
	Hash         string    `gorm:"column:hash;not null"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}
