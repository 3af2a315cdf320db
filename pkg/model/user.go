package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is a login identity. Org membership and role live in OrgMember.
type User struct {
	ID             string    `gorm:"column:id;primaryKey;type:uuid"`
	Email          string    `gorm:"column:email;uniqueIndex;not null"`
	DisplayName    string    `gorm:"column:display_name"`
	PasswordDigest string    `gorm:"column:password_digest;not null"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// Membership roles, weakest to strongest.
const (
	RoleViewer  = "viewer"
	RoleManager = "manager"
	RoleAdmin   = "admin"
)

// RoleAtLeast reports whether role meets the required role. Unknown roles
// never satisfy anything.
func RoleAtLeast(role, required string) bool {
	rank := map[string]int{RoleViewer: 1, RoleManager: 2, RoleAdmin: 3}
	r, ok := rank[role]
	q, ok2 := rank[required]
	return ok && ok2 && r >= q
}

// OrgMember binds a user to an organization with a role.
type OrgMember struct {
	OrgID     string    `gorm:"column:org_id;primaryKey;type:uuid"`
	UserID    string    `gorm:"column:user_id;primaryKey;type:uuid"`
	Role      string    `gorm:"column:role;not null;default:viewer"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (OrgMember) TableName() string {
	return "org_members"
}
