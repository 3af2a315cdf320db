package identity

import (
	"context"
	"net"
	"time"

	"github.com/vantagehq/vantage/pkg/model"
)

// ContextKey is a type for context keys to avoid collisions.
type ContextKey string

const (
	// Key is the context key for Principal.
	Key ContextKey = "principal"
)

// Principal represents the authenticated identity for a request.
// It combines token claims with the role resolved from the org membership.
type Principal struct {
	// Token claims
	UserID    string
	OrgID     string
	Email     string
	IssuedAt  time.Time
	ExpiresAt time.Time

	// Role within the organization (viewer, manager, admin)
	Role string

	// RemoteIP is the client IP address, used for audit entries
	RemoteIP net.IP
}

// WithRole sets the resolved membership role.
func (p *Principal) WithRole(role string) *Principal {
	p.Role = role
	return p
}

// WithRemoteIP sets the remote IP address.
func (p *Principal) WithRemoteIP(ip net.IP) *Principal {
	p.RemoteIP = ip
	return p
}

// IsAdmin returns true if the principal is an org admin.
func (p *Principal) IsAdmin() bool {
	return p.Role == model.RoleAdmin
}

// HasRole reports whether the principal's role meets the required role.
func (p *Principal) HasRole(required string) bool {
	return model.RoleAtLeast(p.Role, required)
}

// ClientIP returns the remote IP as a string, or "" when unknown.
func (p *Principal) ClientIP() string {
	if p.RemoteIP == nil {
		return ""
	}
	return p.RemoteIP.String()
}

// Get retrieves the Principal from context.
func Get(ctx context.Context) (*Principal, bool) {
	p, ok := ctx.Value(Key).(*Principal)
	return p, ok
}

// Set stores the Principal in context.
func Set(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, Key, p)
}
