package store

import (
	"github.com/vantagehq/vantage/pkg/audit"
	"github.com/vantagehq/vantage/pkg/model"
)

// AuditFilter narrows an audit log listing. Zero values match everything.
type AuditFilter struct {
	Action       string
	ResourceType string
	Limit        int
	Offset       int
}

// AuditStore abstracts the hash-chained audit log
type AuditStore interface {
	// Append persists an audit record as the next link in its
	// organization's chain. Satisfies audit.Persister.
	Append(rec audit.Record) error

	// ListLogs returns an organization's audit entries, newest first.
	ListLogs(orgID string, filter AuditFilter) ([]model.AuditLog, error)

	// VerifyChain walks the organization's chain oldest-first and
	// recomputes every hash.
	VerifyChain(orgID string) (audit.VerifyResult, error)

	// CountSince returns the number of entries recorded for the
	// organization in the given window.
	CountSince(orgID string, days int) (int64, error)
}
