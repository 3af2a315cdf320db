package audit

import "fmt"

// CheckEvent represents a permission denial audit event
type CheckEvent struct {
	OrgID        string
	UserID       string
	ClientIP     string
	ResourceType string
	ResourceID   string
	Required     string // role that would have been required
}

func (e CheckEvent) MessageID() string {
	return "check"
}

func (e CheckEvent) Message() string {
	return fmt.Sprintf("%s denied on %s %s: requires %s", e.UserID, e.ResourceType, e.ResourceID, e.Required)
}

func (e CheckEvent) Severity() Severity {
	return SeverityWarning
}

func (e CheckEvent) Facility() int {
	return FacilityAuthPriv
}

func (e CheckEvent) StructuredData() map[string]map[string]string {
	return map[string]map[string]string{
		SDIDAuth: {
			"user": e.UserID,
		},
		SDIDSubject: {
			"resource": e.ResourceID,
			"required": e.Required,
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
		SDIDAction: {
			"operation": "check",
			"result":    "failure",
		},
	}
}

func (e CheckEvent) Record() Record {
	return Record{
		OrgID:        e.OrgID,
		ActorID:      e.UserID,
		Action:       "permission.denied",
		ResourceType: e.ResourceType,
		ResourceID:   e.ResourceID,
		ClientIP:     e.ClientIP,
		Details:      map[string]any{"required_role": e.Required},
	}
}
