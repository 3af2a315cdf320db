package audit

import "fmt"

// ChangeEvent represents a budget change entry audit event
type ChangeEvent struct {
	OrgID       string
	UserID      string
	ClientIP    string
	ProjectID   string
	ChangeID    string
	AmountCents int64
	Category    string
}

func (e ChangeEvent) MessageID() string {
	return "change"
}

func (e ChangeEvent) Message() string {
	return fmt.Sprintf("%s recorded a budget change of %d cents on project %s", e.UserID, e.AmountCents, e.ProjectID)
}

func (e ChangeEvent) Severity() Severity {
	return SeverityInfo
}

func (e ChangeEvent) Facility() int {
	return FacilityUser
}

func (e ChangeEvent) StructuredData() map[string]map[string]string {
	return map[string]map[string]string{
		SDIDAuth: {
			"user": e.UserID,
		},
		SDIDSubject: {
			"project": e.ProjectID,
			"change":  e.ChangeID,
			"amount":  fmt.Sprintf("%d", e.AmountCents),
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
		SDIDAction: {
			"operation": "change",
			"result":    "success",
		},
	}
}

func (e ChangeEvent) Record() Record {
	return Record{
		OrgID:        e.OrgID,
		ActorID:      e.UserID,
		Action:       "change.create",
		ResourceType: "budget_change",
		ResourceID:   e.ChangeID,
		ClientIP:     e.ClientIP,
		Details: map[string]any{
			"project_id":   e.ProjectID,
			"amount_cents": e.AmountCents,
			"category":     e.Category,
		},
	}
}
