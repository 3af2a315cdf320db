package audit

import "fmt"

// ProjectEvent represents a project mutation audit event
type ProjectEvent struct {
	OrgID        string
	UserID       string
	ClientIP     string
	ProjectID    string
	Operation    string // "create", "update", "delete", "status"
	Detail       string // e.g. new status for "status" operations
	Success      bool
	ErrorMessage string
}

func (e ProjectEvent) MessageID() string {
	return "project"
}

func (e ProjectEvent) Message() string {
	if e.Success {
		msg := fmt.Sprintf("%s %sd project %s", e.UserID, e.Operation, e.ProjectID)
		if e.Detail != "" {
			msg += " (" + e.Detail + ")"
		}
		return msg
	}
	msg := fmt.Sprintf("%s tried to %s project %s", e.UserID, e.Operation, e.ProjectID)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e ProjectEvent) Severity() Severity {
	if e.Success {
		return SeverityInfo
	}
	return SeverityWarning
}

func (e ProjectEvent) Facility() int {
	return FacilityUser
}

func (e ProjectEvent) StructuredData() map[string]map[string]string {
	sd := map[string]map[string]string{
		SDIDAuth: {
			"user": e.UserID,
		},
		SDIDSubject: {
			"project": e.ProjectID,
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
		SDIDAction: {
			"operation": e.Operation,
			"result":    resultString(e.Success),
		},
	}
	if e.Detail != "" {
		sd[SDIDSubject]["detail"] = e.Detail
	}
	return sd
}

func (e ProjectEvent) Record() Record {
	details := map[string]any{"success": e.Success}
	if e.Detail != "" {
		details["detail"] = e.Detail
	}
	if e.ErrorMessage != "" {
		details["error"] = e.ErrorMessage
	}
	return Record{
		OrgID:        e.OrgID,
		ActorID:      e.UserID,
		Action:       "project." + e.Operation,
		ResourceType: "project",
		ResourceID:   e.ProjectID,
		ClientIP:     e.ClientIP,
		Details:      details,
	}
}
