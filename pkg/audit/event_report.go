package audit

import "fmt"

// ReportEvent represents a report generation audit event
type ReportEvent struct {
	OrgID     string
	UserID    string
	ClientIP  string
	ProjectID string
	Period    string
	Success   bool
}

func (e ReportEvent) MessageID() string {
	return "report"
}

func (e ReportEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("%s generated report %s for project %s", e.UserID, e.Period, e.ProjectID)
	}
	return fmt.Sprintf("%s failed to generate report %s for project %s", e.UserID, e.Period, e.ProjectID)
}

func (e ReportEvent) Severity() Severity {
	if e.Success {
		return SeverityInfo
	}
	return SeverityWarning
}

func (e ReportEvent) Facility() int {
	return FacilityUser
}

func (e ReportEvent) StructuredData() map[string]map[string]string {
	return map[string]map[string]string{
		SDIDAuth: {
			"user": e.UserID,
		},
		SDIDSubject: {
			"project": e.ProjectID,
			"period":  e.Period,
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
		SDIDAction: {
			"operation": "report",
			"result":    resultString(e.Success),
		},
	}
}

func (e ReportEvent) Record() Record {
	return Record{
		OrgID:        e.OrgID,
		ActorID:      e.UserID,
		Action:       "report.generate",
		ResourceType: "report",
		ResourceID:   e.ProjectID + "/" + e.Period,
		ClientIP:     e.ClientIP,
		Details:      map[string]any{"period": e.Period, "success": e.Success},
	}
}

// AssistEvent represents an AI help chat request audit event. Only the
// message length is recorded, never the content.
type AssistEvent struct {
	OrgID         string
	UserID        string
	ClientIP      string
	MessageLength int
	Success       bool
}

func (e AssistEvent) MessageID() string {
	return "assist"
}

func (e AssistEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("%s used the help chat (%d chars)", e.UserID, e.MessageLength)
	}
	return fmt.Sprintf("%s help chat request failed (%d chars)", e.UserID, e.MessageLength)
}

func (e AssistEvent) Severity() Severity {
	return SeverityInfo
}

func (e AssistEvent) Facility() int {
	return FacilityUser
}

func (e AssistEvent) StructuredData() map[string]map[string]string {
	return map[string]map[string]string{
		SDIDAuth: {
			"user": e.UserID,
		},
		SDIDSubject: {
			"length": fmt.Sprintf("%d", e.MessageLength),
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
		SDIDAction: {
			"operation": "assist",
			"result":    resultString(e.Success),
		},
	}
}

func (e AssistEvent) Record() Record {
	return Record{
		OrgID:        e.OrgID,
		ActorID:      e.UserID,
		Action:       "assist.chat",
		ResourceType: "assist",
		ClientIP:     e.ClientIP,
		Details:      map[string]any{"message_length": e.MessageLength, "success": e.Success},
	}
}
