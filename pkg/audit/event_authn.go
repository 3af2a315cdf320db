package audit

import "fmt"

// AuthenticateEvent represents a login attempt audit event
type AuthenticateEvent struct {
	OrgID        string
	UserID       string
	Email        string
	ClientIP     string
	Success      bool
	ErrorMessage string
}

func (e AuthenticateEvent) MessageID() string {
	return "authn"
}

func (e AuthenticateEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("%s successfully authenticated", e.Email)
	}
	msg := fmt.Sprintf("%s failed to authenticate", e.Email)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e AuthenticateEvent) Severity() Severity {
	if e.Success {
		return SeverityInfo
	}
	return SeverityWarning
}

func (e AuthenticateEvent) Facility() int {
	return FacilityAuthPriv
}

func (e AuthenticateEvent) StructuredData() map[string]map[string]string {
	return map[string]map[string]string{
		SDIDAuth: {
			"user": e.Email,
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
		SDIDAction: {
			"operation": "login",
			"result":    resultString(e.Success),
		},
	}
}

func (e AuthenticateEvent) Record() Record {
	details := map[string]any{"email": e.Email, "success": e.Success}
	if e.ErrorMessage != "" {
		details["error"] = e.ErrorMessage
	}
	return Record{
		OrgID:        e.OrgID,
		ActorID:      e.UserID,
		Action:       "login",
		ResourceType: "session",
		ClientIP:     e.ClientIP,
		Details:      details,
	}
}
