package audit

import "fmt"

// FeatureEvent represents a feature toggle change audit event
type FeatureEvent struct {
	OrgID    string
	UserID   string
	ClientIP string
	Feature  string
	Enabled  bool
}

func (e FeatureEvent) MessageID() string {
	return "feature"
}

func (e FeatureEvent) Message() string {
	state := "disabled"
	if e.Enabled {
		state = "enabled"
	}
	return fmt.Sprintf("%s %s feature %s", e.UserID, state, e.Feature)
}

func (e FeatureEvent) Severity() Severity {
	return SeverityNotice
}

func (e FeatureEvent) Facility() int {
	return FacilityUser
}

func (e FeatureEvent) StructuredData() map[string]map[string]string {
	return map[string]map[string]string{
		SDIDAuth: {
			"user": e.UserID,
		},
		SDIDSubject: {
			"feature": e.Feature,
			"enabled": fmt.Sprintf("%t", e.Enabled),
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
		SDIDAction: {
			"operation": "toggle",
			"result":    "success",
		},
	}
}

func (e FeatureEvent) Record() Record {
	return Record{
		OrgID:        e.OrgID,
		ActorID:      e.UserID,
		Action:       "feature.toggle",
		ResourceType: "feature_toggle",
		ResourceID:   e.Feature,
		ClientIP:     e.ClientIP,
		Details:      map[string]any{"enabled": e.Enabled},
	}
}
