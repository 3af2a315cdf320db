package store

import "github.com/vantagehq/vantage/pkg/model"

// FeaturesStore abstracts feature toggle storage operations
type FeaturesStore interface {
	// ListToggles returns an organization's toggles, sorted by name.
	ListToggles(orgID string) ([]model.FeatureToggle, error)

	// SetToggle sets or updates a toggle.
	SetToggle(toggle *model.FeatureToggle) error
}
