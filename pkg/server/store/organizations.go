package store

import (
	"errors"

	"github.com/vantagehq/vantage/pkg/model"
)

// ErrOrgNotFound is returned when an organization doesn't exist
var ErrOrgNotFound = errors.New("organization not found")

// ErrOrgExists is returned when an organization slug is already taken
var ErrOrgExists = errors.New("organization already exists")

// OrganizationsStore abstracts organization storage operations
type OrganizationsStore interface {
	// ListOrganizations returns all organizations
	ListOrganizations() ([]model.Organization, error)

	// GetOrganization retrieves an organization by ID.
	// Returns ErrOrgNotFound if it doesn't exist.
	GetOrganization(orgID string) (*model.Organization, error)

	// GetOrganizationBySlug retrieves an organization by slug.
	// Returns ErrOrgNotFound if it doesn't exist.
	GetOrganizationBySlug(slug string) (*model.Organization, error)

	// CreateOrganization creates a new organization.
	// Returns ErrOrgExists if the slug is taken.
	CreateOrganization(slug, name string) (*model.Organization, error)

	// DeleteOrganization deletes an organization and all its associated data
	DeleteOrganization(slug string) error
}
