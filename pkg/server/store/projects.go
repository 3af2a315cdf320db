package store

import (
	"errors"

	"github.com/vantagehq/vantage/pkg/model"
)

// ErrProjectNotFound is returned when a project doesn't exist in the caller's organization
var ErrProjectNotFound = errors.New("project not found")

// ErrProjectKeyTaken is returned when a project key is already used in the organization
var ErrProjectKeyTaken = errors.New("project key already taken")

// ProjectsStore abstracts project storage operations
type ProjectsStore interface {
	// ListProjects returns the organization's projects, newest first.
	ListProjects(orgID string, limit, offset int) ([]model.Project, error)

	// GetProject retrieves a project by ID within an organization.
	// Returns ErrProjectNotFound if it doesn't exist there.
	GetProject(orgID, projectID string) (*model.Project, error)

	// CreateProject creates a project.
	// Returns ErrProjectKeyTaken if the (org, key) pair exists.
	CreateProject(project *model.Project) error

	// UpdateProject saves changed project fields.
	// Returns ErrProjectNotFound if the project isn't in the organization.
	UpdateProject(project *model.Project) error

	// DeleteProject deletes a project and its dependent rows.
	// Returns ErrProjectNotFound if the project isn't in the organization.
	DeleteProject(orgID, projectID string) error
}
