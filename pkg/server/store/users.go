package store

import (
	"errors"

	"github.com/vantagehq/vantage/pkg/model"
)

// ErrUserNotFound is returned when a user doesn't exist
var ErrUserNotFound = errors.New("user not found")

// ErrUserExists is returned when a user email is already taken
var ErrUserExists = errors.New("user already exists")

// ErrNotMember is returned when a user has no membership in an organization
var ErrNotMember = errors.New("user is not a member of the organization")

// UsersStore abstracts user and membership storage operations
type UsersStore interface {
	// GetUserByEmail retrieves a user by email.
	// Returns ErrUserNotFound if the user doesn't exist.
	GetUserByEmail(email string) (*model.User, error)

	// GetUser retrieves a user by ID.
	GetUser(userID string) (*model.User, error)

	// CreateUser creates a user and their membership in an organization.
	// Returns ErrUserExists if the email is taken.
	CreateUser(email, displayName, passwordDigest, orgID, role string) (*model.User, error)

	// UpdatePassword replaces a user's password digest.
	UpdatePassword(email, passwordDigest string) error

	// GetMembership returns the user's membership in an organization.
	// Returns ErrNotMember if there is none.
	GetMembership(orgID, userID string) (*model.OrgMember, error)
}
