package gorm

import (
	"errors"

	"gorm.io/gorm"

	"github.com/vantagehq/vantage/pkg/model"
	"github.com/vantagehq/vantage/pkg/server/store"
)

// Ensure UsersStore implements store.UsersStore
var _ store.UsersStore = (*UsersStore)(nil)

// UsersStore implements store.UsersStore using GORM
type UsersStore struct {
	db *gorm.DB
}

// NewUsersStore creates a new UsersStore
func NewUsersStore(db *gorm.DB) *UsersStore {
	return &UsersStore{db: db}
}

// GetUserByEmail retrieves a user by email.
func (s *UsersStore) GetUserByEmail(email string) (*model.User, error) {
	var user model.User
	tx := s.db.Where("email = ?", email).First(&user)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, store.ErrUserNotFound
		}
		return nil, tx.Error
	}
	return &user, nil
}

// GetUser retrieves a user by ID.
func (s *UsersStore) GetUser(userID string) (*model.User, error) {
	var user model.User
	tx := s.db.Where("id = ?", userID).First(&user)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, store.ErrUserNotFound
		}
		return nil, tx.Error
	}
	return &user, nil
}

// CreateUser creates a user and their membership in an organization.
func (s *UsersStore) CreateUser(email, displayName, passwordDigest, orgID, role string) (*model.User, error) {
	user := model.User{
		Email:          email,
		DisplayName:    displayName,
		PasswordDigest: passwordDigest,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			if isDuplicateKey(err) {
				return store.ErrUserExists
			}
			return err
		}
		return tx.Create(&model.OrgMember{
			OrgID:  orgID,
			UserID: user.ID,
			Role:   role,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdatePassword replaces a user's password digest.
func (s *UsersStore) UpdatePassword(email, passwordDigest string) error {
	tx := s.db.Model(&model.User{}).Where("email = ?", email).
		Update("password_digest", passwordDigest)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return store.ErrUserNotFound
	}
	return nil
}

// GetMembership returns the user's membership in an organization.
func (s *UsersStore) GetMembership(orgID, userID string) (*model.OrgMember, error) {
	var member model.OrgMember
	tx := s.db.Where("org_id = ? AND user_id = ?", orgID, userID).First(&member)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, store.ErrNotMember
		}
		return nil, tx.Error
	}
	return &member, nil
}
