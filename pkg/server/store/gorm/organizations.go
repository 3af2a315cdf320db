package gorm

import (
	"errors"

	"gorm.io/gorm"

	"github.com/vantagehq/vantage/pkg/model"
	"github.com/vantagehq/vantage/pkg/server/store"
)

// Ensure OrganizationsStore implements store.OrganizationsStore
var _ store.OrganizationsStore = (*OrganizationsStore)(nil)

// OrganizationsStore implements store.OrganizationsStore using GORM
type OrganizationsStore struct {
	db *gorm.DB
}

// NewOrganizationsStore creates a new OrganizationsStore
func NewOrganizationsStore(db *gorm.DB) *OrganizationsStore {
	return &OrganizationsStore{db: db}
}

// ListOrganizations returns all organizations
func (s *OrganizationsStore) ListOrganizations() ([]model.Organization, error) {
	var orgs []model.Organization
	if err := s.db.Order("slug").Find(&orgs).Error; err != nil {
		return nil, err
	}
	return orgs, nil
}

// GetOrganization retrieves an organization by ID.
func (s *OrganizationsStore) GetOrganization(orgID string) (*model.Organization, error) {
	var org model.Organization
	tx := s.db.Where("id = ?", orgID).First(&org)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, store.ErrOrgNotFound
		}
		return nil, tx.Error
	}
	return &org, nil
}

// GetOrganizationBySlug retrieves an organization by slug.
func (s *OrganizationsStore) GetOrganizationBySlug(slug string) (*model.Organization, error) {
	var org model.Organization
	tx := s.db.Where("slug = ?", slug).First(&org)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, store.ErrOrgNotFound
		}
		return nil, tx.Error
	}
	return &org, nil
}

// CreateOrganization creates a new organization.
func (s *OrganizationsStore) CreateOrganization(slug, name string) (*model.Organization, error) {
	org := model.Organization{Slug: slug, Name: name, Settings: "{}"}
	if err := s.db.Create(&org).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, store.ErrOrgExists
		}
		return nil, err
	}
	return &org, nil
}

// DeleteOrganization deletes an organization and all its associated data
func (s *OrganizationsStore) DeleteOrganization(slug string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var org model.Organization
		if err := tx.Where("slug = ?", slug).First(&org).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return store.ErrOrgNotFound
			}
			return err
		}

		for _, table := range []string{
			"reports", "feature_toggles", "audit_logs",
			"budget_changes", "projects", "org_members",
		} {
			if err := tx.Exec(`DELETE FROM `+table+` WHERE org_id = ?`, org.ID).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&org).Error
	})
}
