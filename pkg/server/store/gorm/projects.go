package gorm

import (
	"errors"

	"gorm.io/gorm"

	"github.com/vantagehq/vantage/pkg/model"
	"github.com/vantagehq/vantage/pkg/server/store"
)

// Ensure ProjectsStore implements store.ProjectsStore
var _ store.ProjectsStore = (*ProjectsStore)(nil)

// ProjectsStore implements store.ProjectsStore using GORM
type ProjectsStore struct {
	db *gorm.DB
}

// NewProjectsStore creates a new ProjectsStore
func NewProjectsStore(db *gorm.DB) *ProjectsStore {
	return &ProjectsStore{db: db}
}

// ListProjects returns the organization's projects, newest first.
func (s *ProjectsStore) ListProjects(orgID string, limit, offset int) ([]model.Project, error) {
	var projects []model.Project
	tx := s.db.Where("org_id = ?", orgID).Order("created_at desc").
		Limit(limit).Offset(offset).Find(&projects)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return projects, nil
}

// GetProject retrieves a project by ID within an organization.
func (s *ProjectsStore) GetProject(orgID, projectID string) (*model.Project, error) {
	var project model.Project
	tx := s.db.Where("org_id = ? AND id = ?", orgID, projectID).First(&project)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, store.ErrProjectNotFound
		}
		return nil, tx.Error
	}
	return &project, nil
}

// CreateProject creates a project.
func (s *ProjectsStore) CreateProject(project *model.Project) error {
	if err := s.db.Create(project).Error; err != nil {
		if isDuplicateKey(err) {
			return store.ErrProjectKeyTaken
		}
		return err
	}
	return nil
}

// UpdateProject saves changed project fields.
func (s *ProjectsStore) UpdateProject(project *model.Project) error {
	tx := s.db.Model(&model.Project{}).
		Where("org_id = ? AND id = ?", project.OrgID, project.ID).
		Updates(map[string]interface{}{
			"name":         project.Name,
			"description":  project.Description,
			"status":       project.Status,
			"budget_cents": project.BudgetCents,
			"start_date":   project.StartDate,
			"end_date":     project.EndDate,
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return store.ErrProjectNotFound
	}
	return nil
}

// DeleteProject deletes a project and its dependent rows.
func (s *ProjectsStore) DeleteProject(orgID, projectID string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("org_id = ? AND id = ?", orgID, projectID).Delete(&model.Project{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return store.ErrProjectNotFound
		}

		if err := tx.Where("org_id = ? AND project_id = ?", orgID, projectID).
			Delete(&model.BudgetChange{}).Error; err != nil {
			return err
		}
		return tx.Where("org_id = ? AND project_id = ?", orgID, projectID).
			Delete(&model.Report{}).Error
	})
}
