package endpoints

import (
	"github.com/stretchr/testify/mock"

	"github.com/vantagehq/vantage/pkg/anomaly"
	"github.com/vantagehq/vantage/pkg/audit"
	"github.com/vantagehq/vantage/pkg/model"
	"github.com/vantagehq/vantage/pkg/server/store"
)

// MockProjectsStore implements store.ProjectsStore for testing using testify/mock
type MockProjectsStore struct {
	mock.Mock
}

func (m *MockProjectsStore) ListProjects(orgID string, limit, offset int) ([]model.Project, error) {
	args := m.Called(orgID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Project), args.Error(1)
}

func (m *MockProjectsStore) GetProject(orgID, projectID string) (*model.Project, error) {
	args := m.Called(orgID, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectsStore) CreateProject(project *model.Project) error {
	args := m.Called(project)
	return args.Error(0)
}

func (m *MockProjectsStore) UpdateProject(project *model.Project) error {
	args := m.Called(project)
	return args.Error(0)
}

func (m *MockProjectsStore) DeleteProject(orgID, projectID string) error {
	args := m.Called(orgID, projectID)
	return args.Error(0)
}

// MockChangesStore implements store.ChangesStore for testing using testify/mock
type MockChangesStore struct {
	mock.Mock
}

func (m *MockChangesStore) ListChanges(orgID, projectID string, limit, offset int) ([]model.BudgetChange, error) {
	args := m.Called(orgID, projectID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.BudgetChange), args.Error(1)
}

func (m *MockChangesStore) ListChangesForPeriod(orgID, projectID, period string) ([]model.BudgetChange, error) {
	args := m.Called(orgID, projectID, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.BudgetChange), args.Error(1)
}

func (m *MockChangesStore) CreateChange(change *model.BudgetChange) error {
	args := m.Called(change)
	return args.Error(0)
}

func (m *MockChangesStore) SpendCents(orgID, projectID string) (int64, error) {
	args := m.Called(orgID, projectID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockChangesStore) MonthlySpend(orgID, projectID string) ([]anomaly.MonthlySpend, error) {
	args := m.Called(orgID, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]anomaly.MonthlySpend), args.Error(1)
}

// MockAuditStore implements store.AuditStore for testing using testify/mock
type MockAuditStore struct {
	mock.Mock
}

func (m *MockAuditStore) Append(rec audit.Record) error {
	args := m.Called(rec)
	return args.Error(0)
}

func (m *MockAuditStore) ListLogs(orgID string, filter store.AuditFilter) ([]model.AuditLog, error) {
	args := m.Called(orgID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.AuditLog), args.Error(1)
}

func (m *MockAuditStore) VerifyChain(orgID string) (audit.VerifyResult, error) {
	args := m.Called(orgID)
	return args.Get(0).(audit.VerifyResult), args.Error(1)
}

func (m *MockAuditStore) CountSince(orgID string, days int) (int64, error) {
	args := m.Called(orgID, days)
	return args.Get(0).(int64), args.Error(1)
}

// MockFeaturesStore implements store.FeaturesStore for testing using testify/mock
type MockFeaturesStore struct {
	mock.Mock
}

func (m *MockFeaturesStore) ListToggles(orgID string) ([]model.FeatureToggle, error) {
	args := m.Called(orgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FeatureToggle), args.Error(1)
}

func (m *MockFeaturesStore) SetToggle(toggle *model.FeatureToggle) error {
	args := m.Called(toggle)
	return args.Error(0)
}

// MockReportsStore implements store.ReportsStore for testing using testify/mock
type MockReportsStore struct {
	mock.Mock
}

func (m *MockReportsStore) UpsertReport(report *model.Report) error {
	args := m.Called(report)
	return args.Error(0)
}

func (m *MockReportsStore) GetReport(orgID, projectID, period string) (*model.Report, error) {
	args := m.Called(orgID, projectID, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Report), args.Error(1)
}

// MockPortfolioStore implements store.PortfolioStore for testing using testify/mock
type MockPortfolioStore struct {
	mock.Mock
}

func (m *MockPortfolioStore) CountProjectsByStatus(orgID string) (map[string]int64, error) {
	args := m.Called(orgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int64), args.Error(1)
}

func (m *MockPortfolioStore) TotalBudgetCents(orgID string) (int64, error) {
	args := m.Called(orgID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPortfolioStore) TotalSpendCents(orgID string) (int64, error) {
	args := m.Called(orgID)
	return args.Get(0).(int64), args.Error(1)
}

// MockUsersStore implements store.UsersStore for testing using testify/mock
type MockUsersStore struct {
	mock.Mock
}

func (m *MockUsersStore) GetUserByEmail(email string) (*model.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUsersStore) GetUser(userID string) (*model.User, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUsersStore) CreateUser(email, displayName, passwordDigest, orgID, role string) (*model.User, error) {
	args := m.Called(email, displayName, passwordDigest, orgID, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUsersStore) UpdatePassword(email, passwordDigest string) error {
	args := m.Called(email, passwordDigest)
	return args.Error(0)
}

func (m *MockUsersStore) GetMembership(orgID, userID string) (*model.OrgMember, error) {
	args := m.Called(orgID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OrgMember), args.Error(1)
}

// MockOrganizationsStore implements store.OrganizationsStore for testing using testify/mock
type MockOrganizationsStore struct {
	mock.Mock
}

func (m *MockOrganizationsStore) ListOrganizations() ([]model.Organization, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Organization), args.Error(1)
}

func (m *MockOrganizationsStore) GetOrganization(orgID string) (*model.Organization, error) {
	args := m.Called(orgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Organization), args.Error(1)
}

func (m *MockOrganizationsStore) GetOrganizationBySlug(slug string) (*model.Organization, error) {
	args := m.Called(slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Organization), args.Error(1)
}

func (m *MockOrganizationsStore) CreateOrganization(slug, name string) (*model.Organization, error) {
	args := m.Called(slug, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Organization), args.Error(1)
}

func (m *MockOrganizationsStore) DeleteOrganization(slug string) error {
	args := m.Called(slug)
	return args.Error(0)
}

// MockHealthStore implements store.HealthStore for testing using testify/mock
type MockHealthStore struct {
	mock.Mock
}

func (m *MockHealthStore) CheckConnectivity() error {
	args := m.Called()
	return args.Error(0)
}
