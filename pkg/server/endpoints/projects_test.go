package endpoints

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vantagehq/vantage/pkg/model"
	"github.com/vantagehq/vantage/pkg/server/store"
)

func TestListProjects(t *testing.T) {
	ts := newTestServer(t)
	bearer := ts.tokenFor(t, model.RoleViewer)

	ts.Projects.On("ListProjects", testOrgID, 100, 0).Return([]model.Project{
		{ID: "p1", Key: "PLAT", Name: "Platform", Status: model.StatusActive, BudgetCents: 100000},
		{ID: "p2", Key: "INFRA", Name: "Infra", Status: model.StatusProposed},
	}, nil)

	rec := ts.request(t, http.MethodGet, "/api/v1/projects", bearer, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp []ProjectResponse
	decodeBody(t, rec, &resp)
	require.Len(t, resp, 2)
	assert.Equal(t, "PLAT", resp[0].Key)
	assert.Equal(t, "active", resp[0].Status)
}

func TestCreateProject(t *testing.T) {
	ts := newTestServer(t)
	bearer := ts.tokenFor(t, model.RoleManager)

	ts.Projects.On("CreateProject", mock.AnythingOfType("*model.Project")).
		Run(func(args mock.Arguments) {
			args.Get(0).(*model.Project).ID = "p-new"
		}).Return(nil)

	rec := ts.request(t, http.MethodPost, "/api/v1/projects", bearer, CreateProjectRequest{
		Key:         "PLAT",
		Name:        "Platform Rebuild",
		BudgetCents: 1200000,
		StartDate:   "2026-01-01",
		EndDate:     "2026-12-31",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp ProjectResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, "p-new", resp.ID)
	assert.Equal(t, "proposed", resp.Status)
	assert.Equal(t, "2026-01-01", resp.StartDate)
}

func TestCreateProjectRequiresManager(t *testing.T) {
	ts := newTestServer(t)
	bearer := ts.tokenFor(t, model.RoleViewer)

	rec := ts.request(t, http.MethodPost, "/api/v1/projects", bearer, CreateProjectRequest{
		Key: "PLAT", Name: "Platform",
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	ts.Projects.AssertNotCalled(t, "CreateProject", mock.Anything)
}

func TestCreateProjectDuplicateKey(t *testing.T) {
	ts := newTestServer(t)
	bearer := ts.tokenFor(t, model.RoleManager)

	ts.Projects.On("CreateProject", mock.AnythingOfType("*model.Project")).
		Return(store.ErrProjectKeyTaken)

	rec := ts.request(t, http.MethodPost, "/api/v1/projects", bearer, CreateProjectRequest{
		Key: "PLAT", Name: "Platform",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCreateProjectValidation(t *testing.T) {
	ts := newTestServer(t)
	bearer := ts.tokenFor(t, model.RoleManager)

	tests := []struct {
		name string
		req  CreateProjectRequest
	}{
		{"missing key", CreateProjectRequest{Name: "Platform"}},
		{"missing name", CreateProjectRequest{Key: "PLAT"}},
		{"negative budget", CreateProjectRequest{Key: "PLAT", Name: "P", BudgetCents: -1}},
		{"bad start date", CreateProjectRequest{Key: "PLAT", Name: "P", StartDate: "Jan 1"}},
		{"range inverted", CreateProjectRequest{Key: "PLAT", Name: "P", StartDate: "2026-06-01", EndDate: "2026-01-01"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := ts.request(t, http.MethodPost, "/api/v1/projects", bearer, tt.req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestGetProjectNotFound(t *testing.T) {
	ts := newTestServer(t)
	bearer := ts.tokenFor(t, model.RoleViewer)

	// A project in another org answers exactly like a missing one.
	ts.Projects.On("GetProject", testOrgID, "foreign-id").
		Return(nil, store.ErrProjectNotFound)

	rec := ts.request(t, http.MethodGet, "/api/v1/projects/foreign-id", bearer, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateProjectStatusTransition(t *testing.T) {
	ts := newTestServer(t)
	bearer := ts.tokenFor(t, model.RoleManager)

	ts.Projects.On("GetProject", testOrgID, "p1").Return(&model.Project{
		ID: "p1", OrgID: testOrgID, Key: "PLAT", Name: "Platform", Status: model.StatusProposed,
	}, nil)
	ts.Projects.On("UpdateProject", mock.AnythingOfType("*model.Project")).Return(nil)

	status := "active"
	rec := ts.request(t, http.MethodPut, "/api/v1/projects/p1", bearer, UpdateProjectRequest{
		Status: &status,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp ProjectResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, "active", resp.Status)
}

func TestUpdateProjectInvalidTransition(t *testing.T) {
	ts := newTestServer(t)
	bearer := ts.tokenFor(t, model.RoleManager)

	ts.Projects.On("GetProject", testOrgID, "p1").Return(&model.Project{
		ID: "p1", OrgID: testOrgID, Key: "PLAT", Name: "Platform", Status: model.StatusCompleted,
	}, nil)

	status := "active"
	rec := ts.request(t, http.MethodPut, "/api/v1/projects/p1", bearer, UpdateProjectRequest{
		Status: &status,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	ts.Projects.AssertNotCalled(t, "UpdateProject", mock.Anything)
}

func TestDeleteProject(t *testing.T) {
	ts := newTestServer(t)
	bearer := ts.tokenFor(t, model.RoleManager)

	ts.Projects.On("DeleteProject", testOrgID, "p1").Return(nil)

	rec := ts.request(t, http.MethodDelete, "/api/v1/projects/p1", bearer, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestProjectsRequireAuth(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.request(t, http.MethodGet, "/api/v1/projects", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
