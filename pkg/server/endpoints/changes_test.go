package endpoints

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vantagehq/vantage/pkg/model"
	"github.com/vantagehq/vantage/pkg/server/store"
)

func TestListChanges(t *testing.T) {
	ts := newTestServer(t)
	bearer := ts.tokenFor(t, model.RoleViewer)

	entry := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)
	ts.Projects.On("GetProject", testOrgID, "p-1").Return(&model.Project{
		ID:          "p-1",
		OrgID:       testOrgID,
		BudgetCents: 1000000,
	}, nil)
	ts.Changes.On("ListChanges", testOrgID, "p-1", 100, 0).Return([]model.BudgetChange{
		{ID: "c-2", ProjectID: "p-1", AmountCents: 250000, Category: "staffing", EntryDate: entry},
		{ID: "c-1", ProjectID: "p-1", AmountCents: 100000, Memo: "licenses", EntryDate: entry.AddDate(0, -1, 0)},
	}, nil)
	ts.Changes.On("SpendCents", testOrgID, "p-1").Return(int64(350000), nil)

	rec := ts.request(t, http.MethodGet, "/api/v1/projects/p-1/changes", bearer, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp ChangesListResponse
	decodeBody(t, rec, &resp)
	require.Len(t, resp.Changes, 2)
	assert.Equal(t, "c-2", resp.Changes[0].ID)
	assert.Equal(t, "2026-03-05", resp.Changes[0].EntryDate)
	assert.Equal(t, int64(350000), resp.SpendCents)
	assert.Equal(t, int64(1000000), resp.BudgetCents)
	assert.Equal(t, int64(650000), resp.RemainingCents)
	assert.False(t, resp.OverBudget)
}

func TestListChangesOverBudget(t *testing.T) {
	ts := newTestServer(t)
	bearer := ts.tokenFor(t, model.RoleViewer)

	ts.Projects.On("GetProject", testOrgID, "p-1").Return(&model.Project{
		ID:          "p-1",
		OrgID:       testOrgID,
		BudgetCents: 100000,
	}, nil)
	ts.Changes.On("ListChanges", testOrgID, "p-1", 100, 0).Return([]model.BudgetChange{}, nil)
	ts.Changes.On("SpendCents", testOrgID, "p-1").Return(int64(130000), nil)

	rec := ts.request(t, http.MethodGet, "/api/v1/projects/p-1/changes", bearer, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ChangesListResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, int64(-30000), resp.RemainingCents)
	assert.True(t, resp.OverBudget)
}

func TestCreateChange(t *testing.T) {
	ts := newTestServer(t)
	bearer := ts.tokenFor(t, model.RoleManager)

	ts.Projects.On("GetProject", testOrgID, "p-1").Return(&model.Project{ID: "p-1", OrgID: testOrgID}, nil)
	ts.Changes.On("CreateChange", mock.AnythingOfType("*model.BudgetChange")).
		Run(func(args mock.Arguments) {
			change := args.Get(0).(*model.BudgetChange)
			assert.Equal(t, testOrgID, change.OrgID)
			assert.Equal(t, testUserID, change.CreatedBy)
			assert.Equal(t, "2026-03-05", change.EntryDate.Format("2006-01-02"))
			change.ID = "c-new"
		}).Return(nil)

	rec := ts.request(t, http.MethodPost, "/api/v1/projects/p-1/changes", bearer, CreateChangeRequest{
		AmountCents: 45000,
		Category:    "contractors",
		Memo:        "march invoice",
		EntryDate:   "2026-03-05",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp ChangeResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, "c-new", resp.ID)
	assert.Equal(t, int64(45000), resp.AmountCents)
	assert.Equal(t, "contractors", resp.Category)
}

func TestCreateChangeDefaultsEntryDate(t *testing.T) {
	ts := newTestServer(t)
	bearer := ts.tokenFor(t, model.RoleManager)

	ts.Projects.On("GetProject", testOrgID, "p-1").Return(&model.Project{ID: "p-1", OrgID: testOrgID}, nil)
	ts.Changes.On("CreateChange", mock.MatchedBy(func(c *model.BudgetChange) bool {
		return c.EntryDate.Format("2006-01-02") == time.Now().UTC().Format("2006-01-02")
	})).Return(nil)

	rec := ts.request(t, http.MethodPost, "/api/v1/projects/p-1/changes", bearer, CreateChangeRequest{
		AmountCents: -20000,
		Memo:        "credit note",
	})
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestCreateChangeRequiresManager(t *testing.T) {
	ts := newTestServer(t)
	bearer := ts.tokenFor(t, model.RoleViewer)

	rec := ts.request(t, http.MethodPost, "/api/v1/projects/p-1/changes", bearer, CreateChangeRequest{AmountCents: 100})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	ts.Changes.AssertNotCalled(t, "CreateChange", mock.Anything)
}

func TestCreateChangeValidation(t *testing.T) {
	ts := newTestServer(t)
	bearer := ts.tokenFor(t, model.RoleManager)

	ts.Projects.On("GetProject", testOrgID, "p-1").Return(&model.Project{ID: "p-1", OrgID: testOrgID}, nil)

	tests := []struct {
		name string
		req  CreateChangeRequest
	}{
		{"zero amount", CreateChangeRequest{AmountCents: 0}},
		{"bad entry date", CreateChangeRequest{AmountCents: 100, EntryDate: "03/05/2026"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := ts.request(t, http.MethodPost, "/api/v1/projects/p-1/changes", bearer, tt.req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestCreateChangeProjectNotFound(t *testing.T) {
	ts := newTestServer(t)
	bearer := ts.tokenFor(t, model.RoleManager)

	ts.Projects.On("GetProject", testOrgID, "missing").Return(nil, store.ErrProjectNotFound)

	rec := ts.request(t, http.MethodPost, "/api/v1/projects/missing/changes", bearer, CreateChangeRequest{AmountCents: 100})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
