package endpoints

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vantagehq/vantage/pkg/anomaly"
	"github.com/vantagehq/vantage/pkg/model"
	"github.com/vantagehq/vantage/pkg/server/store"
)

func TestAnomalies(t *testing.T) {
	ts := newTestServer(t)
	bearer := ts.tokenFor(t, model.RoleViewer)

	ts.Projects.On("GetProject", testOrgID, "p-1").Return(&model.Project{ID: "p-1", OrgID: testOrgID}, nil)
	ts.Changes.On("MonthlySpend", testOrgID, "p-1").Return([]anomaly.MonthlySpend{
		{Month: "2026-01", AmountCents: 1000},
		{Month: "2026-02", AmountCents: 1100},
		{Month: "2026-03", AmountCents: 900},
		{Month: "2026-04", AmountCents: 1050},
		{Month: "2026-05", AmountCents: 9000},
	}, nil)

	rec := ts.request(t, http.MethodGet, "/api/v1/projects/p-1/anomalies?threshold=1.5", bearer, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp AnomaliesResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, 1.5, resp.Threshold)
	require.Len(t, resp.Anomalies, 1)
	assert.Equal(t, "2026-05", resp.Anomalies[0].Month)
	assert.Equal(t, "high", resp.Anomalies[0].Direction)
}

func TestAnomaliesNoOutliers(t *testing.T) {
	ts := newTestServer(t)
	bearer := ts.tokenFor(t, model.RoleViewer)

	ts.Projects.On("GetProject", testOrgID, "p-1").Return(&model.Project{ID: "p-1", OrgID: testOrgID}, nil)
	ts.Changes.On("MonthlySpend", testOrgID, "p-1").Return([]anomaly.MonthlySpend{
		{Month: "2026-01", AmountCents: 1000},
	}, nil)

	rec := ts.request(t, http.MethodGet, "/api/v1/projects/p-1/anomalies", bearer, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp AnomaliesResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, anomaly.DefaultThreshold, resp.Threshold)
	// Serializes as [] rather than null even when nothing is flagged.
	assert.NotNil(t, resp.Anomalies)
	assert.Empty(t, resp.Anomalies)
}

func TestAnomaliesBadThreshold(t *testing.T) {
	ts := newTestServer(t)
	bearer := ts.tokenFor(t, model.RoleViewer)

	ts.Projects.On("GetProject", testOrgID, "p-1").Return(&model.Project{ID: "p-1", OrgID: testOrgID}, nil)

	for _, raw := range []string{"abc", "0", "-2"} {
		rec := ts.request(t, http.MethodGet, "/api/v1/projects/p-1/anomalies?threshold="+raw, bearer, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "threshold=%s", raw)
	}
}

func TestAnomaliesProjectNotFound(t *testing.T) {
	ts := newTestServer(t)
	bearer := ts.tokenFor(t, model.RoleViewer)

	ts.Projects.On("GetProject", testOrgID, "missing").Return(nil, store.ErrProjectNotFound)

	rec := ts.request(t, http.MethodGet, "/api/v1/projects/missing/anomalies", bearer, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
