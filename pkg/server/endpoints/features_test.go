package endpoints

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vantagehq/vantage/pkg/model"
)

func TestListFeaturesCached(t *testing.T) {
	ts := newTestServer(t)
	bearer := ts.tokenFor(t, model.RoleViewer)

	ts.Features.On("ListToggles", testOrgID).Return([]model.FeatureToggle{
		{OrgID: testOrgID, Name: "monte_carlo", Enabled: true},
		{OrgID: testOrgID, Name: "assist_chat", Enabled: false},
	}, nil).Once()

	for i := 0; i < 3; i++ {
		rec := ts.request(t, http.MethodGet, "/api/features", bearer, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp map[string]bool
		decodeBody(t, rec, &resp)
		assert.Equal(t, map[string]bool{"monte_carlo": true, "assist_chat": false}, resp)
	}

	// Second and third hits must come from the cache.
	ts.Features.AssertNumberOfCalls(t, "ListToggles", 1)
}

func TestSetFeatureInvalidatesCache(t *testing.T) {
	ts := newTestServer(t)
	bearer := ts.tokenFor(t, model.RoleAdmin)

	ts.Features.On("ListToggles", testOrgID).Return([]model.FeatureToggle{
		{OrgID: testOrgID, Name: "monte_carlo", Enabled: false},
	}, nil).Once()
	rec := ts.request(t, http.MethodGet, "/api/features", bearer, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	ts.Features.On("SetToggle", mock.MatchedBy(func(tg *model.FeatureToggle) bool {
		return tg.Name == "monte_carlo" && tg.Enabled && tg.UpdatedBy == testUserID
	})).Return(nil)
	rec = ts.request(t, http.MethodPut, "/api/features/monte_carlo", bearer, SetFeatureRequest{Enabled: true})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	ts.Features.On("ListToggles", testOrgID).Return([]model.FeatureToggle{
		{OrgID: testOrgID, Name: "monte_carlo", Enabled: true},
	}, nil).Once()
	rec = ts.request(t, http.MethodGet, "/api/features", bearer, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]bool
	decodeBody(t, rec, &resp)
	assert.True(t, resp["monte_carlo"])
	ts.Features.AssertNumberOfCalls(t, "ListToggles", 2)
}

func TestSetFeatureRequiresAdmin(t *testing.T) {
	ts := newTestServer(t)
	bearer := ts.tokenFor(t, model.RoleManager)

	rec := ts.request(t, http.MethodPut, "/api/features/monte_carlo", bearer, SetFeatureRequest{Enabled: true})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	ts.Features.AssertNotCalled(t, "SetToggle", mock.Anything)
}
