package endpoints

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"github.com/vantagehq/vantage/pkg/cache"
	"github.com/vantagehq/vantage/pkg/config"
	"github.com/vantagehq/vantage/pkg/model"
	"github.com/vantagehq/vantage/pkg/server"
	"github.com/vantagehq/vantage/pkg/server/middleware"
	"github.com/vantagehq/vantage/pkg/token"
)

const (
	testOrgID  = "11111111-1111-1111-1111-111111111111"
	testUserID = "33333333-3333-3333-3333-333333333333"
)

type testServer struct {
	srv *server.Server

	Orgs      *MockOrganizationsStore
	Users     *MockUsersStore
	Projects  *MockProjectsStore
	Changes   *MockChangesStore
	Audit     *MockAuditStore
	Features  *MockFeaturesStore
	Reports   *MockReportsStore
	Portfolio *MockPortfolioStore
	Health    *MockHealthStore
}

// newTestServer wires a server with mocked stores and real routing,
// middleware and cache.
func newTestServer(t *testing.T) *testServer {
	t.Helper()
	ts := newUnregisteredTestServer(t)
	RegisterAll(ts.srv)
	return ts
}

// newUnregisteredTestServer builds the harness without registering
// routes, so a test can adjust the server (e.g. attach an assist
// client) first.
func newUnregisteredTestServer(t *testing.T) *testServer {
	t.Helper()
	t.Setenv(token.KeyEnvVar, "test-signing-key")

	ts := &testServer{
		Orgs:      &MockOrganizationsStore{},
		Users:     &MockUsersStore{},
		Projects:  &MockProjectsStore{},
		Changes:   &MockChangesStore{},
		Audit:     &MockAuditStore{},
		Features:  &MockFeaturesStore{},
		Reports:   &MockReportsStore{},
		Portfolio: &MockPortfolioStore{},
		Health:    &MockHealthStore{},
	}

	memCache := cache.NewMemory()
	t.Cleanup(func() { _ = memCache.Close() })

	ts.srv = &server.Server{
		Router: mux.NewRouter().UseEncodedPath(),
		Config: config.Get(),
		Cache:  memCache,

		Organizations: ts.Orgs,
		Users:         ts.Users,
		Projects:      ts.Projects,
		Changes:       ts.Changes,
		Audit:         ts.Audit,
		Features:      ts.Features,
		Reports:       ts.Reports,
		Portfolio:     ts.Portfolio,
		Health:        ts.Health,

		JWTMiddleware: middleware.NewJWTAuthenticator(ts.Users),
	}
	return ts
}

// tokenFor issues a token and primes the membership lookup for the role.
func (ts *testServer) tokenFor(t *testing.T, role string) string {
	t.Helper()
	signed, _, err := token.Issue(testUserID, testOrgID, "alice@example.com", time.Hour)
	require.NoError(t, err)

	ts.Users.On("GetMembership", testOrgID, testUserID).
		Return(&model.OrgMember{OrgID: testOrgID, UserID: testUserID, Role: role}, nil)
	return signed
}

func (ts *testServer) request(t *testing.T, method, path, bearer string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	ts.srv.Router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dst),
		"body: %s", rec.Body.String())
}
