package endpoints

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/vantagehq/vantage/pkg/audit"
	"github.com/vantagehq/vantage/pkg/model"
	"github.com/vantagehq/vantage/pkg/server/store"
	"github.com/vantagehq/vantage/pkg/token"
)

func digestFor(t *testing.T, password string) string {
	t.Helper()
	digest, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(digest)
}

func TestLogin(t *testing.T) {
	ts := newTestServer(t)

	ts.Orgs.On("GetOrganizationBySlug", "acme").
		Return(&model.Organization{ID: testOrgID, Slug: "acme"}, nil)
	ts.Users.On("GetUserByEmail", "alice@example.com").Return(&model.User{
		ID:             testUserID,
		Email:          "alice@example.com",
		PasswordDigest: digestFor(t, "s3cret"),
	}, nil)
	ts.Users.On("GetMembership", testOrgID, testUserID).
		Return(&model.OrgMember{OrgID: testOrgID, UserID: testUserID, Role: model.RoleAdmin}, nil)

	rec := ts.request(t, http.MethodPost, "/authn/login", "", LoginRequest{
		Email:    "alice@example.com",
		Password: "s3cret",
		OrgSlug:  "acme",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp LoginResponse
	decodeBody(t, rec, &resp)
	require.NotEmpty(t, resp.Token)

	claims, err := token.Parse(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, testUserID, claims.Subject)
	assert.Equal(t, testOrgID, claims.OrgID)
}

func TestLoginBadPassword(t *testing.T) {
	ts := newTestServer(t)

	ts.Orgs.On("GetOrganizationBySlug", "acme").
		Return(&model.Organization{ID: testOrgID, Slug: "acme"}, nil)
	ts.Users.On("GetUserByEmail", "alice@example.com").Return(&model.User{
		ID:             testUserID,
		Email:          "alice@example.com",
		PasswordDigest: digestFor(t, "s3cret"),
	}, nil)

	rec := ts.request(t, http.MethodPost, "/authn/login", "", LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong",
		OrgSlug:  "acme",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginUnknownUser(t *testing.T) {
	ts := newTestServer(t)

	ts.Orgs.On("GetOrganizationBySlug", "acme").
		Return(&model.Organization{ID: testOrgID, Slug: "acme"}, nil)
	ts.Users.On("GetUserByEmail", "ghost@example.com").
		Return(nil, store.ErrUserNotFound)

	rec := ts.request(t, http.MethodPost, "/authn/login", "", LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever",
		OrgSlug:  "acme",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginUnknownOrg(t *testing.T) {
	ts := newTestServer(t)

	ts.Orgs.On("GetOrganizationBySlug", "nope").
		Return(nil, store.ErrOrgNotFound)

	rec := ts.request(t, http.MethodPost, "/authn/login", "", LoginRequest{
		Email:    "alice@example.com",
		Password: "s3cret",
		OrgSlug:  "nope",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginMissingFields(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.request(t, http.MethodPost, "/authn/login", "", LoginRequest{Email: "alice@example.com"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWhoami(t *testing.T) {
	ts := newTestServer(t)
	bearer := ts.tokenFor(t, model.RoleManager)

	rec := ts.request(t, http.MethodGet, "/whoami", bearer, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp WhoamiResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, testUserID, resp.UserID)
	assert.Equal(t, testOrgID, resp.OrgID)
	assert.Equal(t, model.RoleManager, resp.Role)
}

type capturePersister struct {
	records []audit.Record
}

func (c *capturePersister) Append(rec audit.Record) error {
	c.records = append(c.records, rec)
	return nil
}

func TestLoginFailureAuditAttribution(t *testing.T) {
	ts := newTestServer(t)

	captured := &capturePersister{}
	audit.SetPersister(captured)
	t.Cleanup(func() { audit.SetPersister(nil) })

	// Unknown org: no organization to attribute, chains under the
	// sentinel org with no actor.
	ts.Orgs.On("GetOrganizationBySlug", "nope").
		Return(nil, store.ErrOrgNotFound)
	rec := ts.request(t, http.MethodPost, "/authn/login", "", LoginRequest{
		Email:    "alice@example.com",
		Password: "s3cret",
		OrgSlug:  "nope",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// Bad password: attributed to the resolved org and user.
	ts.Orgs.On("GetOrganizationBySlug", "acme").
		Return(&model.Organization{ID: testOrgID, Slug: "acme"}, nil)
	ts.Users.On("GetUserByEmail", "alice@example.com").Return(&model.User{
		ID:             testUserID,
		Email:          "alice@example.com",
		PasswordDigest: digestFor(t, "s3cret"),
	}, nil)
	rec = ts.request(t, http.MethodPost, "/authn/login", "", LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong",
		OrgSlug:  "acme",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	require.Len(t, captured.records, 2)
	assert.Equal(t, audit.UnknownOrgID, captured.records[0].OrgID)
	assert.Empty(t, captured.records[0].ActorID)
	assert.Equal(t, testOrgID, captured.records[1].OrgID)
	assert.Equal(t, testUserID, captured.records[1].ActorID)
}
