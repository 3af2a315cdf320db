package endpoints

import (
	"errors"
	"net/http"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/vantagehq/vantage/pkg/audit"
	"github.com/vantagehq/vantage/pkg/config"
	"github.com/vantagehq/vantage/pkg/server"
	"github.com/vantagehq/vantage/pkg/server/middleware"
	"github.com/vantagehq/vantage/pkg/server/store"
	"github.com/vantagehq/vantage/pkg/token"
)

// LoginRequest is the body for POST /authn/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	// OrgSlug selects the organization to authenticate against. Optional
	// when the user belongs to exactly one via OrgID in the membership row.
	OrgSlug string `json:"org"`
}

// LoginResponse is the response for POST /authn/login
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// RegisterAuthenticateEndpoint registers POST /authn/login
func RegisterAuthenticateEndpoint(s *server.Server) {
	s.Router.HandleFunc("/authn/login", handleLogin(s.Users, s.Organizations)).Methods("POST")
}

func handleLogin(users store.UsersStore, orgs store.OrganizationsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := decodeJSON(r, &req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.Email == "" || req.Password == "" || req.OrgSlug == "" {
			respondWithError(w, http.StatusBadRequest, "email, password and org are required")
			return
		}

		clientIP := ""
		if ip := middleware.ClientIP(r); ip != nil {
			clientIP = ip.String()
		}

		fail := func(orgID, userID, reason string) {
			audit.Log(audit.AuthenticateEvent{
				OrgID:        orgID,
				UserID:       userID,
				Email:        req.Email,
				ClientIP:     clientIP,
				Success:      false,
				ErrorMessage: reason,
			})
			respondWithError(w, http.StatusUnauthorized, "Invalid credentials")
		}

		org, err := orgs.GetOrganizationBySlug(req.OrgSlug)
		if err != nil {
			fail(audit.UnknownOrgID, "", "unknown organization")
			return
		}

		user, err := users.GetUserByEmail(req.Email)
		if err != nil {
			if errors.Is(err, store.ErrUserNotFound) {
				// Burn a compare so unknown emails cost the same as bad passwords.
				_ = bcrypt.CompareHashAndPassword(
					[]byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"),
					[]byte(req.Password),
				)
				fail(org.ID, "", "unknown user")
				return
			}
			respondWithError(w, http.StatusInternalServerError, "Authentication failed")
			return
		}

		if bcrypt.CompareHashAndPassword([]byte(user.PasswordDigest), []byte(req.Password)) != nil {
			fail(org.ID, user.ID, "bad password")
			return
		}

		if _, err := users.GetMembership(org.ID, user.ID); err != nil {
			fail(org.ID, user.ID, "no membership")
			return
		}

		signed, expiresAt, err := token.Issue(user.ID, org.ID, user.Email, config.Get().TokenTTL())
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Authentication failed")
			return
		}

		audit.Log(audit.AuthenticateEvent{
			OrgID:    org.ID,
			UserID:   user.ID,
			Email:    user.Email,
			ClientIP: clientIP,
			Success:  true,
		})

		respondWithJSON(w, http.StatusOK, LoginResponse{Token: signed, ExpiresAt: expiresAt})
	}
}
