package middleware

import (
	"errors"
	"net"
	"net/http"
	"strings"

	"github.com/vantagehq/vantage/pkg/audit"
	"github.com/vantagehq/vantage/pkg/config"
	"github.com/vantagehq/vantage/pkg/identity"
	"github.com/vantagehq/vantage/pkg/server/store"
	"github.com/vantagehq/vantage/pkg/token"
)

// JWTAuthenticator is middleware that validates bearer tokens and resolves
// the caller's organization role.
type JWTAuthenticator struct {
	Users store.UsersStore
}

// NewJWTAuthenticator creates a new JWT authenticator middleware
func NewJWTAuthenticator(users store.UsersStore) *JWTAuthenticator {
	return &JWTAuthenticator{Users: users}
}

// Middleware returns an HTTP middleware that validates bearer tokens
func (j *JWTAuthenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")

		if len(authHeader) == 0 {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte("Authorization missing"))
			return
		}

		tokenStr, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || tokenStr == "" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte("Malformed authorization header"))
			return
		}

		claims, err := token.Parse(tokenStr)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte("Invalid or expired token"))
			return
		}

		clientIP := ClientIP(r)
		clientIPStr := ""
		if clientIP != nil {
			clientIPStr = clientIP.String()
		}

		member, err := j.Users.GetMembership(claims.OrgID, claims.Subject)
		if errors.Is(err, store.ErrNotMember) {
			audit.Log(audit.AuthenticateEvent{
				OrgID:    claims.OrgID,
				UserID:   claims.Subject,
				Email:    claims.Email,
				ClientIP: clientIPStr,
				Success:  false,
			})
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte("Unknown principal"))
			return
		} else if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("Internal server error"))
			return
		}

		principal := &identity.Principal{
			UserID: claims.Subject,
			OrgID:  claims.OrgID,
			Email:  claims.Email,
		}
		if claims.IssuedAt != nil {
			principal.IssuedAt = claims.IssuedAt.Time
		}
		if claims.ExpiresAt != nil {
			principal.ExpiresAt = claims.ExpiresAt.Time
		}
		principal.WithRole(member.Role).WithRemoteIP(clientIP)

		r = r.WithContext(identity.Set(r.Context(), principal))
		next.ServeHTTP(w, r)
	})
}

// ClientIP resolves the caller's IP. X-Forwarded-For is honoured only when
// the direct peer is a trusted proxy.
func ClientIP(r *http.Request) net.IP {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	peer := net.ParseIP(host)

	forwarded := r.Header.Get("X-Forwarded-For")
	if forwarded != "" && peer != nil && config.Get().IsTrustedProxy(peer.String()) {
		parts := strings.Split(forwarded, ",")
		if ip := net.ParseIP(strings.TrimSpace(parts[0])); ip != nil {
			return ip
		}
	}
	return peer
}
