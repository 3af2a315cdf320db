package endpoints

import (
	"net/http"
	"time"

	"github.com/vantagehq/vantage/pkg/server"
)

// WhoamiResponse represents the response from the /whoami endpoint
type WhoamiResponse struct {
	UserID    string    `json:"user_id"`
	OrgID     string    `json:"org_id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	ClientIP  string    `json:"client_ip,omitempty"`
	TokenIAT  time.Time `json:"token_iat"`
	ExpiresAt time.Time `json:"expires_at"`
}

// RegisterWhoamiEndpoint registers the /whoami endpoint
func RegisterWhoamiEndpoint(s *server.Server) {
	whoamiRouter := s.Router.PathPrefix("/whoami").Subrouter()
	whoamiRouter.Use(s.JWTMiddleware.Middleware)

	whoamiRouter.HandleFunc("", handleWhoami()).Methods("GET")
}

func handleWhoami() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := currentPrincipal(w, r)
		if p == nil {
			return
		}

		respondWithJSON(w, http.StatusOK, WhoamiResponse{
			UserID:    p.UserID,
			OrgID:     p.OrgID,
			Email:     p.Email,
			Role:      p.Role,
			ClientIP:  p.ClientIP(),
			TokenIAT:  p.IssuedAt,
			ExpiresAt: p.ExpiresAt,
		})
	}
}
