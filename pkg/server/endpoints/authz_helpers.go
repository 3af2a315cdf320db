package endpoints

import (
	"net/http"

	"github.com/vantagehq/vantage/pkg/audit"
	"github.com/vantagehq/vantage/pkg/identity"
)

// currentPrincipal pulls the authenticated principal from the request.
// Responds 401 and returns nil when the middleware did not run.
func currentPrincipal(w http.ResponseWriter, r *http.Request) *identity.Principal {
	p, ok := identity.Get(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unable to determine identity")
		return nil
	}
	return p
}

// requireRole enforces the role needed for an operation. Denials are
// audited and answered with 403; the caller just checks for nil.
func requireRole(w http.ResponseWriter, r *http.Request, required, resourceType, resourceID string) *identity.Principal {
	p := currentPrincipal(w, r)
	if p == nil {
		return nil
	}

	if !p.HasRole(required) {
		audit.Log(audit.CheckEvent{
			OrgID:        p.OrgID,
			UserID:       p.UserID,
			ClientIP:     p.ClientIP(),
			ResourceType: resourceType,
			ResourceID:   resourceID,
			Required:     required,
		})
		respondWithError(w, http.StatusForbidden, "Insufficient role for this operation")
		return nil
	}
	return p
}
