package endpoints

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/vantagehq/vantage/pkg/model"
	"github.com/vantagehq/vantage/pkg/server"
	"github.com/vantagehq/vantage/pkg/server/store"
)

// AuditLogResponse is the JSON shape of one audit entry
type AuditLogResponse struct {
	ID           int64           `json:"id"`
	ActorID      string          `json:"actor_id,omitempty"`
	Action       string          `json:"action"`
	ResourceType string          `json:"resource_type"`
	ResourceID   string          `json:"resource_id,omitempty"`
	Details      json.RawMessage `json:"details"`
	ClientIP     string          `json:"client_ip,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	PreviousHash string          `json:"previous_hash"`
	Hash         string          `json:"hash"`
}

// RegisterAuditEndpoints registers the audit trail endpoints
func RegisterAuditEndpoints(s *server.Server) {
	router := s.Router.PathPrefix("/api/audit").Subrouter()
	router.Use(s.JWTMiddleware.Middleware)

	router.HandleFunc("/logs", handleListAuditLogs(s.Audit)).Methods("GET")
	router.HandleFunc("/verify", handleVerifyAuditChain(s.Audit)).Methods("GET")
}

func handleListAuditLogs(auditStore store.AuditStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := currentPrincipal(w, r)
		if p == nil {
			return
		}

		limit, offset := listParams(r)
		logs, err := auditStore.ListLogs(p.OrgID, store.AuditFilter{
			Action:       r.URL.Query().Get("action"),
			ResourceType: r.URL.Query().Get("resource_type"),
			Limit:        limit,
			Offset:       offset,
		})
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to list audit logs")
			return
		}

		resp := make([]AuditLogResponse, 0, len(logs))
		for _, row := range logs {
			details := row.Details
			if details == "" {
				details = "{}"
			}
			actorID := ""
			if row.ActorID != nil {
				actorID = *row.ActorID
			}
			resp = append(resp, AuditLogResponse{
				ID:           row.ID,
				ActorID:      actorID,
				Action:       row.Action,
				ResourceType: row.ResourceType,
				ResourceID:   row.ResourceID,
				Details:      json.RawMessage(details),
				ClientIP:     row.ClientIP,
				CreatedAt:    row.CreatedAt,
				PreviousHash: row.PreviousHash,
				Hash:         row.Hash,
			})
		}
		respondWithJSON(w, http.StatusOK, resp)
	}
}

func handleVerifyAuditChain(auditStore store.AuditStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := requireRole(w, r, model.RoleAdmin, "audit_chain", "")
		if p == nil {
			return
		}

		result, err := auditStore.VerifyChain(p.OrgID)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to verify audit chain")
			return
		}
		respondWithJSON(w, http.StatusOK, result)
	}
}
