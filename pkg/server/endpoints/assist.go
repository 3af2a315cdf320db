package endpoints

import (
	"errors"
	"net/http"

	"github.com/vantagehq/vantage/pkg/assist"
	"github.com/vantagehq/vantage/pkg/audit"
	"github.com/vantagehq/vantage/pkg/server"
)

// AssistChatRequest is the body for POST /api/v1/assist/chat
type AssistChatRequest struct {
	Message string `json:"message"`
	Context string `json:"context"`
}

// AssistChatResponse is the assistant's reply
type AssistChatResponse struct {
	Reply string `json:"reply"`
}

// RegisterAssistEndpoint registers the help chat endpoint
func RegisterAssistEndpoint(s *server.Server) {
	router := s.Router.PathPrefix("/api/v1/assist").Subrouter()
	router.Use(s.JWTMiddleware.Middleware)

	router.HandleFunc("/chat", handleAssistChat(s.Assist)).Methods("POST")
}

func handleAssistChat(client *assist.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := currentPrincipal(w, r)
		if p == nil {
			return
		}

		var req AssistChatRequest
		if err := decodeJSON(r, &req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.Message == "" {
			respondWithError(w, http.StatusBadRequest, "message is required")
			return
		}

		reply, err := client.Chat(r.Context(), req.Context, req.Message)

		// Message content stays out of the audit trail, only its length.
		audit.Log(audit.AssistEvent{
			OrgID:         p.OrgID,
			UserID:        p.UserID,
			ClientIP:      p.ClientIP(),
			MessageLength: len(req.Message),
			Success:       err == nil,
		})

		if err != nil {
			if errors.Is(err, assist.ErrNotConfigured) {
				respondWithError(w, http.StatusServiceUnavailable, "Assist backend is not configured")
				return
			}
			respondWithError(w, http.StatusBadGateway, "Assist backend request failed")
			return
		}
		respondWithJSON(w, http.StatusOK, AssistChatResponse{Reply: reply})
	}
}
