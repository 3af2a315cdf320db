package endpoints

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vantagehq/vantage/pkg/assist"
	"github.com/vantagehq/vantage/pkg/model"
)

func TestAssistChat(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": "Spend is trending 12% over plan."}},
			},
		})
	}))
	defer backend.Close()

	ts := newUnregisteredTestServer(t)
	ts.srv.Assist = assist.NewClient(backend.URL, "test-model")
	RegisterAll(ts.srv)
	bearer := ts.tokenFor(t, model.RoleViewer)

	rec := ts.request(t, http.MethodPost, "/api/v1/assist/chat", bearer, AssistChatRequest{
		Message: "How is the portfolio doing?",
		Context: "3 active projects",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp AssistChatResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, "Spend is trending 12% over plan.", resp.Reply)
}

func TestAssistChatNotConfigured(t *testing.T) {
	ts := newTestServer(t)
	bearer := ts.tokenFor(t, model.RoleViewer)

	rec := ts.request(t, http.MethodPost, "/api/v1/assist/chat", bearer, AssistChatRequest{Message: "hello"})
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestAssistChatUpstreamFailure(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model overloaded", http.StatusServiceUnavailable)
	}))
	defer backend.Close()

	ts := newUnregisteredTestServer(t)
	ts.srv.Assist = assist.NewClient(backend.URL, "test-model")
	RegisterAll(ts.srv)
	bearer := ts.tokenFor(t, model.RoleViewer)

	rec := ts.request(t, http.MethodPost, "/api/v1/assist/chat", bearer, AssistChatRequest{Message: "hello"})
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestAssistChatMissingMessage(t *testing.T) {
	ts := newTestServer(t)
	bearer := ts.tokenFor(t, model.RoleViewer)

	rec := ts.request(t, http.MethodPost, "/api/v1/assist/chat", bearer, AssistChatRequest{Context: "ctx"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
