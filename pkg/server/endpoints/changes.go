package endpoints

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/vantagehq/vantage/pkg/audit"
	"github.com/vantagehq/vantage/pkg/model"
	"github.com/vantagehq/vantage/pkg/server"
	"github.com/vantagehq/vantage/pkg/server/store"
)

// ChangeResponse is the JSON shape of a budget change entry
type ChangeResponse struct {
	ID          string    `json:"id"`
	ProjectID   string    `json:"project_id"`
	AmountCents int64     `json:"amount_cents"`
	Category    string    `json:"category,omitempty"`
	Memo        string    `json:"memo,omitempty"`
	EntryDate   string    `json:"entry_date"`
	CreatedBy   string    `json:"created_by,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func changeResponse(c *model.BudgetChange) ChangeResponse {
	return ChangeResponse{
		ID:          c.ID,
		ProjectID:   c.ProjectID,
		AmountCents: c.AmountCents,
		Category:    c.Category,
		Memo:        c.Memo,
		EntryDate:   c.EntryDate.Format(dateLayout),
		CreatedBy:   c.CreatedBy,
		CreatedAt:   c.CreatedAt,
	}
}

// ChangesListResponse adds the budget position to the listing.
type ChangesListResponse struct {
	Changes        []ChangeResponse `json:"changes"`
	SpendCents     int64            `json:"spend_cents"`
	BudgetCents    int64            `json:"budget_cents"`
	RemainingCents int64            `json:"remaining_cents"`
	OverBudget     bool             `json:"over_budget"`
}

// CreateChangeRequest is the body for POST /api/v1/projects/{id}/changes
type CreateChangeRequest struct {
	AmountCents int64  `json:"amount_cents"`
	Category    string `json:"category"`
	Memo        string `json:"memo"`
	EntryDate   string `json:"entry_date"`
}

// RegisterChangesEndpoints registers the budget change endpoints
func RegisterChangesEndpoints(s *server.Server) {
	router := s.Router.PathPrefix("/api/v1/projects/{id}/changes").Subrouter()
	router.Use(s.JWTMiddleware.Middleware)

	router.HandleFunc("", handleListChanges(s.Projects, s.Changes)).Methods("GET")
	router.HandleFunc("", handleCreateChange(s.Projects, s.Changes)).Methods("POST")
}

func handleListChanges(projects store.ProjectsStore, changes store.ChangesStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := currentPrincipal(w, r)
		if p == nil {
			return
		}

		project, err := projects.GetProject(p.OrgID, mux.Vars(r)["id"])
		if err != nil {
			if errors.Is(err, store.ErrProjectNotFound) {
				respondWithError(w, http.StatusNotFound, "Project not found")
				return
			}
			respondWithError(w, http.StatusInternalServerError, "Failed to fetch project")
			return
		}

		limit, offset := listParams(r)
		list, err := changes.ListChanges(p.OrgID, project.ID, limit, offset)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to list changes")
			return
		}
		spend, err := changes.SpendCents(p.OrgID, project.ID)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to total spend")
			return
		}

		resp := ChangesListResponse{
			Changes:        make([]ChangeResponse, 0, len(list)),
			SpendCents:     spend,
			BudgetCents:    project.BudgetCents,
			RemainingCents: project.BudgetCents - spend,
			OverBudget:     spend > project.BudgetCents,
		}
		for i := range list {
			resp.Changes = append(resp.Changes, changeResponse(&list[i]))
		}
		respondWithJSON(w, http.StatusOK, resp)
	}
}

func handleCreateChange(projects store.ProjectsStore, changes store.ChangesStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID := mux.Vars(r)["id"]
		p := requireRole(w, r, model.RoleManager, "budget_change", projectID)
		if p == nil {
			return
		}

		project, err := projects.GetProject(p.OrgID, projectID)
		if err != nil {
			if errors.Is(err, store.ErrProjectNotFound) {
				respondWithError(w, http.StatusNotFound, "Project not found")
				return
			}
			respondWithError(w, http.StatusInternalServerError, "Failed to fetch project")
			return
		}

		var req CreateChangeRequest
		if err := decodeJSON(r, &req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.AmountCents == 0 {
			respondWithError(w, http.StatusBadRequest, "amount_cents must not be zero")
			return
		}

		entryDate := time.Now().UTC().Truncate(24 * time.Hour)
		if req.EntryDate != "" {
			entryDate, err = time.Parse(dateLayout, req.EntryDate)
			if err != nil {
				respondWithError(w, http.StatusBadRequest, "entry_date must be YYYY-MM-DD")
				return
			}
		}

		change := &model.BudgetChange{
			OrgID:       p.OrgID,
			ProjectID:   project.ID,
			AmountCents: req.AmountCents,
			Category:    req.Category,
			Memo:        req.Memo,
			EntryDate:   entryDate,
			CreatedBy:   p.UserID,
		}
		if err := changes.CreateChange(change); err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to record change")
			return
		}

		audit.Log(audit.ChangeEvent{
			OrgID:       p.OrgID,
			UserID:      p.UserID,
			ClientIP:    p.ClientIP(),
			ProjectID:   project.ID,
			ChangeID:    change.ID,
			AmountCents: change.AmountCents,
			Category:    change.Category,
		})
		respondWithJSON(w, http.StatusCreated, changeResponse(change))
	}
}
