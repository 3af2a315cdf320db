package endpoints

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/vantagehq/vantage/pkg/audit"
	"github.com/vantagehq/vantage/pkg/model"
	"github.com/vantagehq/vantage/pkg/server"
	"github.com/vantagehq/vantage/pkg/server/store"
)

const dateLayout = "2006-01-02"

// ProjectResponse is the JSON shape of a project
type ProjectResponse struct {
	ID          string    `json:"id"`
	Key         string    `json:"key"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status"`
	BudgetCents int64     `json:"budget_cents"`
	StartDate   string    `json:"start_date,omitempty"`
	EndDate     string    `json:"end_date,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func projectResponse(p *model.Project) ProjectResponse {
	resp := ProjectResponse{
		ID:          p.ID,
		Key:         p.Key,
		Name:        p.Name,
		Description: p.Description,
		Status:      p.Status.String(),
		BudgetCents: p.BudgetCents,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if p.StartDate != nil {
		resp.StartDate = p.StartDate.Format(dateLayout)
	}
	if p.EndDate != nil {
		resp.EndDate = p.EndDate.Format(dateLayout)
	}
	return resp
}

// CreateProjectRequest is the body for POST /api/v1/projects
type CreateProjectRequest struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
	BudgetCents int64  `json:"budget_cents"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
}

// UpdateProjectRequest is the body for PUT /api/v1/projects/{id}.
// Omitted fields keep their current values.
type UpdateProjectRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	BudgetCents *int64  `json:"budget_cents"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
}

// RegisterProjectsEndpoints registers the project CRUD endpoints
func RegisterProjectsEndpoints(s *server.Server) {
	projects := s.Projects

	router := s.Router.PathPrefix("/api/v1/projects").Subrouter()
	router.Use(s.JWTMiddleware.Middleware)

	router.HandleFunc("", handleListProjects(projects)).Methods("GET")
	router.HandleFunc("", handleCreateProject(projects)).Methods("POST")
	router.HandleFunc("/{id}", handleGetProject(projects)).Methods("GET")
	router.HandleFunc("/{id}", handleUpdateProject(projects)).Methods("PUT")
	router.HandleFunc("/{id}", handleDeleteProject(projects)).Methods("DELETE")
}

func handleListProjects(projects store.ProjectsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := currentPrincipal(w, r)
		if p == nil {
			return
		}

		limit, offset := listParams(r)
		list, err := projects.ListProjects(p.OrgID, limit, offset)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to list projects")
			return
		}

		resp := make([]ProjectResponse, 0, len(list))
		for i := range list {
			resp = append(resp, projectResponse(&list[i]))
		}
		respondWithJSON(w, http.StatusOK, resp)
	}
}

func handleCreateProject(projects store.ProjectsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := requireRole(w, r, model.RoleManager, "project", "")
		if p == nil {
			return
		}

		var req CreateProjectRequest
		if err := decodeJSON(r, &req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.Key == "" || req.Name == "" {
			respondWithError(w, http.StatusBadRequest, "key and name are required")
			return
		}
		if req.BudgetCents < 0 {
			respondWithError(w, http.StatusBadRequest, "budget_cents must not be negative")
			return
		}

		start, end, err := parseDateRange(req.StartDate, req.EndDate)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		project := &model.Project{
			OrgID:       p.OrgID,
			Key:         req.Key,
			Name:        req.Name,
			Description: req.Description,
			Status:      model.StatusProposed,
			BudgetCents: req.BudgetCents,
			StartDate:   start,
			EndDate:     end,
		}
		if err := projects.CreateProject(project); err != nil {
			if errors.Is(err, store.ErrProjectKeyTaken) {
				respondWithError(w, http.StatusConflict, "Project key already taken")
				return
			}
			respondWithError(w, http.StatusInternalServerError, "Failed to create project")
			return
		}

		audit.Log(audit.ProjectEvent{
			OrgID:     p.OrgID,
			UserID:    p.UserID,
			ClientIP:  p.ClientIP(),
			ProjectID: project.ID,
			Operation: "create",
			Success:   true,
		})
		respondWithJSON(w, http.StatusCreated, projectResponse(project))
	}
}

func handleGetProject(projects store.ProjectsStore) http.HandlerFunc {
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
		respondWithJSON(w, http.StatusOK, projectResponse(project))
	}
}

func handleUpdateProject(projects store.ProjectsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID := mux.Vars(r)["id"]
		p := requireRole(w, r, model.RoleManager, "project", projectID)
		if p == nil {
			return
		}

		var req UpdateProjectRequest
		if err := decodeJSON(r, &req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
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

		statusDetail := ""
		if req.Status != nil {
			next, err := model.ProjectStatusString(*req.Status)
			if err != nil {
				respondWithError(w, http.StatusBadRequest, "Unknown status: "+*req.Status)
				return
			}
			if !project.Status.CanTransitionTo(next) {
				respondWithError(w, http.StatusUnprocessableEntity, fmt.Sprintf(
					"Cannot transition project from %s to %s", project.Status, next,
				))
				return
			}
			if next != project.Status {
				statusDetail = project.Status.String() + " -> " + next.String()
			}
			project.Status = next
		}

		if req.Name != nil {
			if *req.Name == "" {
				respondWithError(w, http.StatusBadRequest, "name must not be empty")
				return
			}
			project.Name = *req.Name
		}
		if req.Description != nil {
			project.Description = *req.Description
		}
		if req.BudgetCents != nil {
			if *req.BudgetCents < 0 {
				respondWithError(w, http.StatusBadRequest, "budget_cents must not be negative")
				return
			}
			project.BudgetCents = *req.BudgetCents
		}
		if req.StartDate != nil || req.EndDate != nil {
			startStr := formatOptionalDate(project.StartDate)
			endStr := formatOptionalDate(project.EndDate)
			if req.StartDate != nil {
				startStr = *req.StartDate
			}
			if req.EndDate != nil {
				endStr = *req.EndDate
			}
			start, end, err := parseDateRange(startStr, endStr)
			if err != nil {
				respondWithError(w, http.StatusBadRequest, err.Error())
				return
			}
			project.StartDate = start
			project.EndDate = end
		}

		if err := projects.UpdateProject(project); err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to update project")
			return
		}

		operation := "update"
		if statusDetail != "" {
			operation = "status"
		}
		audit.Log(audit.ProjectEvent{
			OrgID:     p.OrgID,
			UserID:    p.UserID,
			ClientIP:  p.ClientIP(),
			ProjectID: project.ID,
			Operation: operation,
			Detail:    statusDetail,
			Success:   true,
		})
		respondWithJSON(w, http.StatusOK, projectResponse(project))
	}
}

func handleDeleteProject(projects store.ProjectsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID := mux.Vars(r)["id"]
		p := requireRole(w, r, model.RoleManager, "project", projectID)
		if p == nil {
			return
		}

		if err := projects.DeleteProject(p.OrgID, projectID); err != nil {
			if errors.Is(err, store.ErrProjectNotFound) {
				respondWithError(w, http.StatusNotFound, "Project not found")
				return
			}
			respondWithError(w, http.StatusInternalServerError, "Failed to delete project")
			return
		}

		audit.Log(audit.ProjectEvent{
			OrgID:     p.OrgID,
			UserID:    p.UserID,
			ClientIP:  p.ClientIP(),
			ProjectID: projectID,
			Operation: "delete",
			Success:   true,
		})
		w.WriteHeader(http.StatusNoContent)
	}
}

func parseDateRange(startStr, endStr string) (start, end *time.Time, err error) {
	if startStr != "" {
		t, parseErr := time.Parse(dateLayout, startStr)
		if parseErr != nil {
			return nil, nil, errors.New("start_date must be YYYY-MM-DD")
		}
		start = &t
	}
	if endStr != "" {
		t, parseErr := time.Parse(dateLayout, endStr)
		if parseErr != nil {
			return nil, nil, errors.New("end_date must be YYYY-MM-DD")
		}
		end = &t
	}
	if start != nil && end != nil && end.Before(*start) {
		return nil, nil, errors.New("end_date must not be before start_date")
	}
	return start, end, nil
}

func formatOptionalDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}
