package endpoints

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/vantagehq/vantage/pkg/anomaly"
	"github.com/vantagehq/vantage/pkg/audit"
	"github.com/vantagehq/vantage/pkg/config"
	"github.com/vantagehq/vantage/pkg/distribution"
	"github.com/vantagehq/vantage/pkg/model"
	"github.com/vantagehq/vantage/pkg/report"
	"github.com/vantagehq/vantage/pkg/server"
	"github.com/vantagehq/vantage/pkg/server/store"
)

// ReportResponse is the JSON shape of a stored report
type ReportResponse struct {
	ID          string `json:"id"`
	ProjectID   string `json:"project_id"`
	Period      string `json:"period"`
	BodyMD      string `json:"body_md"`
	GeneratedBy string `json:"generated_by,omitempty"`
}

func reportResponse(rep *model.Report) ReportResponse {
	return ReportResponse{
		ID:          rep.ID,
		ProjectID:   rep.ProjectID,
		Period:      rep.Period,
		BodyMD:      rep.BodyMD,
		GeneratedBy: rep.GeneratedBy,
	}
}

// RegisterReportsEndpoints registers the monthly report endpoints
func RegisterReportsEndpoints(s *server.Server) {
	router := s.Router.PathPrefix("/api/v1/projects/{id}/report").Subrouter()
	router.Use(s.JWTMiddleware.Middleware)

	router.HandleFunc("", handleGenerateReport(s.Projects, s.Changes, s.Reports)).Methods("POST")
	router.HandleFunc("", handleGetReport(s.Projects, s.Reports)).Methods("GET")
}

func handleGenerateReport(projects store.ProjectsStore, changes store.ChangesStore, reports store.ReportsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID := mux.Vars(r)["id"]
		p := requireRole(w, r, model.RoleManager, "report", projectID)
		if p == nil {
			return
		}

		period := r.URL.Query().Get("period")
		if _, err := distribution.ParsePeriod(period); err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error())
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

		spend, err := changes.SpendCents(p.OrgID, project.ID)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to total spend")
			return
		}
		periodChanges, err := changes.ListChangesForPeriod(p.OrgID, project.ID, period)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to list changes")
			return
		}
		monthly, err := changes.MonthlySpend(p.OrgID, project.ID)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to aggregate spend")
			return
		}

		bodyMD, bodyHTML, err := report.Build(report.Input{
			Project:    *project,
			Period:     period,
			SpendCents: spend,
			Changes:    periodChanges,
			Anomalies:  anomaly.Detect(monthly, config.Get().AnomalyThreshold),
		})
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to render report")
			return
		}

		stored := &model.Report{
			OrgID:       p.OrgID,
			ProjectID:   project.ID,
			Period:      period,
			BodyMD:      bodyMD,
			BodyHTML:    bodyHTML,
			GeneratedBy: p.UserID,
		}
		if err := reports.UpsertReport(stored); err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to store report")
			return
		}

		audit.Log(audit.ReportEvent{
			OrgID:     p.OrgID,
			UserID:    p.UserID,
			ClientIP:  p.ClientIP(),
			ProjectID: project.ID,
			Period:    period,
			Success:   true,
		})
		respondWithJSON(w, http.StatusCreated, reportResponse(stored))
	}
}

func handleGetReport(projects store.ProjectsStore, reports store.ReportsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := currentPrincipal(w, r)
		if p == nil {
			return
		}

		period := r.URL.Query().Get("period")
		if _, err := distribution.ParsePeriod(period); err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error())
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

		rep, err := reports.GetReport(p.OrgID, project.ID, period)
		if err != nil {
			if errors.Is(err, store.ErrReportNotFound) {
				respondWithError(w, http.StatusNotFound, "Report not found")
				return
			}
			respondWithError(w, http.StatusInternalServerError, "Failed to fetch report")
			return
		}

		if strings.Contains(r.Header.Get("Accept"), "text/html") {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			_, _ = w.Write([]byte(rep.BodyHTML))
			return
		}
		respondWithJSON(w, http.StatusOK, reportResponse(rep))
	}
}
