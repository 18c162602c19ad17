package evaluationshandler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"salestrack/internal/domain/auth"
	"salestrack/internal/domain/kpi"
	"salestrack/internal/domain/roster"
	"salestrack/internal/transport/http/api"
	"salestrack/internal/transport/http/middleware"
	"salestrack/internal/transport/http/shared"
)

type Handler struct {
	KPI    *kpi.Service
	Roster *roster.Service
}

func NewHandler(kpiSvc *kpi.Service, rosterSvc *roster.Service) *Handler {
	return &Handler{KPI: kpiSvc, Roster: rosterSvc}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.With(middleware.RequirePermission(auth.PermKPIRead)).Get("/evaluations", h.handleList)
	r.With(middleware.RequirePermission(auth.PermKPIRead)).Get("/evaluations/{salesID}/{year}/{month}", h.handleGet)
	r.With(middleware.RequirePermission(auth.PermKPIRate)).Post("/evaluations/{salesID}/{year}/{month}/scores", h.handleSubmitScores)
	r.With(middleware.RequirePermission(auth.PermKPIConfigRead)).Get("/settings/kpi", h.handleGetConfig)
	r.With(middleware.RequirePermission(auth.PermKPIConfigWrite)).Put("/settings/kpi", h.handlePutConfig)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	query := r.URL.Query()

	month, _ := strconv.Atoi(query.Get("month"))
	year, _ := strconv.Atoi(query.Get("year"))
	principle := strings.ToUpper(strings.TrimSpace(query.Get("principle")))
	supervisor := strings.TrimSpace(query.Get("supervisor"))

	// Principle and supervisor filters go through the roster: an evaluation
	// only carries the salesperson id.
	var allowed map[string]bool
	if principle != "" || supervisor != "" {
		allowed = map[string]bool{}
		for _, sp := range h.Roster.ListSales() {
			if principle != "" && !strings.EqualFold(sp.Principle, principle) {
				continue
			}
			if supervisor != "" && !strings.EqualFold(sp.SupervisorName, supervisor) {
				continue
			}
			allowed[sp.ID] = true
		}
	}

	var out []kpi.Evaluation
	for _, ev := range h.KPI.List() {
		if month != 0 && ev.Month != month {
			continue
		}
		if year != 0 && ev.Year != year {
			continue
		}
		if allowed != nil && !allowed[ev.SalesID] {
			continue
		}
		out = append(out, ev)
	}
	if out == nil {
		out = []kpi.Evaluation{}
	}

	pagination := shared.ParsePagination(r, 100, 500)
	if pagination.Offset >= len(out) {
		out = []kpi.Evaluation{}
	} else {
		out = out[pagination.Offset:]
		if len(out) > pagination.Limit {
			out = out[:pagination.Limit]
		}
	}

	api.Success(w, out, requestID)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	salesID, month, year, ok := evaluationParams(w, r, requestID)
	if !ok {
		return
	}

	ev, found := h.KPI.Get(salesID, month, year)
	if !found {
		api.Fail(w, http.StatusNotFound, "not_found", "no evaluation for that period", requestID)
		return
	}
	api.Success(w, ev, requestID)
}

func (h *Handler) handleSubmitScores(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())

	salesID, month, year, ok := evaluationParams(w, r, requestID)
	if !ok {
		return
	}

	var payload struct {
		Scores kpi.ScoreData `json:"scores"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	validator := shared.NewValidator()
	for key, value := range payload.Scores {
		validator.Score("scores."+key, value)
	}
	if validator.Reject(w, requestID) {
		return
	}

	patch := h.scopePatch(user.Role, payload.Scores)
	ev := h.KPI.SubmitScores(r.Context(), salesID, month, year, patch)
	api.Success(w, ev, requestID)
}

// scopePatch restricts a rater's patch to the criteria of their own section.
// Admins rate across all sections and pass through untouched, as do roles
// with no section of their own.
func (h *Handler) scopePatch(role string, patch kpi.ScoreData) kpi.ScoreData {
	if role == auth.RoleAdmin {
		return patch
	}
	section, ok := h.KPI.Configuration().SectionForRole(role)
	if !ok {
		return patch
	}
	scoped := kpi.ScoreData{}
	for _, criterion := range section.Criteria {
		if value, present := patch[criterion.Key]; present {
			scoped[criterion.Key] = value
		}
	}
	return scoped
}

func (h *Handler) handleGetConfig(w http.ResponseWriter, r *http.Request) {
	api.Success(w, h.KPI.Configuration(), middleware.GetRequestID(r.Context()))
}

type configResponse struct {
	Config   kpi.Configuration `json:"config"`
	Warnings []string          `json:"warnings"`
}

// handlePutConfig replaces the KPI catalog wholesale. Weight drift is
// reported back as warnings but never blocks the save, and stored
// evaluations keep the scores they were saved with.
func (h *Handler) handlePutConfig(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var cfg kpi.Configuration
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	warnings := h.KPI.ReplaceConfiguration(cfg)
	if warnings == nil {
		warnings = []string{}
	}
	api.Success(w, configResponse{Config: h.KPI.Configuration(), Warnings: warnings}, requestID)
}

func evaluationParams(w http.ResponseWriter, r *http.Request, requestID string) (string, int, int, bool) {
	salesID := chi.URLParam(r, "salesID")
	year, yearErr := strconv.Atoi(chi.URLParam(r, "year"))
	month, monthErr := strconv.Atoi(chi.URLParam(r, "month"))

	validator := shared.NewValidator()
	validator.Required("salesId", salesID, "sales id is required")
	if yearErr != nil || year < 2000 || year > 2100 {
		validator.Add("year", "must be a four digit year")
	}
	if monthErr != nil {
		validator.Add("month", "must be a number")
	} else {
		validator.Month("month", month)
	}
	if validator.Reject(w, requestID) {
		return "", 0, 0, false
	}
	return salesID, month, year, true
}
