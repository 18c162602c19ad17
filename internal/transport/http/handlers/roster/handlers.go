package rosterhandler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"salestrack/internal/domain/auth"
	"salestrack/internal/domain/roster"
	"salestrack/internal/transport/http/api"
	"salestrack/internal/transport/http/middleware"
	"salestrack/internal/transport/http/shared"
)

type Handler struct {
	Roster *roster.Service
}

func NewHandler(rosterSvc *roster.Service) *Handler {
	return &Handler{Roster: rosterSvc}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.With(middleware.RequirePermission(auth.PermRosterRead)).Get("/sales", h.handleListSales)
	r.With(middleware.RequirePermission(auth.PermRosterWrite)).Post("/sales", h.handleSaveSales)
	r.With(middleware.RequirePermission(auth.PermRosterWrite)).Put("/sales/{id}", h.handleUpdateSales)
	r.With(middleware.RequirePermission(auth.PermRosterWrite)).Delete("/sales/{id}", h.handleDeleteSales)

	r.With(middleware.RequirePermission(auth.PermRosterRead)).Get("/users", h.handleListUsers)
	r.With(middleware.RequirePermission(auth.PermRosterWrite)).Post("/users", h.handleSaveUser)
	r.With(middleware.RequirePermission(auth.PermRosterWrite)).Put("/users/{id}", h.handleUpdateUser)
	r.With(middleware.RequirePermission(auth.PermRosterWrite)).Delete("/users/{id}", h.handleDeleteUser)

	r.With(middleware.RequirePermission(auth.PermRosterRead)).Get("/principles", h.handleListPrinciples)
	r.With(middleware.RequirePermission(auth.PermRosterWrite)).Post("/principles", h.handleAddPrinciple)
}

func (h *Handler) handleListSales(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())

	// Supervisors see their own team only; the roster is org-wide for
	// everyone else with roster.read.
	if user.Role == auth.RoleSupervisor {
		team := h.Roster.TeamOf(user.FullName)
		if team == nil {
			team = []roster.SalesPerson{}
		}
		api.Success(w, team, requestID)
		return
	}

	sales := h.Roster.ListSales()
	if principle := strings.TrimSpace(r.URL.Query().Get("principle")); principle != "" {
		var filtered []roster.SalesPerson
		for _, sp := range sales {
			if strings.EqualFold(sp.Principle, principle) {
				filtered = append(filtered, sp)
			}
		}
		sales = filtered
	}
	if sales == nil {
		sales = []roster.SalesPerson{}
	}
	api.Success(w, sales, requestID)
}

func (h *Handler) handleSaveSales(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var sp roster.SalesPerson
	if err := json.NewDecoder(r.Body).Decode(&sp); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}
	sp.ID = ""

	validator := shared.NewValidator()
	validator.Required("fullName", sp.FullName, "full name is required")
	validator.Required("principle", sp.Principle, "principle is required")
	if validator.Reject(w, requestID) {
		return
	}

	api.Created(w, h.Roster.SaveSales(sp), requestID)
}

func (h *Handler) handleUpdateSales(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := chi.URLParam(r, "id")

	if _, ok := h.Roster.FindSales(id); !ok {
		api.Fail(w, http.StatusNotFound, "not_found", "salesperson not found", requestID)
		return
	}

	var sp roster.SalesPerson
	if err := json.NewDecoder(r.Body).Decode(&sp); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}
	sp.ID = id

	api.Success(w, h.Roster.SaveSales(sp), requestID)
}

func (h *Handler) handleDeleteSales(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	h.Roster.DeleteSales(chi.URLParam(r, "id"))
	api.Success(w, map[string]string{"status": "deleted"}, requestID)
}

func (h *Handler) handleListUsers(w http.ResponseWriter, r *http.Request) {
	users := h.Roster.ListUsers()
	if users == nil {
		users = []roster.User{}
	}
	api.Success(w, users, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleSaveUser(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var u roster.User
	if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}
	u.ID = ""
	u.Role = strings.ToUpper(strings.TrimSpace(u.Role))

	validator := shared.NewValidator()
	validator.Required("fullName", u.FullName, "full name is required")
	validator.Required("role", u.Role, "role is required")
	validator.Enum("role", u.Role, auth.Roles, "unknown role")
	if validator.Reject(w, requestID) {
		return
	}

	api.Created(w, h.Roster.SaveUser(u), requestID)
}

func (h *Handler) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := chi.URLParam(r, "id")

	existing, ok := h.Roster.FindUser(id)
	if !ok {
		api.Fail(w, http.StatusNotFound, "not_found", "user not found", requestID)
		return
	}

	var u roster.User
	if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}
	u.ID = id
	if u.PasswordHash == "" {
		u.PasswordHash = existing.PasswordHash
	}

	api.Success(w, h.Roster.SaveUser(u), requestID)
}

func (h *Handler) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	h.Roster.DeleteUser(chi.URLParam(r, "id"))
	api.Success(w, map[string]string{"status": "deleted"}, requestID)
}

func (h *Handler) handleListPrinciples(w http.ResponseWriter, r *http.Request) {
	principles := h.Roster.Principles()
	if principles == nil {
		principles = []string{}
	}
	api.Success(w, principles, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleAddPrinciple(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var payload struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	validator := shared.NewValidator()
	validator.Required("name", payload.Name, "principle name is required")
	if validator.Reject(w, requestID) {
		return
	}

	h.Roster.AddPrinciple(payload.Name)
	api.Created(w, h.Roster.Principles(), requestID)
}
