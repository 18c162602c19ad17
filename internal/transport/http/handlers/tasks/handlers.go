package taskshandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"salestrack/internal/domain/auth"
	"salestrack/internal/domain/tasks"
	"salestrack/internal/transport/http/api"
	"salestrack/internal/transport/http/middleware"
	"salestrack/internal/transport/http/shared"
)

type Handler struct {
	Tasks *tasks.Service
}

func NewHandler(tasksSvc *tasks.Service) *Handler {
	return &Handler{Tasks: tasksSvc}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.With(middleware.RequirePermission(auth.PermTasksRead)).Get("/tasks", h.handleList)
	r.With(middleware.RequirePermission(auth.PermTasksWrite)).Post("/tasks", h.handleCreate)
	r.With(middleware.RequirePermission(auth.PermTasksWrite)).Put("/tasks/{id}", h.handleUpdate)
	r.With(middleware.RequirePermission(auth.PermTasksWrite)).Delete("/tasks/{id}", h.handleDelete)
	r.With(middleware.RequirePermission(auth.PermTasksWrite)).Post("/tasks/{id}/status", h.handleStatus)
	r.With(middleware.RequirePermission(auth.PermTasksApprove)).Post("/tasks/{id}/approval", h.handleApproval)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())

	var out []tasks.Task
	if user.Role == auth.RoleSupervisor {
		out = h.Tasks.ListForSupervisor(user.UserID)
	} else {
		out = h.Tasks.List()
	}
	if out == nil {
		out = []tasks.Task{}
	}
	api.Success(w, out, requestID)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())

	var task tasks.Task
	if err := json.NewDecoder(r.Body).Decode(&task); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}
	task.ID = ""
	if user.Role == auth.RoleSupervisor {
		task.SupervisorID = user.UserID
	}

	validator := shared.NewValidator()
	validator.Required("title", task.Title, "title is required")
	validator.Required("supervisorId", task.SupervisorID, "supervisor id is required")
	validator.Enum("priority", task.Priority, tasks.Priorities, "unknown priority")
	if validator.Reject(w, requestID) {
		return
	}

	api.Created(w, h.Tasks.Save(task), requestID)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := chi.URLParam(r, "id")
	user, _ := middleware.GetUser(r.Context())

	existing, ok := h.Tasks.Store().Find(id)
	if !ok {
		api.Fail(w, http.StatusNotFound, "not_found", "task not found", requestID)
		return
	}
	if user.Role == auth.RoleSupervisor && existing.SupervisorID != user.UserID {
		api.Fail(w, http.StatusForbidden, "forbidden", "task belongs to another supervisor", requestID)
		return
	}

	var task tasks.Task
	if err := json.NewDecoder(r.Body).Decode(&task); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}
	task.ID = id
	if task.SupervisorID == "" {
		task.SupervisorID = existing.SupervisorID
	}

	api.Success(w, h.Tasks.Save(task), requestID)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := chi.URLParam(r, "id")
	user, _ := middleware.GetUser(r.Context())

	existing, ok := h.Tasks.Store().Find(id)
	if !ok {
		api.Fail(w, http.StatusNotFound, "not_found", "task not found", requestID)
		return
	}
	if user.Role == auth.RoleSupervisor && existing.SupervisorID != user.UserID {
		api.Fail(w, http.StatusForbidden, "forbidden", "task belongs to another supervisor", requestID)
		return
	}

	h.Tasks.Delete(id)
	api.Success(w, map[string]string{"status": "deleted"}, requestID)
}

func (h *Handler) handleStatus(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := chi.URLParam(r, "id")

	var payload struct {
		Status  string `json:"status"`
		TimeIn  string `json:"timeIn"`
		TimeOut string `json:"timeOut"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	task, err := h.Tasks.UpdateStatus(id, payload.Status, payload.TimeIn, payload.TimeOut)
	if err != nil {
		failTaskError(w, err, requestID)
		return
	}
	api.Success(w, task, requestID)
}

func (h *Handler) handleApproval(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := chi.URLParam(r, "id")

	var payload struct {
		Approval string `json:"approval"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	task, err := h.Tasks.SetApproval(id, payload.Approval)
	if err != nil {
		failTaskError(w, err, requestID)
		return
	}
	api.Success(w, task, requestID)
}

func failTaskError(w http.ResponseWriter, err error, requestID string) {
	switch {
	case errors.Is(err, tasks.ErrTaskNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "task not found", requestID)
	case errors.Is(err, tasks.ErrInvalidStatus):
		api.Fail(w, http.StatusBadRequest, "invalid_status", "invalid task status", requestID)
	default:
		api.Fail(w, http.StatusInternalServerError, "task_failed", "task update failed", requestID)
	}
}
