package authhandler

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"salestrack/internal/domain/auth"
	"salestrack/internal/domain/roster"
	"salestrack/internal/transport/http/api"
	"salestrack/internal/transport/http/middleware"
	"salestrack/internal/transport/http/shared"
)

const tokenTTL = 12 * time.Hour

type Handler struct {
	Roster    *roster.Service
	JWTSecret string
}

func NewHandler(rosterSvc *roster.Service, jwtSecret string) *Handler {
	return &Handler{Roster: rosterSvc, JWTSecret: jwtSecret}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/auth/login", h.handleLogin)
	r.Post("/auth/register", h.handleRegister)
	r.Post("/auth/logout", h.handleLogout)
}

type sessionResponse struct {
	Token string      `json:"token"`
	User  sessionUser `json:"user"`
}

type sessionUser struct {
	ID        string `json:"id"`
	FullName  string `json:"fullName"`
	Role      string `json:"role"`
	Principle string `json:"principle"`
	Avatar    string `json:"avatar,omitempty"`
}

// handleLogin resolves the sign-in form (role + principle, supervisors by
// name) to an account. Seeded accounts carry no password hash and sign in
// without one; accounts created through register must present theirs.
func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var payload struct {
		Role      string `json:"role"`
		Principle string `json:"principle"`
		Name      string `json:"name"`
		Password  string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	payload.Role = strings.ToUpper(strings.TrimSpace(payload.Role))
	payload.Principle = strings.ToUpper(strings.TrimSpace(payload.Principle))
	payload.Name = strings.TrimSpace(payload.Name)

	validator := shared.NewValidator()
	validator.Required("role", payload.Role, "role is required")
	validator.Enum("role", payload.Role, auth.Roles, "unknown role")
	if payload.Role == auth.RoleSupervisor {
		validator.Required("name", payload.Name, "supervisor login requires a name")
	}
	if validator.Reject(w, requestID) {
		return
	}

	user := h.Roster.ResolveLogin(payload.Role, payload.Principle, payload.Name)
	if user.PasswordHash != "" {
		if err := auth.CheckPassword(user.PasswordHash, payload.Password); err != nil {
			api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "invalid credentials", requestID)
			return
		}
	}

	token, err := auth.GenerateToken(h.JWTSecret, auth.Claims{
		UserID:    user.ID,
		Role:      user.Role,
		Principle: user.Principle,
		FullName:  user.FullName,
	}, tokenTTL)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "token_failed", "failed to issue token", requestID)
		return
	}

	api.Success(w, sessionResponse{
		Token: token,
		User: sessionUser{
			ID:        user.ID,
			FullName:  user.FullName,
			Role:      user.Role,
			Principle: user.Principle,
			Avatar:    user.Avatar,
		},
	}, requestID)
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var payload struct {
		FullName  string `json:"fullName"`
		Role      string `json:"role"`
		Principle string `json:"principle"`
		Password  string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	payload.Role = strings.ToUpper(strings.TrimSpace(payload.Role))
	payload.Principle = strings.ToUpper(strings.TrimSpace(payload.Principle))
	payload.FullName = strings.TrimSpace(payload.FullName)

	validator := shared.NewValidator()
	validator.Required("fullName", payload.FullName, "full name is required")
	validator.Required("role", payload.Role, "role is required")
	validator.Enum("role", payload.Role, auth.Roles, "unknown role")
	validator.Required("password", payload.Password, "password is required")
	if validator.Reject(w, requestID) {
		return
	}

	hash, err := auth.HashPassword(payload.Password)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "hash_failed", "failed to hash password", requestID)
		return
	}

	user := h.Roster.SaveUser(roster.User{
		FullName:     payload.FullName,
		Role:         payload.Role,
		Principle:    payload.Principle,
		PasswordHash: hash,
	})

	api.Created(w, sessionUser{
		ID:        user.ID,
		FullName:  user.FullName,
		Role:      user.Role,
		Principle: user.Principle,
	}, requestID)
}

// handleLogout exists for symmetry; tokens are stateless and simply expire.
func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	api.Success(w, map[string]string{"status": "logged out"}, middleware.GetRequestID(r.Context()))
}
