package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"salestrack/internal/domain/auth"
)

const testSecret = "test-secret"

func TestAuthAttachesUserContext(t *testing.T) {
	token, err := auth.GenerateToken(testSecret, auth.Claims{
		UserID:    "U01",
		Role:      auth.RoleSupervisor,
		Principle: "KALBE",
		FullName:  "NINA AFRIDA",
	}, time.Hour)
	if err != nil {
		t.Fatalf("token generation failed: %v", err)
	}

	var got auth.UserContext
	var ok bool
	handler := Auth(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok = GetUser(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/evaluations", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if !ok {
		t.Fatal("expected user in context")
	}
	if got.UserID != "U01" || got.Role != auth.RoleSupervisor || got.Principle != "KALBE" {
		t.Fatalf("unexpected user context: %+v", got)
	}
}

func TestAuthIgnoresInvalidToken(t *testing.T) {
	var ok bool
	handler := Auth(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, ok = GetUser(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/evaluations", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if ok {
		t.Fatal("expected anonymous request for invalid token")
	}
}

func TestRequirePermission(t *testing.T) {
	token, err := auth.GenerateToken(testSecret, auth.Claims{UserID: "U02", Role: auth.RoleKasir, FullName: "WATI"}, time.Hour)
	if err != nil {
		t.Fatalf("token generation failed: %v", err)
	}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	handler := Auth(testSecret)(RequirePermission("kpi.config.write")(next))

	// Anonymous request is rejected outright.
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/settings/kpi", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for anonymous, got %d", rec.Code)
	}

	// Kasir can rate but not rewrite weights.
	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/settings/kpi", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for kasir, got %d", rec.Code)
	}

	allowed := Auth(testSecret)(RequirePermission("kpi.rate")(next))
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/evaluations/scores", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	allowed.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204 for permitted role, got %d", rec.Code)
	}
}
