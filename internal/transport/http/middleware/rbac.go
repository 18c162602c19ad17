package middleware

import (
	"net/http"

	"salestrack/internal/domain/auth"
	"salestrack/internal/transport/http/api"
)

func RequirePermission(permission string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := GetUser(r.Context())
			if !ok {
				api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", GetRequestID(r.Context()))
				return
			}
			if !auth.HasPermission(user.Role, permission) {
				api.Fail(w, http.StatusForbidden, "forbidden", "insufficient permissions", GetRequestID(r.Context()))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
