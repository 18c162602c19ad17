package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"salestrack/internal/transport/http/api"
)

func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("panic recovered",
					"err", rec,
					"path", r.URL.Path,
					"method", r.Method,
					"stack", string(debug.Stack()),
				)
				api.Fail(w, http.StatusInternalServerError, "internal_error", "internal server error", GetRequestID(r.Context()))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
