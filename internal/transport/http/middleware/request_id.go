package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"salestrack/internal/requestctx"
)

// RequestID tags every request with an id, honoring one supplied by a
// proxy, and echoes it back in the response header.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-Id")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", requestID)
		ctx := requestctx.WithRequestID(r.Context(), requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func GetRequestID(ctx context.Context) string {
	return requestctx.GetRequestID(ctx)
}
