package middleware

import (
	"context"
	"net/http"
	"strings"

	"salestrack/internal/domain/auth"
)

type ctxKey string

const ctxKeyUser ctxKey = "user"

// Auth decodes a bearer token into the request context. Requests without
// a valid token pass through anonymous; RequirePermission rejects them
// later if the route needs an identity.
func Auth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				next.ServeHTTP(w, r)
				return
			}
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := auth.ParseToken(secret, parts[1])
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), ctxKeyUser, auth.UserContext{
				UserID:    claims.UserID,
				Role:      claims.Role,
				Principle: claims.Principle,
				FullName:  claims.FullName,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetUser(ctx context.Context) (auth.UserContext, bool) {
	user, ok := ctx.Value(ctxKeyUser).(auth.UserContext)
	return user, ok
}
