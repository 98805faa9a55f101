package auth

import (
	"context"
	"net/http"
	"strings"
)

type contextKey struct{}

var subjectKey contextKey

// SubjectFromContext returns the authenticated email attached by RequireAuth.
func SubjectFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(subjectKey).(string)
	return email, ok
}

// RequireAuth guards a handler behind a bearer token. A missing Authorization
// header is 401; a present but unverifiable token is 403. On success the
// subject email is attached to the request context for the handler.
func RequireAuth(codec *Codec) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, `{"message":"UnAuthorized access"}`, http.StatusUnauthorized)
				return
			}

			var tokenString string
			if parts := strings.Split(authHeader, " "); len(parts) > 1 {
				tokenString = parts[1]
			}

			email, err := codec.Verify(tokenString)
			if err != nil {
				http.Error(w, `{"message":"Forbidden access"}`, http.StatusForbidden)
				return
			}

			ctx := context.WithValue(r.Context(), subjectKey, email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
