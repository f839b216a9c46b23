package middleware

import (
	"context"
	"net/http"

	"inkpost/internal/api/view"
	"inkpost/internal/common/security"

	"github.com/go-chi/jwtauth/v5"
)

type contextKey string

const UsernameCtxKey contextKey = "username"

// Identify puts the session username into the request context when a valid
// session cookie is present. It never rejects; anonymous requests pass
// through untouched.
func Identify(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, claims, err := jwtauth.FromContext(r.Context())
		if err == nil && token != nil {
			if username, cerr := security.GetUsernameFromClaims(claims); cerr == nil {
				ctx := context.WithValue(r.Context(), UsernameCtxKey, username)
				r = r.WithContext(ctx)
			}
		}
		next.ServeHTTP(w, r)
	})
}

// RequireUser guards routes that need an authenticated user. Anonymous
// requests are flashed and redirected to the login page, matching the
// browser-facing flow rather than a bare 401.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetUsernameFromContext(r.Context()); !ok {
			view.SetFlash(w, view.FlashInfo, "Please log in.")
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func GetUsernameFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(UsernameCtxKey).(string)
	return username, ok
}
