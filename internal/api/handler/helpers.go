package handler

import (
	"net/http"

	"inkpost/internal/api/middleware"
	"inkpost/internal/common"
	"inkpost/internal/platform/config"

	"github.com/rs/zerolog/log"
)

// sessionCookieName must stay "jwt": that is the cookie jwtauth's stock
// Verifier reads the token from.
const sessionCookieName = "jwt"

func setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(config.AppConfig.JWTExp.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}

func currentUser(r *http.Request) string {
	username, _ := middleware.GetUsernameFromContext(r.Context())
	return username
}

// respondError is the fallback for errors that have no flash-and-redirect
// flow, typically filesystem failures surfacing as a 500.
func respondError(w http.ResponseWriter, err error) {
	status := common.HTTPStatusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Msg("request failed")
	}
	http.Error(w, http.StatusText(status), status)
}
