package view

import (
	"encoding/base64"
	"net/http"
	"strings"
)

const flashCookieName = "flash"

// Flash categories, matching the CSS classes in the templates.
const (
	FlashSuccess = "success"
	FlashInfo    = "info"
	FlashWarning = "warning"
	FlashDanger  = "danger"
)

// Flash is a one-shot status message carried client-side in a cookie across
// a redirect, then cleared on the next render.
type Flash struct {
	Category string
	Message  string
}

func SetFlash(w http.ResponseWriter, category, message string) {
	value := base64.RawURLEncoding.EncodeToString([]byte(category + "|" + message))
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// PopFlash reads the flash cookie from the request, if any, and expires it.
func PopFlash(w http.ResponseWriter, r *http.Request) *Flash {
	cookie, err := r.Cookie(flashCookieName)
	if err != nil {
		return nil
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	raw, err := base64.RawURLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return nil
	}
	category, message, ok := strings.Cut(string(raw), "|")
	if !ok {
		return nil
	}
	return &Flash{Category: category, Message: message}
}
