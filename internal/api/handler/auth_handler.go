package handler

import (
	"errors"
	"net/http"

	"inkpost/internal/api/view"
	"inkpost/internal/app/service"
	"inkpost/internal/common"

	"github.com/go-chi/chi/v5"
)

type AuthHandler struct {
	authService *service.AuthService
	view        *view.View
}

func NewAuthHandler(authService *service.AuthService, v *view.View) *AuthHandler {
	return &AuthHandler{authService: authService, view: v}
}

func (h *AuthHandler) RegisterRoutes(r chi.Router) {
	r.Get("/login", h.loginForm)
	r.Post("/login", h.login)
	r.Get("/register", h.registerForm)
	r.Post("/register", h.register)
	r.Get("/logout", h.logout)
}

func (h *AuthHandler) loginForm(w http.ResponseWriter, r *http.Request) {
	h.view.Render(w, r, "login.page.html", &view.PageData{
		Title:       "Log In",
		CurrentUser: currentUser(r),
	})
}

func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondError(w, common.ErrBadRequest)
		return
	}
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	token, err := h.authService.Login(r.Context(), username, password)
	if err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			h.view.Render(w, r, "login.page.html", &view.PageData{
				Title: "Log In",
				Flash: &view.Flash{Category: view.FlashDanger, Message: "Invalid credentials."},
				Form:  map[string]string{"username": username},
			})
			return
		}
		respondError(w, err)
		return
	}

	setSessionCookie(w, token)
	view.SetFlash(w, view.FlashSuccess, "Logged in successfully!")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *AuthHandler) registerForm(w http.ResponseWriter, r *http.Request) {
	h.view.Render(w, r, "register.page.html", &view.PageData{
		Title:       "Register",
		CurrentUser: currentUser(r),
	})
}

func (h *AuthHandler) register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondError(w, common.ErrBadRequest)
		return
	}
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	if err := h.authService.Register(r.Context(), username, password); err != nil {
		if message, ok := registerFlash(err); ok {
			h.view.Render(w, r, "register.page.html", &view.PageData{
				Title: "Register",
				Flash: &view.Flash{Category: view.FlashWarning, Message: message},
				Form:  map[string]string{"username": username},
			})
			return
		}
		respondError(w, err)
		return
	}

	view.SetFlash(w, view.FlashSuccess, "Registered successfully! You can now log in.")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *AuthHandler) logout(w http.ResponseWriter, r *http.Request) {
	clearSessionCookie(w)
	view.SetFlash(w, view.FlashInfo, "Logged out successfully.")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// registerFlash maps registration failures onto user-facing messages.
func registerFlash(err error) (string, bool) {
	switch {
	case errors.Is(err, service.ErrUsernameTaken):
		return "Username already taken.", true
	case errors.Is(err, service.ErrWeakPassword):
		return "Password must contain letters and numbers.", true
	case errors.Is(err, service.ErrBadUsername):
		return "Username may only contain lowercase letters, numbers and hyphens.", true
	case errors.Is(err, service.ErrMissingCredentials):
		return "Username and password cannot be empty.", true
	}
	return "", false
}
