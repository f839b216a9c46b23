package api

import (
	"net/http"
	"time"

	"inkpost/internal/api/handler"
	"inkpost/internal/api/middleware"
	"inkpost/internal/api/view"
	"inkpost/internal/app/service"
	"inkpost/internal/common/security"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	authService *service.AuthService,
	blogService *service.BlogService,
	v *view.View,
) http.Handler {
	r := chi.NewRouter()

	// Base Middlewares
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(middleware.RequestLogger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))

	// Session middleware: Verifier parses the signed cookie, Identify puts
	// the username into the request context without rejecting anyone.
	r.Use(jwtauth.Verifier(security.TokenAuth))
	r.Use(middleware.Identify)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Public pages
	homeHandler := handler.NewHomeHandler(blogService, v)
	homeHandler.RegisterRoutes(r)

	authHandler := handler.NewAuthHandler(authService, v)
	authHandler.RegisterRoutes(r)

	// Pages that require a logged-in user
	blogHandler := handler.NewBlogHandler(blogService, v)
	r.Group(func(protected chi.Router) {
		protected.Use(middleware.RequireUser)
		blogHandler.RegisterRoutes(protected)
	})

	return r
}
