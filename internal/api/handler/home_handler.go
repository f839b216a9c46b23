package handler

import (
	"net/http"

	"inkpost/internal/api/view"
	"inkpost/internal/app/service"

	"github.com/go-chi/chi/v5"
)

type HomeHandler struct {
	blogService *service.BlogService
	view        *view.View
}

func NewHomeHandler(blogService *service.BlogService, v *view.View) *HomeHandler {
	return &HomeHandler{blogService: blogService, view: v}
}

func (h *HomeHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.home)
	r.Get("/search", h.search)
}

func (h *HomeHandler) home(w http.ResponseWriter, r *http.Request) {
	posts, err := h.blogService.Catalog(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	h.view.Render(w, r, "home.page.html", &view.PageData{
		Title:       "Home",
		CurrentUser: currentUser(r),
		Posts:       posts,
	})
}

func (h *HomeHandler) search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	results, err := h.blogService.Search(r.Context(), query)
	if err != nil {
		respondError(w, err)
		return
	}
	h.view.Render(w, r, "search.page.html", &view.PageData{
		Title:       "Search",
		CurrentUser: currentUser(r),
		Posts:       results,
		Query:       query,
	})
}
