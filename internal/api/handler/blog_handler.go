package handler

import (
	"errors"
	"net/http"

	"inkpost/internal/api/view"
	"inkpost/internal/app/service"
	"inkpost/internal/common"
	"inkpost/internal/domain/model"

	"github.com/go-chi/chi/v5"
)

// BlogHandler serves the authenticated routes. The author of every store
// operation is the session username, never request input, so a user can only
// ever touch files under their own directory.
type BlogHandler struct {
	blogService *service.BlogService
	view        *view.View
}

func NewBlogHandler(blogService *service.BlogService, v *view.View) *BlogHandler {
	return &BlogHandler{blogService: blogService, view: v}
}

func (h *BlogHandler) RegisterRoutes(r chi.Router) {
	r.Get("/upload", h.uploadForm)
	r.Post("/upload", h.upload)
	r.Get("/profile", h.profile)
	r.Get("/edit/{filename}", h.editForm)
	r.Post("/edit/{filename}", h.edit)
	r.Post("/delete/{filename}", h.deletePost)
}

func (h *BlogHandler) uploadForm(w http.ResponseWriter, r *http.Request) {
	h.view.Render(w, r, "upload.page.html", &view.PageData{
		Title:       "New Post",
		CurrentUser: currentUser(r),
	})
}

func (h *BlogHandler) upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondError(w, common.ErrBadRequest)
		return
	}
	title := r.PostFormValue("title")
	content := r.PostFormValue("content")

	if _, err := h.blogService.CreatePost(r.Context(), currentUser(r), title, content); err != nil {
		if errors.Is(err, common.ErrValidation) {
			h.view.Render(w, r, "upload.page.html", &view.PageData{
				Title:       "New Post",
				CurrentUser: currentUser(r),
				Flash:       &view.Flash{Category: view.FlashWarning, Message: "Title and content cannot be empty."},
				Form:        map[string]string{"title": title, "content": content},
			})
			return
		}
		respondError(w, err)
		return
	}

	view.SetFlash(w, view.FlashSuccess, "Blog uploaded successfully!")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *BlogHandler) profile(w http.ResponseWriter, r *http.Request) {
	username := currentUser(r)
	posts, err := h.blogService.AuthorPosts(r.Context(), username)
	if err != nil {
		respondError(w, err)
		return
	}
	h.view.Render(w, r, "profile.page.html", &view.PageData{
		Title:       username,
		CurrentUser: username,
		Posts:       posts,
	})
}

func (h *BlogHandler) editForm(w http.ResponseWriter, r *http.Request) {
	filename := chi.URLParam(r, "filename")

	post, err := h.blogService.GetPost(r.Context(), currentUser(r), filename)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			view.SetFlash(w, view.FlashDanger, "Blog not found.")
			http.Redirect(w, r, "/profile", http.StatusSeeOther)
			return
		}
		respondError(w, err)
		return
	}

	h.view.Render(w, r, "edit.page.html", &view.PageData{
		Title:       "Edit Post",
		CurrentUser: currentUser(r),
		Post:        post,
	})
}

func (h *BlogHandler) edit(w http.ResponseWriter, r *http.Request) {
	filename := chi.URLParam(r, "filename")
	if err := r.ParseForm(); err != nil {
		respondError(w, common.ErrBadRequest)
		return
	}
	title := r.PostFormValue("title")
	content := r.PostFormValue("content")

	err := h.blogService.UpdatePost(r.Context(), currentUser(r), filename, title, content)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrNotFound):
			view.SetFlash(w, view.FlashDanger, "Blog not found.")
			http.Redirect(w, r, "/profile", http.StatusSeeOther)
		case errors.Is(err, common.ErrValidation):
			h.view.Render(w, r, "edit.page.html", &view.PageData{
				Title:       "Edit Post",
				CurrentUser: currentUser(r),
				Flash:       &view.Flash{Category: view.FlashWarning, Message: "Title and content cannot be empty."},
				Post:        &model.Post{Title: title, Content: content, Filename: filename},
			})
		default:
			respondError(w, err)
		}
		return
	}

	view.SetFlash(w, view.FlashSuccess, "Blog updated successfully!")
	http.Redirect(w, r, "/profile", http.StatusSeeOther)
}

func (h *BlogHandler) deletePost(w http.ResponseWriter, r *http.Request) {
	filename := chi.URLParam(r, "filename")

	err := h.blogService.DeletePost(r.Context(), currentUser(r), filename)
	switch {
	case err == nil:
		view.SetFlash(w, view.FlashInfo, "Blog deleted.")
	case errors.Is(err, common.ErrNotFound):
		view.SetFlash(w, view.FlashDanger, "Blog not found.")
	default:
		respondError(w, err)
		return
	}
	http.Redirect(w, r, "/profile", http.StatusSeeOther)
}
