package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jmartel/portfolio-api/internal/auth"
	"github.com/jmartel/portfolio-api/internal/model"
	"github.com/jmartel/portfolio-api/internal/service"
)

// BlogHandler exposes the public blog surface and the admin post CRUD.
type BlogHandler struct {
	blog   *service.BlogService
	logger *slog.Logger
}

func NewBlogHandler(blog *service.BlogService, logger *slog.Logger) *BlogHandler {
	return &BlogHandler{blog: blog, logger: logger}
}

// HandleListPublished returns published posts, newest first.
//
// GET /api/blog/posts
func (h *BlogHandler) HandleListPublished(w http.ResponseWriter, r *http.Request) {
	posts, err := h.blog.ListPublished(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, posts)
}

// HandleGetBySlug returns one published post. Drafts 404 here even when the
// slug exists.
//
// GET /api/blog/posts/{slug}
func (h *BlogHandler) HandleGetBySlug(w http.ResponseWriter, r *http.Request) {
	post, err := h.blog.GetPublishedBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, post)
}

// HandleListAll returns every post, drafts included.
//
// GET /api/admin/blog/posts (auth)
func (h *BlogHandler) HandleListAll(w http.ResponseWriter, r *http.Request) {
	posts, err := h.blog.ListAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, posts)
}

type createPostRequest struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	IsPublished bool   `json:"is_published"`
}

// HandleCreate stores a new post authored by the authenticated admin.
//
// POST /api/admin/blog/posts (auth)
func (h *BlogHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		// Unreachable behind RequireAuth, kept as a guard.
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "unauthorized", Message: "authentication required"})
		return
	}

	var req createPostRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	post, err := h.blog.Create(r.Context(), userID, req.Title, req.Content, req.IsPublished)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, post)
}

// HandleUpdate applies the present fields; a changed title recomputes the
// slug.
//
// PUT /api/admin/blog/posts/{id} (auth)
func (h *BlogHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var update model.BlogPostUpdate
	if err := decodeJSON(r, &update); err != nil {
		writeError(w, err)
		return
	}

	post, err := h.blog.Update(r.Context(), chi.URLParam(r, "id"), &update)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, post)
}

// DELETE /api/admin/blog/posts/{id} (auth)
func (h *BlogHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.blog.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "blog post deleted"})
}
