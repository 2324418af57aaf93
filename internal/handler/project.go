package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jmartel/portfolio-api/internal/model"
	"github.com/jmartel/portfolio-api/internal/service"
)

// ProjectHandler exposes project CRUD and reordering.
type ProjectHandler struct {
	projects *service.ProjectService
	logger   *slog.Logger
}

func NewProjectHandler(projects *service.ProjectService, logger *slog.Logger) *ProjectHandler {
	return &ProjectHandler{projects: projects, logger: logger}
}

// GET /api/projects
func (h *ProjectHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projects.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, projects)
}

// POST /api/projects (auth)
func (h *ProjectHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var project model.Project
	if err := decodeJSON(r, &project); err != nil {
		writeError(w, err)
		return
	}

	created, err := h.projects.Create(r.Context(), &project)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// PUT /api/projects/{id} (auth)
func (h *ProjectHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var update model.ProjectUpdate
	if err := decodeJSON(r, &update); err != nil {
		writeError(w, err)
		return
	}

	project, err := h.projects.Update(r.Context(), chi.URLParam(r, "id"), &update)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, project)
}

// DELETE /api/projects/{id} (auth)
func (h *ProjectHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.projects.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "project deleted"})
}

type reorderProjectsRequest struct {
	ProjectIDs []string `json:"project_ids"`
}

// POST /api/projects/reorder (auth)
func (h *ProjectHandler) HandleReorder(w http.ResponseWriter, r *http.Request) {
	var req reorderProjectsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := h.projects.Reorder(r.Context(), req.ProjectIDs); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "projects reordered"})
}
