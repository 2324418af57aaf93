package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jmartel/portfolio-api/internal/model"
	"github.com/jmartel/portfolio-api/internal/service"
)

// ExperienceHandler exposes work-experience CRUD and reordering.
type ExperienceHandler struct {
	experiences *service.ExperienceService
	logger      *slog.Logger
}

func NewExperienceHandler(experiences *service.ExperienceService, logger *slog.Logger) *ExperienceHandler {
	return &ExperienceHandler{experiences: experiences, logger: logger}
}

// GET /api/experiences
func (h *ExperienceHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	experiences, err := h.experiences.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, experiences)
}

// POST /api/experiences (auth)
func (h *ExperienceHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var exp model.Experience
	if err := decodeJSON(r, &exp); err != nil {
		writeError(w, err)
		return
	}

	created, err := h.experiences.Create(r.Context(), &exp)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// PUT /api/experiences/{id} (auth)
func (h *ExperienceHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var update model.ExperienceUpdate
	if err := decodeJSON(r, &update); err != nil {
		writeError(w, err)
		return
	}

	exp, err := h.experiences.Update(r.Context(), chi.URLParam(r, "id"), &update)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, exp)
}

// DELETE /api/experiences/{id} (auth)
func (h *ExperienceHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.experiences.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "experience deleted"})
}

type reorderExperiencesRequest struct {
	ExperienceIDs []string `json:"experience_ids"`
}

// POST /api/experiences/reorder (auth)
func (h *ExperienceHandler) HandleReorder(w http.ResponseWriter, r *http.Request) {
	var req reorderExperiencesRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := h.experiences.Reorder(r.Context(), req.ExperienceIDs); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "experiences reordered"})
}
