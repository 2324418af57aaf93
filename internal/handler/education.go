package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jmartel/portfolio-api/internal/model"
	"github.com/jmartel/portfolio-api/internal/service"
)

// EducationHandler exposes education CRUD and reordering.
type EducationHandler struct {
	education *service.EducationService
	logger    *slog.Logger
}

func NewEducationHandler(education *service.EducationService, logger *slog.Logger) *EducationHandler {
	return &EducationHandler{education: education, logger: logger}
}

// GET /api/education
func (h *EducationHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	entries, err := h.education.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, entries)
}

// POST /api/education (auth)
func (h *EducationHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var edu model.Education
	if err := decodeJSON(r, &edu); err != nil {
		writeError(w, err)
		return
	}

	created, err := h.education.Create(r.Context(), &edu)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// PUT /api/education/{id} (auth)
func (h *EducationHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var update model.EducationUpdate
	if err := decodeJSON(r, &update); err != nil {
		writeError(w, err)
		return
	}

	edu, err := h.education.Update(r.Context(), chi.URLParam(r, "id"), &update)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, edu)
}

// DELETE /api/education/{id} (auth)
func (h *EducationHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.education.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "education entry deleted"})
}

type reorderEducationRequest struct {
	EducationIDs []string `json:"education_ids"`
}

// POST /api/education/reorder (auth)
func (h *EducationHandler) HandleReorder(w http.ResponseWriter, r *http.Request) {
	var req reorderEducationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := h.education.Reorder(r.Context(), req.EducationIDs); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "education reordered"})
}
