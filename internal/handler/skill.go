package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jmartel/portfolio-api/internal/model"
	"github.com/jmartel/portfolio-api/internal/service"
)

// SkillHandler exposes skill CRUD and reordering.
type SkillHandler struct {
	skills *service.SkillService
	logger *slog.Logger
}

func NewSkillHandler(skills *service.SkillService, logger *slog.Logger) *SkillHandler {
	return &SkillHandler{skills: skills, logger: logger}
}

// HandleList returns every skill in display order.
//
// GET /api/skills
func (h *SkillHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	skills, err := h.skills.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, skills)
}

// HandleCreate stores a new skill. Omitted level and order_index default
// to 0.
//
// POST /api/skills (auth)
func (h *SkillHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var skill model.Skill
	if err := decodeJSON(r, &skill); err != nil {
		writeError(w, err)
		return
	}

	created, err := h.skills.Create(r.Context(), &skill)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// HandleUpdate applies the fields present in the payload.
//
// PUT /api/skills/{id} (auth)
func (h *SkillHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var update model.SkillUpdate
	if err := decodeJSON(r, &update); err != nil {
		writeError(w, err)
		return
	}

	skill, err := h.skills.Update(r.Context(), chi.URLParam(r, "id"), &update)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, skill)
}

// HandleDelete permanently removes a skill.
//
// DELETE /api/skills/{id} (auth)
func (h *SkillHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.skills.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "skill deleted"})
}

type reorderSkillsRequest struct {
	SkillIDs []string `json:"skill_ids"`
}

// HandleReorder assigns each listed skill's order_index to its position.
//
// POST /api/skills/reorder (auth)
func (h *SkillHandler) HandleReorder(w http.ResponseWriter, r *http.Request) {
	var req reorderSkillsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := h.skills.Reorder(r.Context(), req.SkillIDs); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "skills reordered"})
}
