package handler

import (
	"log/slog"
	"net/http"

	"github.com/jmartel/portfolio-api/internal/model"
	"github.com/jmartel/portfolio-api/internal/service"
)

// PersonalInfoHandler exposes the singleton profile.
type PersonalInfoHandler struct {
	info   *service.PersonalInfoService
	logger *slog.Logger
}

func NewPersonalInfoHandler(info *service.PersonalInfoService, logger *slog.Logger) *PersonalInfoHandler {
	return &PersonalInfoHandler{info: info, logger: logger}
}

// HandleGet returns the profile, 404 when none has been created.
//
// GET /api/personal-info
func (h *PersonalInfoHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	info, err := h.info.Get(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, info)
}

// HandleUpsert applies the present fields, creating the profile on first
// write. POST and PUT behave identically.
//
// POST|PUT /api/personal-info (auth)
func (h *PersonalInfoHandler) HandleUpsert(w http.ResponseWriter, r *http.Request) {
	var update model.PersonalInfoUpdate
	if err := decodeJSON(r, &update); err != nil {
		writeError(w, err)
		return
	}

	info, err := h.info.Upsert(r.Context(), &update)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, info)
}
