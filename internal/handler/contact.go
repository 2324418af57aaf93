package handler

import (
	"log/slog"
	"net/http"

	"github.com/jmartel/portfolio-api/internal/service"
)

// ContactHandler accepts visitor messages and forwards them by mail.
type ContactHandler struct {
	contact *service.ContactService
	logger  *slog.Logger
}

func NewContactHandler(contact *service.ContactService, logger *slog.Logger) *ContactHandler {
	return &ContactHandler{contact: contact, logger: logger}
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// HandleSubmit validates the four fields and relays the message. A delivery
// failure maps to 500 without leaking SMTP details to the caller.
//
// POST /api/contact
func (h *ContactHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := h.contact.Submit(r.Context(), req.Name, req.Email, req.Subject, req.Message); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "message sent"})
}
