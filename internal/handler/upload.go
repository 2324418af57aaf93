package handler

import (
	"log/slog"
	"net/http"

	"github.com/jmartel/portfolio-api/internal/apperror"
	"github.com/jmartel/portfolio-api/internal/upload"
)

// 10 MiB request body cap for uploads.
const maxUploadSize = 10 << 20

// UploadHandler stores admin-submitted images and returns their public URL.
type UploadHandler struct {
	store  *upload.Store
	logger *slog.Logger
}

func NewUploadHandler(store *upload.Store, logger *slog.Logger) *UploadHandler {
	return &UploadHandler{store: store, logger: logger}
}

type uploadResponse struct {
	URL string `json:"url"`
}

// HandleUpload reads the multipart "file" part, stores it under a sanitized
// name and answers with the /uploads URL.
//
// POST /api/upload
func (h *UploadHandler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, apperror.ValidationFailed("file", "no file selected"))
		return
	}
	defer file.Close()

	url, err := h.store.Save(header.Filename, file)
	if err != nil {
		writeError(w, err)
		return
	}

	h.logger.Info("file uploaded", "url", url)
	writeJSON(w, http.StatusOK, uploadResponse{URL: url})
}
