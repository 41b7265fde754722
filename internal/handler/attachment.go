package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/idears-dev/idears/internal/domain"
	internal_errors "github.com/idears-dev/idears/internal/errors"
	"github.com/idears-dev/idears/internal/utils"
)

// multipart form fields and decoding overhead beyond the file itself
const multipartOverhead = 1 << 20

func (h *Handler) CreateAttachment(w http.ResponseWriter, r *http.Request) {
	maxSize := h.cfg.Uploads.MaxFileSizeBytes + multipartOverhead
	r.Body = http.MaxBytesReader(w, r.Body, maxSize)
	if err := r.ParseMultipartForm(maxSize); err != nil {
		utils.WriteError(w, &internal_errors.ErrorWithStatusCode{Message: "File too large or form malformed", StatusCode: 400})
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		utils.WriteError(w, &internal_errors.ErrorWithStatusCode{Message: "No file uploaded", StatusCode: 400})
		return
	}
	defer file.Close()

	att, err := h.attachment.Create(chi.URLParam(r, "ideaId"), &domain.PendingFile{
		Filename: header.Filename,
		Mimetype: header.Header.Get("Content-Type"),
		Size:     header.Size,
		Data:     file,
	})
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, att)
}

func (h *Handler) GetAttachments(w http.ResponseWriter, r *http.Request) {
	attachments, err := h.attachment.GetByIdea(chi.URLParam(r, "ideaId"))
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, attachments)
}

func (h *Handler) DeleteAttachment(w http.ResponseWriter, r *http.Request) {
	if err := h.attachment.Delete(chi.URLParam(r, "id")); err != nil {
		utils.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
