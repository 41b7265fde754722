package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/idears-dev/idears/internal/api"
	"github.com/idears-dev/idears/internal/utils"
)

func (h *Handler) CreateNote(w http.ResponseWriter, r *http.Request) {
	var body api.CreateNoteRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	note, err := h.note.Create(chi.URLParam(r, "ideaId"), body.Content)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, note)
}

func (h *Handler) GetNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := h.note.GetByIdea(chi.URLParam(r, "ideaId"))
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, notes)
}

func (h *Handler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	if err := h.note.Delete(chi.URLParam(r, "id")); err != nil {
		utils.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
