package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/idears-dev/idears/internal/api"
	"github.com/idears-dev/idears/internal/domain"
	"github.com/idears-dev/idears/internal/utils"
)

func (h *Handler) GetIdeas(w http.ResponseWriter, r *http.Request) {
	ideas, err := h.idea.GetAll()
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ideas)
}

func (h *Handler) GetIdea(w http.ResponseWriter, r *http.Request) {
	idea, err := h.idea.Get(chi.URLParam(r, "ideaId"))
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, idea)
}

func (h *Handler) CreateIdea(w http.ResponseWriter, r *http.Request) {
	var body api.CreateIdeaRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	idea, err := h.idea.Create(body.Title, body.Description)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, idea)
}

func (h *Handler) UpdateIdea(w http.ResponseWriter, r *http.Request) {
	var body api.UpdateIdeaRequest
	if err := utils.Decode(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	idea, err := h.idea.Update(chi.URLParam(r, "ideaId"), domain.IdeaUpdate{Title: body.Title, Description: body.Description})
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, idea)
}

func (h *Handler) UpvoteIdea(w http.ResponseWriter, r *http.Request) {
	idea, err := h.idea.Upvote(chi.URLParam(r, "ideaId"))
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, idea)
}

func (h *Handler) DeleteIdea(w http.ResponseWriter, r *http.Request) {
	if err := h.idea.Delete(chi.URLParam(r, "ideaId")); err != nil {
		utils.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
